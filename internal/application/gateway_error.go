package application

import (
	"errors"
	"fmt"
)

// GatewayError wraps a failed outbound send.
type GatewayError struct {
	Operation string
	To        string
	Err       error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway %s to %s failed: %v", e.Operation, e.To, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

func IsGatewayError(err error) (*GatewayError, bool) {
	var gwErr *GatewayError
	ok := errors.As(err, &gwErr)
	return gwErr, ok
}
