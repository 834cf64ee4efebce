package application

import (
	"errors"
	"fmt"

	"github.com/DanielPopoola/doga-whatsapp-agent/internal/domain"
)

// ServiceError carries the reply text the customer or operator sees.
type ServiceError struct {
	Code    string
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeUnauthorized    = "UNAUTHORIZED"
	ErrCodeMissingArgument = "MISSING_ARGUMENT"
	ErrCodeInvalidProduct  = "INVALID_PRODUCT"
	ErrCodeMissingPayment  = "MISSING_PAYMENT"
	ErrCodeMissingOrder    = "MISSING_ORDER"
	ErrCodeInternal        = "INTERNAL_ERROR"
)

const (
	MsgUnauthorized    = "⛔ Sorry, only the designer can print receipts."
	MsgMissingArgument = "Please specify a product ID. Example: '1'"
	MsgInvalidProduct  = "Invalid product ID. Send 'menu' to see available products."
	MsgMissingPayment  = "No payment notice on file yet. Forward the M-Pesa message ending in " + domain.USSDMarker + " first."
	MsgMissingOrder    = "No order on file yet. A customer needs to place an order before a receipt can be printed."
	MsgInternal        = "⚠️ Something went wrong on our side. Please try again in a moment."
)

func NewUnauthorizedError() *ServiceError {
	return &ServiceError{
		Code:    ErrCodeUnauthorized,
		Message: MsgUnauthorized,
	}
}

func NewMissingArgumentError() *ServiceError {
	return &ServiceError{
		Code:    ErrCodeMissingArgument,
		Message: MsgMissingArgument,
	}
}

func NewInvalidProductError(err error) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeInvalidProduct,
		Message: MsgInvalidProduct,
		Err:     err,
	}
}

func NewMissingPaymentError(err error) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeMissingPayment,
		Message: MsgMissingPayment,
		Err:     err,
	}
}

func NewMissingOrderError(err error) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeMissingOrder,
		Message: MsgMissingOrder,
		Err:     err,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeInternal,
		Message: MsgInternal,
		Err:     err,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}
