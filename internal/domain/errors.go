package domain

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound       = errors.New("product not found")
	ErrOrderNotFound         = errors.New("order not found")
	ErrPaymentNoticeNotFound = errors.New("payment notice not found")
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeInvalidProduct       = "INVALID_PRODUCT"
	ErrCodeDuplicateProduct     = "DUPLICATE_PRODUCT"
	ErrCodeMissingRequiredField = "MISSING_REQUIRED_FIELD"
)

func NewInvalidProductError(id string, err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidProduct,
		Message: fmt.Sprintf("product %q is invalid", id),
		Err:     err,
	}
}

func NewDuplicateProductError(id string) *DomainError {
	return &DomainError{
		Code:    ErrCodeDuplicateProduct,
		Message: fmt.Sprintf("product id %q appears more than once", id),
	}
}

func NewMissingRequiredFieldError(field string) *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingRequiredField,
		Message: fmt.Sprintf("%s is required", field),
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
