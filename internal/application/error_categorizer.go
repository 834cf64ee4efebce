package application

import (
	"context"
	"errors"

	"github.com/DanielPopoola/doga-whatsapp-agent/internal/domain"
)

// ErrorCategory represents the nature of an error for logging purposes
type ErrorCategory string

const (
	CategoryUserInput     ErrorCategory = "USER_INPUT"
	CategoryMissingRecord ErrorCategory = "MISSING_RECORD"
	CategoryCollaborator  ErrorCategory = "COLLABORATOR"
	CategoryInternal      ErrorCategory = "INTERNAL"
)

// CategorizeError places an error in the reply taxonomy.
func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	if svcErr, ok := IsServiceError(err); ok {
		switch svcErr.Code {
		case ErrCodeUnauthorized, ErrCodeMissingArgument, ErrCodeInvalidProduct:
			return CategoryUserInput
		case ErrCodeMissingPayment, ErrCodeMissingOrder:
			return CategoryMissingRecord
		}
		return CategoryInternal
	}

	if errors.Is(err, domain.ErrProductNotFound) {
		return CategoryUserInput
	}

	if errors.Is(err, domain.ErrOrderNotFound) ||
		errors.Is(err, domain.ErrPaymentNoticeNotFound) {
		return CategoryMissingRecord
	}

	if _, ok := IsGatewayError(err); ok {
		return CategoryCollaborator
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return CategoryCollaborator
	}

	return CategoryInternal
}

// ToReply maps any error to the reply text sent back over the webhook.
func ToReply(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Message
	}

	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return MsgInvalidProduct
	case errors.Is(err, domain.ErrPaymentNoticeNotFound):
		return MsgMissingPayment
	case errors.Is(err, domain.ErrOrderNotFound):
		return MsgMissingOrder
	}

	return MsgInternal
}

// ToErrorCode returns a stable code for logs.
func ToErrorCode(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}

	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return ErrCodeInvalidProduct
	case errors.Is(err, domain.ErrPaymentNoticeNotFound):
		return ErrCodeMissingPayment
	case errors.Is(err, domain.ErrOrderNotFound):
		return ErrCodeMissingOrder
	}

	return ErrCodeInternal
}
