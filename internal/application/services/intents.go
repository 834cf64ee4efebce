package services

import (
	"strings"
	"unicode"

	"github.com/DanielPopoola/doga-whatsapp-agent/internal/domain"
)

// Intent is the single step the router takes for a message.
type Intent int

const (
	IntentHelp Intent = iota
	IntentMenu
	IntentOrderByID
	IntentOrderVerbose
	IntentSupport
	IntentListOrders
	IntentPaymentNotice
	IntentReceipt
	IntentInvalidProduct
)

func (i Intent) String() string {
	switch i {
	case IntentMenu:
		return "menu"
	case IntentOrderByID:
		return "order_by_id"
	case IntentOrderVerbose:
		return "order_verbose"
	case IntentSupport:
		return "support"
	case IntentListOrders:
		return "list_orders"
	case IntentPaymentNotice:
		return "payment_notice"
	case IntentReceipt:
		return "receipt"
	case IntentInvalidProduct:
		return "invalid_product"
	default:
		return "help"
	}
}

// Command is a classified message.
type Command struct {
	Intent Intent
	// Arg is the product token for order intents.
	Arg string
	// Rest is everything after the "order" keyword.
	Rest string
}

// Classify maps a message to an intent using only its literal text and the
// sender. Rules are checked in precedence order; the first match wins.
//
// Only an all-digit token that is not a catalog id is answered as an invalid
// product. Any other unmatched text, such as "hello", falls through to the
// help reply.
func Classify(body string, sender, operator domain.Address, catalog *domain.Catalog) Command {
	trimmed := strings.TrimSpace(body)
	normalized := strings.ToLower(trimmed)
	fields := strings.Fields(trimmed)

	switch {
	case normalized == "menu":
		return Command{Intent: IntentMenu}

	case catalog.Has(normalized):
		return Command{Intent: IntentOrderByID, Arg: normalized}

	case len(fields) > 0 && strings.EqualFold(fields[0], "order"):
		cmd := Command{Intent: IntentOrderVerbose}
		if len(fields) > 1 {
			cmd.Arg = fields[1]
			cmd.Rest = strings.Join(fields[1:], " ")
		}
		return cmd

	case normalized == "support":
		return Command{Intent: IntentSupport}

	case normalized == "orders" && isOperator(sender, operator):
		return Command{Intent: IntentListOrders}

	case domain.IsPaymentNotice(trimmed):
		return Command{Intent: IntentPaymentNotice}

	case normalized == "receipt":
		return Command{Intent: IntentReceipt}

	case isDigits(normalized):
		return Command{Intent: IntentInvalidProduct, Arg: normalized}
	}

	return Command{Intent: IntentHelp}
}

// isOperator compares bare numbers by string equality. This is the only
// operator check.
func isOperator(sender, operator domain.Address) bool {
	return sender != "" && sender == operator
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
