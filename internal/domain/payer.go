package domain

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// USSDMarker terminates every payment notice forwarded to the bot.
const USSDMarker = "*334#"

// FallbackPayerName is returned when no name can be extracted.
const FallbackPayerName = "Valued Customer"

var (
	fromPattern         = regexp.MustCompile(`(?i)\bfrom\s+([a-z][a-z ]*?)(?:\s+(?:on|for)\b|\s*\d|\s*$)`)
	receivedFromPattern = regexp.MustCompile(`(?i)\breceived\s+from\s+([a-z]+(?:\s+[a-z]+)*)`)
	capitalizedPattern  = regexp.MustCompile(`\b[A-Z][a-z]+\b`)
)

// IsPaymentNotice reports whether a message ends with the USSD marker.
func IsPaymentNotice(msg string) bool {
	return strings.HasSuffix(strings.TrimSpace(msg), USSDMarker)
}

// ExtractPayerName pulls a best-effort payer name out of a payment notice.
// It never fails; unmatched input yields FallbackPayerName.
func ExtractPayerName(msg string) string {
	text := strings.TrimSpace(msg)
	text = strings.TrimSpace(strings.TrimSuffix(text, USSDMarker))

	if m := fromPattern.FindStringSubmatch(text); m != nil {
		if name := titleName(m[1]); name != "" {
			return name
		}
	}

	if m := receivedFromPattern.FindStringSubmatch(text); m != nil {
		if name := titleName(m[1]); name != "" {
			return name
		}
	}

	tokens := capitalizedPattern.FindAllString(text, 2)
	if len(tokens) > 0 {
		return strings.Join(tokens, " ")
	}

	return FallbackPayerName
}

func titleName(raw string) string {
	words := strings.Fields(raw)
	if len(words) == 0 {
		return ""
	}
	// Casers are stateful, so each call gets its own.
	return cases.Title(language.Und).String(strings.Join(words, " "))
}
