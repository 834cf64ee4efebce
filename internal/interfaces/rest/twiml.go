// Package rest carries the inbound webhook transport.
package rest

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/twilio/twilio-go/twiml"
)

const emptyResponse = `<?xml version="1.0" encoding="UTF-8"?><Response></Response>`

// WriteReply renders body as a TwiML response holding at most one message.
// A blank body produces an empty response so the gateway sends nothing.
func WriteReply(w http.ResponseWriter, body string, logger *slog.Logger) {
	var verbs []twiml.Element
	if strings.TrimSpace(body) != "" {
		verbs = append(verbs, &twiml.MessagingMessage{Body: body})
	}

	doc, err := twiml.Messages(verbs)
	if err != nil {
		logger.Error("failed to render twiml", "error", err)
		doc = emptyResponse
	}

	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, doc); err != nil {
		logger.Error("failed to write reply", "error", err)
	}
}

// WriteEmpty writes a response with no message.
func WriteEmpty(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, emptyResponse)
}

// EmptyResponse is the raw empty TwiML document.
func EmptyResponse() string {
	return emptyResponse
}
