// Package messaging holds the outbound chat gateway adapters.
package messaging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/twilio/twilio-go"
	twclient "github.com/twilio/twilio-go/client"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/DanielPopoola/doga-whatsapp-agent/internal/application"
	"github.com/DanielPopoola/doga-whatsapp-agent/internal/config"
	"github.com/DanielPopoola/doga-whatsapp-agent/internal/domain"
)

const (
	opSendText           = "send_text"
	opSendTextWithAction = "send_text_with_action"
)

type messageCreator interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

type TwilioGateway struct {
	api    messageCreator
	from   string
	logger *slog.Logger
}

// NewTwilioGateway returns nil when the credentials are incomplete, which the
// dispatcher treats as an unconfigured gateway.
func NewTwilioGateway(cfg config.TwilioConfig, logger *slog.Logger) application.MessagingGateway {
	if !cfg.Configured() {
		logger.Warn("twilio credentials missing, outbound messaging disabled")
		return nil
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return newTwilioGateway(client.Api, cfg.FromNumber, logger)
}

func newTwilioGateway(api messageCreator, from string, logger *slog.Logger) *TwilioGateway {
	return &TwilioGateway{
		api:    api,
		from:   domain.NormalizeAddress(from).ChannelAddress(),
		logger: logger,
	}
}

func (g *TwilioGateway) SendText(ctx context.Context, to, body string) error {
	params := g.params(to, body)
	return g.send(ctx, opSendText, to, params)
}

func (g *TwilioGateway) SendTextWithAction(ctx context.Context, to, body string, action application.Action) error {
	params := g.params(to, body)
	params.SetPersistentAction([]string{fmt.Sprintf("%s|%s", action.Label, action.URL)})
	return g.send(ctx, opSendTextWithAction, to, params)
}

func (g *TwilioGateway) params(to, body string) *openapi.CreateMessageParams {
	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(g.from)
	params.SetBody(body)
	return params
}

func (g *TwilioGateway) send(ctx context.Context, op, to string, params *openapi.CreateMessageParams) error {
	if err := ctx.Err(); err != nil {
		return &application.GatewayError{Operation: op, To: to, Err: err}
	}

	resp, err := g.api.CreateMessage(params)
	if err != nil {
		return &application.GatewayError{Operation: op, To: to, Err: describeTwilioError(err)}
	}

	sid := ""
	if resp != nil && resp.Sid != nil {
		sid = *resp.Sid
	}
	g.logger.Debug("message sent", "operation", op, "to", to, "sid", sid)
	return nil
}

func describeTwilioError(err error) error {
	var restErr *twclient.TwilioRestError
	if errors.As(err, &restErr) {
		return fmt.Errorf("twilio %d (status %d): %s: %w", restErr.Code, restErr.Status, restErr.Message, err)
	}
	return err
}
