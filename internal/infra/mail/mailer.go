// Package mail delivers account emails through Resend, or only logs them when no
// provider is configured.
package mail

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"net/url"
	"strings"

	"catalog/config"
	"catalog/internal/domain/constants"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/service"
	logs "catalog/internal/infra/log"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"go.uber.org/fx"
)

const activationSubject = "Activate your account"

// Params defines the dependencies of the mailer.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New selects the mailer named by mail.provider. An empty provider logs messages only.
func New(params Params) (service.Mailer, error) {
	mailCfg := params.Config.Mail
	if mailCfg == nil {
		mailCfg = &config.MailConfig{}
	}

	clientHost := ""
	if params.Config.Activation != nil {
		clientHost = params.Config.Activation.ClientHost
	}

	switch mailCfg.Provider {
	case constants.MailProviderResend:
		if mailCfg.APIKey == "" || mailCfg.From == "" {
			return nil, errors.New("mail apiKey and from are required for the resend provider")
		}

		return NewResendMailer(resend.NewClient(mailCfg.APIKey), mailCfg.From, clientHost), nil
	case "", constants.MailProviderLog:
		params.Logger.Warn("Mail provider not configured, activation emails are only logged")

		return &logMailer{logger: params.Logger, links: newActivationLinks(clientHost)}, nil
	default:
		return nil, errors.Errorf("unknown mail provider: %s", mailCfg.Provider)
	}
}

// activationLinks builds the client URL an activation code is consumed at.
type activationLinks struct {
	clientHost string
}

func newActivationLinks(clientHost string) activationLinks {
	return activationLinks{clientHost: strings.TrimRight(clientHost, "/")}
}

func (l activationLinks) url(code string) string {
	return l.clientHost + "/auth/activation?code=" + url.QueryEscape(code)
}

func (l activationLinks) body(fullName, code string) string {
	return fmt.Sprintf(
		`<h1>Hello, %s!</h1><p>Confirm your email address to activate your account:</p>`+
			`<p><a href="%s">Activate account</a></p>`+
			`<p>If you did not register, you can ignore this email.</p>`,
		html.EscapeString(fullName),
		html.EscapeString(l.url(code)),
	)
}

type resendMailer struct {
	client *resend.Client
	from   string
	links  activationLinks
}

// NewResendMailer sends through an existing Resend client. Activation links point at clientHost.
func NewResendMailer(client *resend.Client, from, clientHost string) service.Mailer {
	return &resendMailer{client: client, from: from, links: newActivationLinks(clientHost)}
}

func (m *resendMailer) SendActivationCode(ctx context.Context, to, fullName, code string) error {
	_, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: activationSubject,
		Html:    m.links.body(fullName, code),
	})
	if err != nil {
		return domainerrors.ErrMailDeliveryFailed.WrapMessage(err.Error())
	}

	return nil
}

type logMailer struct {
	logger *slog.Logger
	links  activationLinks
}

func (m *logMailer) SendActivationCode(ctx context.Context, to, _, code string) error {
	logs.FromContext(ctx, m.logger).InfoContext(ctx, "Activation email not sent, no mail provider",
		slog.String("to", to),
		slog.String("activation_url", m.links.url(code)),
	)

	return nil
}
