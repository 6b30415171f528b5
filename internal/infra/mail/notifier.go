// Package mail delivers account emails through SMTP or the structured log.
package mail

import (
	"context"
	"log/slog"
	"regexp"

	"accounts/config"
	"accounts/internal/domain/constants"
	"accounts/internal/domain/service"
	"accounts/internal/errors"

	"go.uber.org/fx"
)

// transport sends one rendered message.
type transport interface {
	send(ctx context.Context, msg *message) error
}

type notifier struct {
	renderer  *renderer
	transport transport
}

// NotifierParams holds dependencies for Notifier, injected by Fx
type NotifierParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewNotifier creates a Notifier for the configured mail provider.
// The log transport is only used when selected explicitly.
func NewNotifier(params NotifierParams) (service.Notifier, error) {
	cfg := params.Config.Mailer
	logger := params.Logger

	r, err := newRenderer()
	if err != nil {
		return nil, err
	}

	if cfg == nil || cfg.Provider == "" {
		return nil, errors.New("mail provider is required")
	}

	if cfg.Provider == constants.MailProviderLog {
		logger.Warn("Mail provider set to log, emails will not be delivered")

		return &notifier{renderer: r, transport: &logTransport{logger: logger}}, nil
	}

	if cfg.Provider != constants.MailProviderSMTP {
		return nil, errors.Errorf("unknown mail provider: %s", cfg.Provider)
	}

	smtp, err := newSMTPTransport(cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("Using SMTP mail provider",
		slog.String("host", cfg.Host),
		slog.Int("port", cfg.Port),
	)

	return &notifier{renderer: r, transport: smtp}, nil
}

func (n *notifier) SendConfirmation(ctx context.Context, mail service.ConfirmationMail) error {
	msg, err := n.renderer.render(kindConfirmation, mail.To, subjectConfirmation, templateData{Name: mail.Name, Link: mail.Link})
	if err != nil {
		return err
	}

	return errors.Wrap(n.transport.send(ctx, msg), "failed to send confirmation email")
}

func (n *notifier) SendPasswordReset(ctx context.Context, mail service.PasswordResetMail) error {
	msg, err := n.renderer.render(kindPasswordReset, mail.To, subjectPasswordReset, templateData{Name: mail.Name, Link: mail.Link})
	if err != nil {
		return err
	}

	return errors.Wrap(n.transport.send(ctx, msg), "failed to send password reset email")
}

// tokenParam matches the value of a token query parameter in a link.
var tokenParam = regexp.MustCompile(`(token=)[^&\s"']+`)

func redactTokens(body string) string {
	return tokenParam.ReplaceAllString(body, "${1}[REDACTED]")
}

// logTransport writes messages to the structured log instead of delivering them.
// Token values in links are redacted.
type logTransport struct {
	logger *slog.Logger
}

func (t *logTransport) send(ctx context.Context, msg *message) error {
	t.logger.InfoContext(ctx, "[LogMail] Email not delivered, logging instead",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("body", redactTokens(msg.Text)),
	)

	return nil
}

// Module provides the mail FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotifier),
)
