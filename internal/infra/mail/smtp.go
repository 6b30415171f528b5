package mail

import (
	"context"
	"log/slog"
	"time"

	"accounts/config"
	"accounts/internal/errors"

	"github.com/sethvargo/go-retry"
	gomail "github.com/wneessen/go-mail"
)

const (
	smtpTimeout      = 15 * time.Second
	defaultRetryBase = 500 * time.Millisecond
)

// smtpSender is the subset of *gomail.Client used for delivery.
type smtpSender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*gomail.Msg) error
}

type smtpTransport struct {
	sender     smtpSender
	from       string
	fromName   string
	maxRetries uint64
	retryBase  time.Duration
	logger     *slog.Logger
}

func newSMTPTransport(cfg *config.MailerConfig, logger *slog.Logger) (*smtpTransport, error) {
	if cfg.Host == "" {
		return nil, errors.New("host is required for smtp mail provider")
	}
	if cfg.From == "" {
		return nil, errors.New("from address is required for smtp mail provider")
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTimeout(smtpTimeout),
	}
	if cfg.Secure {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSOpportunistic))
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create smtp client")
	}

	return &smtpTransport{
		sender:     client,
		from:       cfg.From,
		fromName:   cfg.FromName,
		maxRetries: uint64(max(cfg.MaxRetries, 0)),
		retryBase:  cfg.RetryBase,
		logger:     logger,
	}, nil
}

func (t *smtpTransport) buildMsg(msg *message) (*gomail.Msg, error) {
	m := gomail.NewMsg()
	if err := m.FromFormat(t.fromName, t.from); err != nil {
		return nil, errors.Wrap(err, "invalid from address")
	}
	if err := m.To(msg.To); err != nil {
		return nil, errors.Wrap(err, "invalid recipient address")
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.Text)
	m.AddAlternativeString(gomail.TypeTextHTML, msg.HTML)

	return m, nil
}

// send delivers msg, retrying temporary failures with exponential backoff.
func (t *smtpTransport) send(ctx context.Context, msg *message) error {
	m, err := t.buildMsg(msg)
	if err != nil {
		return err
	}

	base := t.retryBase
	if base <= 0 {
		base = defaultRetryBase
	}
	backoff := retry.WithMaxRetries(t.maxRetries, retry.NewExponential(base))
	attempt := 0

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := t.sender.DialAndSendWithContext(ctx, m)
		if err == nil {
			return nil
		}

		if !isTemporary(err) {
			return err
		}

		t.logger.WarnContext(ctx, "SMTP delivery failed, will retry",
			slog.String("to", msg.To),
			slog.Int("attempt", attempt),
			slog.Any("error", err),
		)

		return retry.RetryableError(err)
	})
}

// isTemporary reports whether a send error is worth retrying. Errors the server
// marks as permanent (5xx replies) are not retried; everything else is.
func isTemporary(err error) bool {
	if sendErr, ok := errors.Find[*gomail.SendError](err); ok {
		return sendErr.IsTemp()
	}

	return true
}
