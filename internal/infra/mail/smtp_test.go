package mail

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"accounts/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "github.com/wneessen/go-mail"
)

type flakySender struct {
	failures int
	err      error
	calls    int
}

func (s *flakySender) DialAndSendWithContext(_ context.Context, _ ...*gomail.Msg) error {
	s.calls++
	if s.calls <= s.failures {
		return s.err
	}

	return nil
}

func newTestSMTPTransport(sender smtpSender, maxRetries uint64) *smtpTransport {
	return &smtpTransport{
		sender:     sender,
		from:       "no-reply@example.com",
		fromName:   "Company",
		maxRetries: maxRetries,
		retryBase:  time.Millisecond,
		logger:     slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
	}
}

func testMessage() *message {
	return &message{To: "ada@example.com", Subject: "Verify Email", Text: "text", HTML: "<p>html</p>"}
}

func TestSMTPTransport_RetriesUntilSuccess(t *testing.T) {
	sender := &flakySender{failures: 2, err: errors.New("dial tcp: connection refused")}
	tr := newTestSMTPTransport(sender, 3)

	require.NoError(t, tr.send(context.Background(), testMessage()))
	assert.Equal(t, 3, sender.calls)
}

func TestSMTPTransport_GivesUpAfterMaxRetries(t *testing.T) {
	sender := &flakySender{failures: 10, err: errors.New("dial tcp: connection refused")}
	tr := newTestSMTPTransport(sender, 2)

	err := tr.send(context.Background(), testMessage())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, 3, sender.calls, "first attempt plus two retries")
}

func TestSMTPTransport_PermanentErrorIsNotRetried(t *testing.T) {
	sender := &flakySender{failures: 10, err: &gomail.SendError{Reason: gomail.ErrSMTPMailFrom}}
	tr := newTestSMTPTransport(sender, 3)

	require.Error(t, tr.send(context.Background(), testMessage()))
	assert.Equal(t, 1, sender.calls)
}

func TestSMTPTransport_InvalidRecipient(t *testing.T) {
	sender := &flakySender{}
	tr := newTestSMTPTransport(sender, 3)

	msg := testMessage()
	msg.To = "not an address"

	assert.ErrorContains(t, tr.send(context.Background(), msg), "invalid recipient address")
	assert.Zero(t, sender.calls)
}
