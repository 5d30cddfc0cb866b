package email

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/require"
)

type stubSES struct {
	Sent []*ses.SendTemplatedEmailInput
	Err  error
}

func (s *stubSES) SendTemplatedEmail(
	ctx context.Context,
	params *ses.SendTemplatedEmailInput,
	optFns ...func(*ses.Options),
) (*ses.SendTemplatedEmailOutput, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.Sent = append(s.Sent, params)
	return &ses.SendTemplatedEmailOutput{}, nil
}

func TestPasswordResetLinkSent(t *testing.T) {
	client := &stubSES{}
	sender := newEmailSender(client, "noreply@budgetsync.example", "password-reset")
	link, err := url.Parse("https://budgetsync.example/auth/password_reset/abc_DEF-123")
	require.NoError(t, err)

	err = sender.SendPasswordResetLink(context.Background(), "alice@example.com", *link)

	require.NoError(t, err)
	require.Len(t, client.Sent, 1)
	sent := client.Sent[0]
	require.Equal(t, "noreply@budgetsync.example", *sent.Source)
	require.Equal(t, "password-reset", *sent.Template)
	require.Equal(t, []string{"alice@example.com"}, sent.Destination.ToAddresses)
	require.JSONEq(
		t,
		`{"passwordResetUrl":"https://budgetsync.example/auth/password_reset/abc_DEF-123"}`,
		*sent.TemplateData,
	)
}

func TestSendingErrorReturned(t *testing.T) {
	client := &stubSES{Err: errors.New("throttled")}
	sender := newEmailSender(client, "noreply@budgetsync.example", "password-reset")

	err := sender.SendPasswordResetLink(context.Background(), "alice@example.com", url.URL{})

	require.EqualError(t, err, "throttled")
}

func TestEmptyRecipientRejected(t *testing.T) {
	client := &stubSES{}
	sender := newEmailSender(client, "noreply@budgetsync.example", "password-reset")

	err := sender.SendPasswordResetLink(context.Background(), "", url.URL{})

	require.Error(t, err)
	require.Empty(t, client.Sent)
}
