package sendpasswordresettoken

import (
	e "budgetsync/internal/core/domain/errors"
	"budgetsync/internal/core/domain/logging"
	"budgetsync/internal/core/domain/user"
	"budgetsync/internal/core/services"
	"context"
	"net/url"
	"time"
)

type serviceWithLinkSending struct {
	log      logging.Logger
	notifier user.PasswordResetNotifier
	baseURL  url.URL
	timeout  time.Duration
	inner    services.Service[Input, Result]
}

// NewWithLinkSending sends the reset link for a freshly issued token.
// Notifier failures are logged and never returned, the issued token stays valid.
func NewWithLinkSending(
	log logging.Logger,
	notifier user.PasswordResetNotifier,
	baseURL url.URL,
	timeout time.Duration,
	inner services.Service[Input, Result],
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if notifier == nil {
		panic(e.NewNilArgumentError("notifier"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &serviceWithLinkSending{
		log:      log,
		notifier: notifier,
		baseURL:  baseURL,
		timeout:  timeout,
		inner:    inner,
	}
}

func (s *serviceWithLinkSending) Run(ctx context.Context, input Input) (result Result, err error) {
	result, err = s.inner.Run(ctx, input)
	if err != nil || !result.Token.IsPresent {
		return result, err
	}

	token := result.Token.Value
	link := user.NewPasswordResetLink(s.baseURL, token.Token)

	sendCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	if err := s.notifier.SendPasswordResetLink(sendCtx, result.Recipient, link); err != nil {
		s.log.Error(
			ctx,
			"Could not send password reset link.",
			logging.Entry("userId", token.UserID),
			logging.Entry("token", token.Token),
			logging.Entry("err", err),
		)
		return result, nil
	}

	s.log.Info(
		ctx,
		"Password reset link has been sent.",
		logging.Entry("userId", token.UserID),
		logging.Entry("token", token.Token),
	)
	return result, nil
}
