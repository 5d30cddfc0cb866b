package captcha

import "context"

type CaptchaToken string

func (t CaptchaToken) IsZero() bool {
	return string(t) == ""
}

type CaptchaValidator interface {
	ValidateCaptchaToken(ctx context.Context, token CaptchaToken) bool
}

type contextCaptchaToken string

const CONTEXT_CAPTCHA_TOKEN_KEY = contextCaptchaToken("captchaToken")

func WithToken(ctx context.Context, token CaptchaToken) context.Context {
	return context.WithValue(ctx, CONTEXT_CAPTCHA_TOKEN_KEY, token)
}

func TokenFromContext(ctx context.Context) CaptchaToken {
	token, _ := ctx.Value(CONTEXT_CAPTCHA_TOKEN_KEY).(CaptchaToken)
	return token
}

// AllowAlwaysCaptchaValidator accepts every token. It is used in test mode.
type AllowAlwaysCaptchaValidator struct{}

func NewAllowAlwaysCaptchaValidator() *AllowAlwaysCaptchaValidator {
	return &AllowAlwaysCaptchaValidator{}
}

func (v *AllowAlwaysCaptchaValidator) ValidateCaptchaToken(ctx context.Context, token CaptchaToken) bool {
	return true
}
