package recaptcha

import (
	e "budgetsync/internal/core/domain/errors"
	"budgetsync/internal/core/domain/logging"
	"budgetsync/internal/core/services/captcha"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const VerificationURL = "https://www.google.com/recaptcha/api/siteverify"

type verification struct {
	Success    bool     `json:"success"`
	Score      float64  `json:"score"`
	Action     string   `json:"action"`
	Hostname   string   `json:"hostname"`
	ErrorCodes []string `json:"error-codes"`
}

// Validator checks reCAPTCHA v3 tokens against Google's siteverify endpoint.
// If Google cannot be reached or answers with garbage the token is accepted,
// so an outage does not lock users out of sign up and password reset.
type Validator struct {
	log            logging.Logger
	client         *http.Client
	secretKey      string
	scoreThreshold float64
	endpoint       string
}

func New(
	log logging.Logger,
	secretKey string,
	scoreThreshold float64,
	timeout time.Duration,
) *Validator {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &Validator{
		log:            log,
		client:         &http.Client{Timeout: timeout},
		secretKey:      secretKey,
		scoreThreshold: scoreThreshold,
		endpoint:       VerificationURL,
	}
}

func (v *Validator) verify(ctx context.Context, token captcha.CaptchaToken) (verification, error) {
	var result verification
	form := url.Values{"secret": {v.secretKey}, "response": {string(token)}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return result, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return result, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return result, fmt.Errorf("siteverify responded with status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return result, fmt.Errorf("decode siteverify response: %w", err)
	}
	return result, nil
}

func (v *Validator) ValidateCaptchaToken(ctx context.Context, token captcha.CaptchaToken) bool {
	if token.IsZero() {
		v.log.Info(ctx, "Captcha token is missing.")
		return false
	}

	result, err := v.verify(ctx, token)
	if err != nil {
		logging.Error(ctx, v.log, err)
		return true
	}

	passed := result.Success && result.Score >= v.scoreThreshold
	v.log.Info(
		ctx,
		"Captcha token verified.",
		logging.Entry("passed", passed),
		logging.Entry("score", result.Score),
		logging.Entry("action", result.Action),
		logging.Entry("hostname", result.Hostname),
		logging.Entry("errorCodes", result.ErrorCodes),
	)
	return passed
}
