package captcha

import "errors"

var ErrInvalidCaptcha = errors.New("invalid captcha")
