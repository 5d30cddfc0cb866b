package profile

import "errors"

var ErrProfileDoesNotExist = errors.New("profile does not exist")
