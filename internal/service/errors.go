package service

import "errors"

var ErrInvalidResult = errors.New("invalid quiz result")
