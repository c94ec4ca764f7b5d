package domain

import "errors"

var (
	ErrUnknownModel = errors.New("unknown model")
	ErrNoFile       = errors.New("no file provided")
	ErrNoParameters = errors.New("no parameters provided")
)
