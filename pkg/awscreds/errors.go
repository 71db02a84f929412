package awscreds

import "errors"

var (
	ErrLoadConfig    = errors.New("failed to load aws configuration")
	ErrNoCredentials = errors.New("no aws credentials available")
)
