package smtppass

import (
	"crypto/hmac"
	"encoding/base64"
	"errors"
)

// Verify reports whether password is the SMTP password derived from secret for region.
// Region errors are returned as-is; a malformed password simply does not match.
func Verify(password, secret, region string) (bool, error) {
	expected, err := Derive(secret, region)
	if err != nil {
		return false, err
	}
	return hmac.Equal([]byte(password), []byte(expected)), nil
}

// Inspect decodes password and returns its version tag and signature.
func Inspect(password string) (byte, []byte, error) {
	raw, err := base64.StdEncoding.DecodeString(password)
	if err != nil {
		return 0, nil, errors.Join(ErrMalformedPassword, err)
	}
	if len(raw) != PasswordSize || raw[0] != Version {
		return 0, nil, ErrMalformedPassword
	}
	return raw[0], raw[1:], nil
}
