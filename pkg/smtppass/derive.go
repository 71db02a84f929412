package smtppass

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

const (
	// Version is the scheme tag prepended to every derived password.
	Version byte = 0x04

	// PasswordSize is the decoded length of a password: version tag plus digest.
	PasswordSize = 1 + sha256.Size

	date     = "11111111"
	service  = "ses"
	message  = "SendRawEmail"
	terminal = "aws4_request"
	prefix   = "AWS4"
)

// Derive converts a secret access key into the SMTP password for region.
func Derive(secret, region string) (string, error) {
	return DeriveBytes([]byte(secret), region)
}

// DeriveBytes is Derive for raw secret bytes.
// The result is deterministic for a given (secret, region) pair.
func DeriveBytes(secret []byte, region string) (string, error) {
	if err := ValidateRegion(region); err != nil {
		return "", err
	}

	payload := make([]byte, 0, PasswordSize)
	payload = append(payload, Version)
	payload = append(payload, signature(secret, region)...)

	return base64.StdEncoding.EncodeToString(payload), nil
}

// signature runs the SigV4-style key chain over the fixed scope and signs message.
func signature(secret []byte, region string) []byte {
	key := make([]byte, 0, len(prefix)+len(secret))
	key = append(key, prefix...)
	key = append(key, secret...)
	defer clear(key)

	sig := sign(key, date)
	for _, msg := range []string{region, service, terminal, message} {
		sig = sign(sig, msg)
	}
	return sig
}

func sign(key []byte, msg string) []byte {
	h := hmac.New(sha256.New, key)
	h.Write([]byte(msg))
	return h.Sum(nil)
}
