// Package smtppass derives Amazon SES SMTP passwords from IAM secret access keys.
//
// SES does not accept a secret access key directly over SMTP. Instead it expects
// a password produced by a fixed SigV4-style key chain: the secret, prefixed
// with "AWS4", is chained through HMAC-SHA256 over a constant date, the region,
// the "ses" service name and the "aws4_request" terminator, and the result signs
// the "SendRawEmail" action. The 32-byte signature is prefixed with a version
// byte (0x04) and base64 encoded.
//
// # Usage
//
//	import "github.com/dmitrymomot/smtpcreds/pkg/smtppass"
//
//	password, err := smtppass.Derive(secretAccessKey, "eu-west-1")
//	if err != nil {
//	    // errors.Is(err, smtppass.ErrInvalidRegion)
//	}
//
//	creds, err := smtppass.NewCredentials(accessKeyID, secretAccessKey, "eu-west-1")
//	// creds.Endpoint == "email-smtp.eu-west-1.amazonaws.com", creds.Port == 587
//
// Only regions with an SES SMTP endpoint are accepted; see Regions.
//
// # Error Handling
//
// An unsupported region yields *InvalidRegionError, which matches
// ErrInvalidRegion. Inspect returns ErrMalformedPassword for values that are not
// derived passwords.
//
// All functions are pure and safe for concurrent use.
package smtppass
