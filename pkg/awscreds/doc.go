// Package awscreds resolves an IAM access key pair through the AWS SDK for Go v2
// so a secret access key never has to appear on a command line.
//
// Resolve walks the SDK's default chain (environment variables, then the shared
// config and credentials files, optionally for a named profile). Instance
// metadata lookups are disabled, so resolution stays local.
//
//	creds, err := awscreds.Resolve(ctx, awscreds.WithProfile("ses-sender"))
//	if err != nil {
//	    // errors.Is(err, awscreds.ErrNoCredentials) or awscreds.ErrLoadConfig
//	}
//	password, err := smtppass.Derive(creds.SecretAccessKey, "eu-west-1")
//
// SES only accepts SMTP passwords derived from long-term keys; use IsTemporary
// to detect STS session credentials.
package awscreds
