// Command smtppass converts an IAM secret access key into an Amazon SES SMTP password.
//
// Usage:
//
//	smtppass [flags] <secret|-> <region>
//	smtppass -from-aws [-profile name] [flags] <region>
//
// The password is printed to stdout. Use "-" as the secret to read it from stdin.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
