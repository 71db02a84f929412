package awscreds

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/ec2/imds"
)

// Option configures credential resolution.
type Option func(*options)

type options struct {
	profile  string
	provider aws.CredentialsProvider
}

// WithProfile selects a named profile from the shared config and credentials files.
func WithProfile(name string) Option {
	return func(o *options) {
		o.profile = name
	}
}

// WithProvider bypasses the default chain and resolves from p.
// Useful for testing with mocks.
func WithProvider(p aws.CredentialsProvider) Option {
	return func(o *options) {
		o.provider = p
	}
}

// WithStaticCredentials resolves the given key pair without touching the environment.
func WithStaticCredentials(accessKeyID, secretAccessKey string) Option {
	return func(o *options) {
		if accessKeyID != "" || secretAccessKey != "" {
			o.provider = credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, "")
		}
	}
}

// Resolve returns the access key pair from the AWS SDK default credential chain:
// environment variables, then shared config/credentials files.
// EC2 instance metadata is never queried.
func Resolve(ctx context.Context, opts ...Option) (aws.Credentials, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	provider := o.provider
	if provider == nil {
		loadOptions := []func(*config.LoadOptions) error{
			config.WithEC2IMDSClientEnableState(imds.ClientDisabled),
		}
		if o.profile != "" {
			loadOptions = append(loadOptions, config.WithSharedConfigProfile(o.profile))
		}

		cfg, err := config.LoadDefaultConfig(ctx, loadOptions...)
		if err != nil {
			return aws.Credentials{}, errors.Join(ErrLoadConfig, err)
		}
		provider = cfg.Credentials
	}
	if provider == nil {
		return aws.Credentials{}, ErrNoCredentials
	}

	creds, err := provider.Retrieve(ctx)
	if err != nil {
		return aws.Credentials{}, errors.Join(ErrNoCredentials, err)
	}
	if creds.SecretAccessKey == "" {
		return aws.Credentials{}, ErrNoCredentials
	}

	return creds, nil
}

// IsTemporary reports whether creds carry a session token.
// SES rejects SMTP passwords derived from temporary credentials.
func IsTemporary(creds aws.Credentials) bool {
	return creds.SessionToken != ""
}
