package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/smtpcreds/pkg/awscreds"
	"github.com/dmitrymomot/smtpcreds/pkg/config"
	"github.com/dmitrymomot/smtpcreds/pkg/logger"
	"github.com/dmitrymomot/smtpcreds/pkg/smtppass"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2

	name = "smtppass"
)

var errPasswordMismatch = errors.New("password does not match")

type options struct {
	output      string
	fromAWS     bool
	profile     string
	accessKeyID string
	verify      string
	verifySet   bool
	regions     bool
	verbose     bool
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cfg Config
	if err := config.Load(&cfg, config.WithPrefix(envPrefix), config.WithDotEnv()); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return exitFailure
	}

	opts, positional, err := parseFlags(args, cfg, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		return exitUsage
	}

	if opts.regions {
		for _, r := range smtppass.Regions() {
			fmt.Fprintln(stdout, r)
		}
		return exitOK
	}

	log, err := newLogger(cfg, opts, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return exitUsage
	}

	if !validOutput(opts.output) {
		fmt.Fprintf(stderr, "%s: invalid output format %q: must be %s, %s or %s\n", name, opts.output, outputText, outputJSON, outputYAML)
		return exitUsage
	}

	want := 2
	if opts.fromAWS {
		want = 1
	}
	if len(positional) != want {
		fmt.Fprintf(stderr, "%s: expected %d argument(s), got %d\n", name, want, len(positional))
		printUsage(stderr)
		return exitUsage
	}

	region := positional[len(positional)-1]
	if err := smtppass.ValidateRegion(region); err != nil {
		fmt.Fprintf(stderr, "%s: %v\nvalid regions: %s\n", name, err, strings.Join(smtppass.Regions(), ", "))
		return exitUsage
	}
	log = log.With(logger.Region(region))

	secret, accessKeyID, err := resolveSecret(ctx, log, opts, positional, stdin)
	if err != nil {
		log.Error("failed to resolve secret", logger.Error(err))
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return exitFailure
	}

	if opts.verifySet {
		if err := verify(log, opts.verify, secret, region); err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", name, err)
			return exitFailure
		}
		fmt.Fprintln(stdout, "ok")
		return exitOK
	}

	creds, err := smtppass.NewCredentials(accessKeyID, secret, region)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return exitUsage
	}
	log.Debug("derived smtp password", slog.String("endpoint", creds.Endpoint))

	if err := render(stdout, opts.output, creds); err != nil {
		log.Error("failed to write output", logger.Error(err))
		return exitFailure
	}
	return exitOK
}

func parseFlags(args []string, cfg Config, stderr io.Writer) (options, []string, error) {
	var opts options

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		printUsage(stderr)
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.output, "o", cfg.Output, "output format: text, json or yaml")
	fs.BoolVar(&opts.fromAWS, "from-aws", false, "read the secret access key from the AWS credential chain")
	fs.StringVar(&opts.profile, "profile", cfg.AWSProfile, "AWS shared config profile (with -from-aws)")
	fs.StringVar(&opts.accessKeyID, "access-key-id", "", "access key id reported as the SMTP username")
	fs.StringVar(&opts.verify, "verify", "", "check that this SMTP password matches instead of printing one")
	fs.BoolVar(&opts.regions, "regions", false, "list supported regions and exit")
	fs.BoolVar(&opts.verbose, "v", false, "verbose logging to stderr")

	if err := fs.Parse(args); err != nil {
		return opts, nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "verify" {
			opts.verifySet = true
		}
	})
	return opts, fs.Args(), nil
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "usage: %s [flags] <secret|-> <region>\n", name)
	fmt.Fprintf(w, "       %s -from-aws [-profile name] [flags] <region>\n", name)
}

// newLogger layers explicit settings over the environment preset, if any.
// With nothing configured it logs text at warn level.
func newLogger(cfg Config, opts options, stderr io.Writer) (*slog.Logger, error) {
	logOpts := []logger.Option{logger.WithOutput(stderr)}
	if cfg.Env != "" {
		logOpts = append(logOpts, logger.WithEnvironment(cfg.Env, name))
	}
	if cfg.LogFormat != "" {
		format, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return nil, err
		}
		logOpts = append(logOpts, logger.WithFormat(format))
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		logOpts = append(logOpts, logger.WithLevel(level))
	}
	if opts.verbose {
		logOpts = append(logOpts, logger.WithLevel(slog.LevelDebug))
	}
	return logger.New(logOpts...), nil
}

// resolveSecret returns the secret access key and, when known, its access key id.
func resolveSecret(ctx context.Context, log *slog.Logger, opts options, positional []string, stdin io.Reader) (string, string, error) {
	if opts.fromAWS {
		creds, err := awscreds.Resolve(ctx, awscreds.WithProfile(opts.profile))
		if err != nil {
			return "", "", err
		}
		if awscreds.IsTemporary(creds) {
			log.Warn("temporary credentials produce passwords SES will reject", logger.AccessKeyID(creds.AccessKeyID))
		}
		log.Debug("resolved secret", logger.Source("aws"), logger.Profile(opts.profile), logger.AccessKeyID(creds.AccessKeyID))

		accessKeyID := opts.accessKeyID
		if accessKeyID == "" {
			accessKeyID = creds.AccessKeyID
		}
		return creds.SecretAccessKey, accessKeyID, nil
	}

	if positional[0] == "-" {
		secret, err := readSecret(stdin)
		if err != nil {
			return "", "", err
		}
		log.Debug("resolved secret", logger.Source("stdin"))
		return secret, opts.accessKeyID, nil
	}

	log.Debug("resolved secret", logger.Source("argument"))
	return positional[0], opts.accessKeyID, nil
}

// readSecret reads the first line of r without its line terminator.
func readSecret(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading secret from stdin: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errors.New("no secret on stdin")
	}
	return line, nil
}

func verify(log *slog.Logger, password, secret, region string) error {
	if _, _, err := smtppass.Inspect(password); err != nil {
		log.Debug("verify input is not a derived password", logger.Error(err))
		return smtppass.ErrMalformedPassword
	}
	ok, err := smtppass.Verify(password, secret, region)
	if err != nil {
		return err
	}
	if !ok {
		return errPasswordMismatch
	}
	return nil
}
