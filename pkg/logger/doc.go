// Package logger builds log/slog loggers with functional options.
//
// Defaults target command-line use: text format, warn level, stderr output,
// leaving stdout to the command's actual result.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "smtppass"),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithOutput(os.Stderr),
//	)
//	log.Debug("deriving password", logger.Region("eu-west-1"))
//
// Options are applied in order, so WithLevel placed after WithEnvironment
// overrides the environment's default level.
//
// Attribute helpers (Error, Region, Source, ...) keep key names consistent.
// Helpers taking optional values return an empty slog.Attr, which slog drops.
package logger
