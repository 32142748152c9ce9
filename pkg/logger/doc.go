// Package logger builds *slog.Logger values for the command line tools and
// holds the attribute helpers used across the module.
//
// New takes functional options:
//
//   - WithEnvironment picks level and format for development, staging or
//     production and tags records with service and env.
//   - WithFormat, WithLevel and WithOutput override single settings.
//   - WithAttr attaches static attributes.
//   - WithContextValue and WithContextExtractors add attributes taken from
//     the context passed to InfoContext and friends.
//
// Records go to standard error by default so standard output stays free for
// reports.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "seqscan"),
//	    logger.WithContextValue("run_id", runIDKey{}),
//	)
//	log.WarnContext(ctx, "invalid field",
//	    logger.Line(12),
//	    logger.Field("iban"),
//	    logger.Error(err),
//	)
//
// Error and Errors return an empty attribute for nil errors, which slog
// drops, so callers need no nil check.
package logger
