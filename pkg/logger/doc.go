// Package logger builds log/slog loggers and provides the attribute helpers
// used across formguard.
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevelName("debug"),
//	    logger.WithAttr(logger.Component("formvalidator")),
//	)
//	log.Info("status changed", logger.Form(id), logger.Transition("touched", "valid"))
//
// Context extractors (WithContextValue, WithContextExtractors) copy
// request-scoped values such as request IDs into every record logged with
// the *Context methods.
package logger
