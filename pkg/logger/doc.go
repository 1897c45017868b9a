// Package logger builds *slog.Logger values with functional options and
// injects request-scoped attributes from context.Context.
//
// New picks a JSON or text handler, applies the minimum level and static
// attributes, and wraps the result in LogHandlerDecorator, which runs the
// registered ContextExtractor callbacks on every record. That is how request
// IDs set by pkg/requestid reach every log line of a request.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(os.Getenv("APP_ENV"), "lipsumd"),
//		logger.WithContextExtractors(requestid.LogExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "generated",
//		logger.Operation("paragraph"),
//		logger.Bytes(len(out)),
//		logger.Duration(time.Since(start)),
//	)
//
// Binaries usually describe settings with Config and call NewFromConfig.
//
// # Attributes
//
// attr.go holds constructors that keep key names consistent: Operation,
// Seed, Bytes, Duration, Component, RequestID, Error and Errors. Error and
// Errors return an empty Attr for nil input so callers need no nil check.
package logger
