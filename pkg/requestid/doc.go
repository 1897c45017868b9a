// Package requestid attaches a correlation ID to every HTTP request.
//
// Middleware reuses a client-supplied X-Request-ID header when it is at
// most 128 characters of letters, digits, '-' and '_'; otherwise it
// generates a UUIDv7. The ID is stored in the request context, echoed in
// the response header, and can be added to log records with LogExtractor:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LogExtractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
// Invalid IDs are replaced silently; the package returns no errors.
package requestid
