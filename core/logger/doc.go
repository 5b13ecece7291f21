// Package logger builds the application's zap logger.
//
// Level "debug" uses zap's development preset; any other level uses the
// production preset at that level. Format selects json or console encoding.
// WithRayID tags a logger with the ray id of the current Fiber request.
package logger
