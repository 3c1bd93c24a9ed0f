// Package logging builds the zap logger every other package receives by
// injection, so log shape stays consistent between the solver's per-year
// lines and the HTTP access log.
package logging

import "go.uber.org/zap"

// New builds a production zap logger, or a development logger (human-
// readable, colorized) when level is "debug".
func New(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
