package logging

import "go.uber.org/zap"

// New creates a named sugared logger off the global zap logger, so background
// components share the level and encoder set up by config.New
func New(component string) *zap.SugaredLogger {
	return zap.L().Named(component).Sugar()
}
