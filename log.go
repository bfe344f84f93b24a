package bastools

import "go.uber.org/zap"

var logger = zap.NewNop()

// SetLogger sets the logger used by this package. Logging is disabled by
// default; a nil l disables it again.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
