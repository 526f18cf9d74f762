package vector

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// defaultLogger is shared by every vector created without WithLogger.
var defaultLogger = newStderrLogger(zapcore.WarnLevel)

// newStderrLogger builds a console logger on stderr. Diagnostics are
// human-facing, so the development encoder is used.
func newStderrLogger(level zapcore.Level) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr),
		level,
	)
	return zap.New(core).Named("vector")
}

// logAllocFailure reports a failed allocation with the requested byte size.
func logAllocFailure(l *zap.Logger, op string, requested int, err error) {
	l.Error("allocation failed",
		zap.String("op", op),
		zap.Int("requested", requested),
		zap.Error(err),
	)
}

// logNoComparator reports an ordered operation on a vector without comparator.
func logNoComparator(l *zap.Logger, op string) {
	l.Warn("no comparator set", zap.String("op", op))
}
