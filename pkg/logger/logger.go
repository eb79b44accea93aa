// Package logger provides the process-wide zap logger. Lines are written as
// "time - LEVEL - message" followed by any structured fields.
package logger

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// DevelopmentEnvironment logs in the human-readable console format.
	DevelopmentEnvironment = "development"

	// ProductionEnvironment logs one JSON object per line.
	ProductionEnvironment = "production"

	// TimeLayout renders timestamps like "2024-01-02 15:04:05,123".
	TimeLayout = "2006-01-02 15:04:05,000"
)

// Options controls how New builds a logger.
type Options struct {
	// Environment selects the encoder, see DevelopmentEnvironment and ProductionEnvironment.
	Environment string
	// Level is the minimum level: debug, info, warn or error. Empty means info.
	Level string
	// Output defaults to os.Stderr.
	Output io.Writer
}

var defaultLogger = zap.NewNop() //nolint: gochecknoglobals

// New builds a logger from opts.
func New(opts Options) (*zap.Logger, error) {
	lvl := zapcore.InfoLevel
	if s := strings.TrimSpace(opts.Level); s != "" {
		if err := lvl.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
			return nil, errors.Wrapf(err, "parse log level %q", opts.Level)
		}
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "message",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeTime:       zapcore.TimeEncoderOfLayout(TimeLayout),
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " - ",
	}
	var enc zapcore.Encoder
	if opts.Environment == ProductionEnvironment {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(out), lvl)), nil
}

// Setup builds a logger with New and installs it as the default returned by Get.
func Setup(opts Options) error {
	l, err := New(opts)
	if err != nil {
		return err
	}
	defaultLogger = l

	return nil
}

type key struct{}

// Get returns the logger stored in ctx, or the default one.
func Get(ctx context.Context) *zap.Logger {
	if l, _ := ctx.Value(key{}).(*zap.Logger); l != nil {
		return l
	}

	return defaultLogger
}

// WithLogger returns a copy of ctx carrying l.
func WithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, key{}, l)
}

// WithFields returns a copy of ctx whose logger carries fields.
func WithFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

func Debug(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Debug(msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Error(msg, fields...)
}
