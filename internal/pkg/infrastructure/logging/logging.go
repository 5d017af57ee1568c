package logging

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type loggerContextKey struct {
	name string
}

var loggerCtxKey = &loggerContextKey{"logger"}

func NewLogger(ctx context.Context, serviceName, serviceVersion string) (context.Context, zerolog.Logger) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs

	logger := zerolog.New(os.Stdout).With().Timestamp().
		Str("service", strings.ToLower(serviceName)).
		Str("version", serviceVersion).
		Logger()

	if lvl, err := zerolog.ParseLevel(strings.ToLower(os.Getenv("LOG_LEVEL"))); err == nil && lvl != zerolog.NoLevel {
		logger = logger.Level(lvl)
	}

	ctx = NewContextWithLogger(ctx, logger)
	return ctx, logger
}

func NewContextWithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	ctx = context.WithValue(ctx, loggerCtxKey, logger)
	return ctx
}

func GetFromContext(ctx context.Context) zerolog.Logger {
	logger, ok := ctx.Value(loggerCtxKey).(zerolog.Logger)

	if !ok {
		return log.Logger
	}

	return logger
}

// Printf lets a zerolog logger stand in where a Printf style writer is
// expected, such as the gorm logger. Lines that carry an error are logged at
// error level, lines tagged [info] at info level and everything else, slow
// queries included, at warn level.
type Printf struct {
	Logger zerolog.Logger
}

func (p Printf) Printf(format string, args ...interface{}) {
	msg := strings.TrimSpace(fmt.Sprintf(format, args...))

	for _, arg := range args {
		if err, ok := arg.(error); ok {
			p.Logger.Error().Err(err).Msg(msg)
			return
		}
	}

	switch {
	case strings.Contains(msg, "[error]"):
		p.Logger.Error().Msg(msg)
	case strings.Contains(msg, "[info]"):
		p.Logger.Info().Msg(msg)
	default:
		p.Logger.Warn().Msg(msg)
	}
}
