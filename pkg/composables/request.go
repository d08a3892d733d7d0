package composables

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/talentgrid-io/talentgrid/pkg/constants"
)

var (
	ErrNoLogger = errors.New("logger not found")
	// ErrNoCaller is returned when the caller-identity header never reached
	// the context. The HTTP layer maps it to a 400.
	ErrNoCaller = errors.New("caller identity not found")
)

// UseLogger returns the request-scoped logger from the context.
func UseLogger(ctx context.Context) *logrus.Entry {
	logger := ctx.Value(constants.LoggerKey)
	if logger == nil {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return logger.(*logrus.Entry)
}

func WithLogger(ctx context.Context, logger *logrus.Entry) context.Context {
	return context.WithValue(ctx, constants.LoggerKey, logger)
}

// WithCaller attaches the authenticated caller id (clerk user id) to the context.
func WithCaller(ctx context.Context, callerID string) context.Context {
	return context.WithValue(ctx, constants.CallerKey, callerID)
}

// UseCaller returns the caller id set by the identity middleware.
func UseCaller(ctx context.Context) (string, error) {
	v, ok := ctx.Value(constants.CallerKey).(string)
	if !ok || v == "" {
		return "", ErrNoCaller
	}
	return v, nil
}

func UseRequestID(ctx context.Context) string {
	v, _ := ctx.Value(constants.RequestIDKey).(string)
	return v
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, constants.RequestIDKey, requestID)
}
