package logger_test

import (
	"context"
	"stylist/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
)

func TestSetup(t *testing.T) {
	for _, environment := range []string{logger.DevelopmentEnvironment, logger.ProductionEnvironment} {
		t.Run(environment, func(t *testing.T) {
			require.NotPanics(t, func() {
				logger.Setup(environment)
			})
			require.NotNil(t, logger.Get(context.Background()))
		})
	}
}

func TestGet(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	ctx := context.Background()
	require.NotNil(t, logger.Get(ctx), "should return default logger when context has no logger")

	customLogger, _ := zap.NewDevelopment()
	require.Equal(t, customLogger, logger.Get(logger.WithLogger(ctx, customLogger)),
		"should return logger from context")
}

func TestWithFields(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	ctx := context.Background()

	withFields := logger.WithFields(ctx, zap.String("component", "test"))
	require.NotEqual(t, logger.Get(ctx), logger.Get(withFields),
		"logger with fields should differ from the base logger")

	// logging through the helpers must not panic
	require.NotPanics(t, func() {
		logger.Debug(withFields, "debug line")
		logger.Info(withFields, "info line")
		logger.Warn(withFields, "warn line")
		logger.Error(withFields, "error line")
	})
}
