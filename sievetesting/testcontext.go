package sievetesting

import (
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
)

type TestConfig struct {
	// TestLabelPrefix names the service in log lines.
	TestLabelPrefix string

	// LogLevel is passed to logger.New. Defaults to "NOOP".
	LogLevel string
}

type TestContext struct {
	Log  logger.Logger
	Keys KeyGenerator
	T    *testing.T
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	level := cfg.LogLevel
	if level == "" {
		level = "NOOP"
	}
	logger.New(level)

	return TestContext{
		T:    t,
		Log:  logger.Sugar.WithServiceName(cfg.TestLabelPrefix),
		Keys: NewKeyGenerator(),
	}
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }
