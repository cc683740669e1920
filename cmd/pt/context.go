package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"powertools/internal/config"
	"powertools/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// logger builds a logger from config, writing to the command's error stream.
// Falls back to defaults (and a nop logger on construction failure) so
// commands never fail just because logging could not be configured.
func (c *commandContext) logger(cmd *cobra.Command) *slog.Logger {
	opts := logging.Options{Output: cmd.ErrOrStderr()}
	if cfg, err := c.ensureConfig(); err == nil && cfg != nil {
		opts.Level = cfg.Logging.Level
		opts.Format = cfg.Logging.Format
	}
	logger, err := logging.New(opts)
	if err != nil {
		return logging.NewNop()
	}
	return logger
}

// printer returns the console sink for human-facing command output.
func (c *commandContext) printer(cmd *cobra.Command) *logging.Printer {
	return logging.NewPrinter(cmd.OutOrStdout())
}
