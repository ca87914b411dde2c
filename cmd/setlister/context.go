package main

import (
	"strings"
	"sync"

	"setlister/internal/config"
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

// loadConfig resolves the configuration exactly once. A positional path wins
// over the --config flag; an explicitly named file that does not exist is an
// error rather than a silent fall back to defaults.
func (c *commandContext) loadConfig(positional string) (*config.Config, error) {
	c.configOnce.Do(func() {
		path := strings.TrimSpace(positional)
		if path == "" && c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}

		c.config, _, _, c.configErr = config.Load(path)
	})
	return c.config, c.configErr
}
