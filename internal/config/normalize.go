package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeAgenda()
	c.normalizeKeywords()
	c.normalizeOutput()
	c.normalizeFilter()
	if err := c.normalizeAuth(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeAgenda() {
	c.Agenda.ID = strings.TrimSpace(c.Agenda.ID)
	if c.Agenda.ID == "" {
		if value, ok := os.LookupEnv(AgendaIDEnvVar); ok {
			c.Agenda.ID = strings.TrimSpace(value)
		}
	}
}

func (c *Config) normalizeKeywords() {
	cleaned := make([]string, 0, len(c.Keywords.Keywords))
	for _, keyword := range c.Keywords.Keywords {
		if keyword = strings.TrimSpace(keyword); keyword != "" {
			cleaned = append(cleaned, keyword)
		}
	}
	c.Keywords.Keywords = cleaned
}

func (c *Config) normalizeOutput() {
	c.Output.ParentID = strings.TrimSpace(c.Output.ParentID)
	c.Output.FolderName = strings.TrimSpace(c.Output.FolderName)
}

func (c *Config) normalizeFilter() {
	c.Filter.MimeType = strings.TrimSpace(c.Filter.MimeType)
}

func (c *Config) normalizeAuth() error {
	var err error
	if strings.TrimSpace(c.Auth.CredentialsFile) == "" {
		c.Auth.CredentialsFile = defaultCredentialsFile
	}
	if c.Auth.CredentialsFile, err = expandPath(c.Auth.CredentialsFile); err != nil {
		return fmt.Errorf("auth.credentials_file: %w", err)
	}
	if strings.TrimSpace(c.Auth.TokenFile) == "" {
		c.Auth.TokenFile = defaultTokenFile
	}
	if c.Auth.TokenFile, err = expandPath(c.Auth.TokenFile); err != nil {
		return fmt.Errorf("auth.token_file: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
