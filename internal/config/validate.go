package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable. Validation runs before any
// Drive credential or network use, so a broken file fails the run up front.
func (c *Config) Validate() error {
	if err := c.validateAgenda(); err != nil {
		return err
	}
	if err := c.validateKeywords(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateAgenda() error {
	if c.Agenda.ID == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/setlister/config.toml"
		}
		return fmt.Errorf("agenda.id is required. Set %s env var or edit %s (create with 'setlister config init')", AgendaIDEnvVar, defaultPath)
	}
	if c.Agenda.TableNumber < 0 {
		return errors.New("agenda.table_number must be zero (whole document) or a positive table position")
	}
	return nil
}

func (c *Config) validateKeywords() error {
	if len(c.Keywords.Keywords) == 0 {
		return errors.New("keywords.keywords must list at least one keyword")
	}
	return nil
}

func (c *Config) validateOutput() error {
	if c.Output.ParentID == "" {
		return errors.New("output.parent_id must be set")
	}
	if c.Output.FolderName == "" {
		return errors.New("output.folder_name must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "", "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
}
