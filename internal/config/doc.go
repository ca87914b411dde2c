// Package config loads, normalizes, and validates setlister configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the SETLISTER_AGENDA_ID
// environment fallback. The Config type centralizes every knob the pipeline
// needs: the agenda document, keyword list, output destination, and OAuth
// file locations.
//
// Always obtain settings through this package so downstream code receives
// sanitized values and clear validation errors before any network call is
// made.
package config
