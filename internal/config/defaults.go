package config

const (
	defaultCredentialsFile = "credentials.json"
	defaultTokenFile       = "token.json"
	defaultLogFormat       = ""
	defaultLogLevel        = "info"

	// AgendaIDEnvVar overrides agenda.id when the config file leaves it empty.
	AgendaIDEnvVar = "SETLISTER_AGENDA_ID"
)

// Default returns a Config populated with repository defaults. The credential
// and token files resolve against the working directory unless overridden.
func Default() Config {
	return Config{
		Auth: Auth{
			CredentialsFile: defaultCredentialsFile,
			TokenFile:       defaultTokenFile,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
