package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// DefaultConfigFile is the configuration file looked up in the working directory
	DefaultConfigFile = ".sqlformat.yaml"

	// ConfigEnvVar names an alternative configuration file
	ConfigEnvVar = "SQLFORMAT_CONFIG"

	// DefaultDialect is used when neither the config file nor a flag names one
	DefaultDialect = "sql"

	// SQLExtension is the extension of files picked up when formatting directories
	SQLExtension = ".sql"
)
