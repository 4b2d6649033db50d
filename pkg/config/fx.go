package config

import (
	"os"

	"github.com/pseudomuto/sqlformat/pkg/consts"
	"go.uber.org/fx"
)

var Module = fx.Module("config", fx.Provide(
	// Loads $SQLFORMAT_CONFIG, or .sqlformat.yaml from the working directory. Defaults
	// are used when the file doesn't exist so that sqlformat works without any setup.
	func() (*Config, error) {
		path := os.Getenv(consts.ConfigEnvVar)
		if path == "" {
			path = consts.DefaultConfigFile
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			return Defaults(), nil
		}

		return LoadConfigFile(path)
	},
))
