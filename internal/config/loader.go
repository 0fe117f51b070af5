package config

import (
	"encoding/json"
	stderrors "errors"
	"os"

	"github.com/spf13/viper"

	"github.com/crossdeploy/crossdeploy/internal/errors"
)

// LoadOrCreate reads the config at path. When the file does not exist it
// writes the default record and returns it; the second return value reports
// whether the file was created.
func LoadOrCreate(path string) (*Config, bool, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			if saveErr := Save(path, cfg); saveErr != nil {
				return nil, false, saveErr
			}
			return cfg, true, nil
		}
		return nil, false, errors.Wrap(err, errors.ErrConfigRead,
			"Failed to read "+FileName,
			"Check the file permissions in the project directory")
	}

	cfg, err := Load(path)
	return cfg, false, err
}

// Load reads and parses an existing config file.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		var parseErr viper.ConfigParseError
		if stderrors.As(err, &parseErr) {
			return nil, errors.Wrap(err, errors.ErrConfigParse,
				"Invalid JSON in "+FileName,
				"Fix the file by hand, or delete it to regenerate defaults")
		}
		return nil, errors.Wrap(err, errors.ErrConfigRead,
			"Failed to read "+FileName,
			"Check the file exists and is readable")
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse,
			"Invalid JSON in "+FileName,
			"Fix the file by hand, or delete it to regenerate defaults")
	}

	return cfg, nil
}

// Save writes the config as pretty-printed JSON. Null fields are written out
// as null so the file keeps the shape prompting expects.
func Save(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigWrite,
			"Failed to write "+FileName, "")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, errors.ErrConfigWrite,
			"Failed to write "+FileName,
			"Check write permissions in the project directory")
	}

	return nil
}
