package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config resolves where the key-value store lives on disk.
type Config interface {
	BasePath() string
}

// LoadConfig reads the .focus config file (and FOCUS_* environment
// overrides) to locate the store directory. Missing config is not an error;
// the default path is used.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.focus.db")
	viper.SetConfigName(".focus") // .yaml is implicit
	viper.SetEnvPrefix("FOCUS")
	viper.AutomaticEnv()

	if override := os.Getenv("FOCUS_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("error reading config file: %v", err)
			return nil, err
		}
	}

	return &fileConfig{Path: viper.GetString("path")}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	expanded, err := homedir.Expand(f.Path)
	if err != nil {
		return f.Path
	}
	return expanded
}
