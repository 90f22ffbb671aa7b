package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"

	"yog/common"
	"yog/report"
)

// Init creates a configuration file holding the default profile in dir.
func Init(dir string) (string, error) {
	path := filepath.Join(dir, common.ConfigFileName)

	// check to see if a configuration file already exists
	_, err := os.Stat(path)
	if err == nil {
		return "", errors.New("configuration file already exists")
	}

	if !os.IsNotExist(err) {
		return "", fmt.Errorf("configuration file error: %w", err)
	}

	prof := Default()
	tprof := &tomlProfile{
		Name:            prof.Name,
		Version:         common.YogVersion,
		LogLevel:        report.LogLevelNames[prof.LogLevel],
		LiteralOverflow: "error",
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("error creating configuration file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Order(toml.OrderPreserve).Encode(&tomlConfigFile{Profile: tprof}); err != nil {
		return "", fmt.Errorf("error encoding TOML: %w", err)
	}

	return path, nil
}
