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

// tomlConfigFile represents the configuration file as it is encoded in TOML.
type tomlConfigFile struct {
	Profile *tomlProfile `toml:"profile"`
}

// tomlProfile represents a profile as it is encoded in TOML.
type tomlProfile struct {
	Name            string `toml:"name"`
	Version         string `toml:"yog-version"`
	LogLevel        string `toml:"log-level"`
	Prompt          bool   `toml:"prompt"`
	FoldConstants   bool   `toml:"fold-constants"`
	LiteralOverflow string `toml:"literal-overflow"`
	MaxSteps        int    `toml:"max-steps"`
}

// Load loads and validates the configuration file at path.
func Load(path string) (*Profile, error) {
	buff, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	tcf := &tomlConfigFile{}
	if err := toml.Unmarshal(buff, tcf); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if tcf.Profile == nil {
		return nil, fmt.Errorf("%s: missing [profile] table", path)
	}

	prof, err := convertProfile(tcf.Profile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	prof.Root = filepath.Dir(path)
	return prof, nil
}

// convertProfile validates a TOML profile and converts it into a profile.
// Omitted fields take their default values.
func convertProfile(tprof *tomlProfile) (*Profile, error) {
	if err := validateProfile(tprof); err != nil {
		return nil, err
	}

	prof := Default()
	if tprof.Name != "" {
		prof.Name = tprof.Name
	}

	if tprof.LogLevel != "" {
		prof.LogLevel = report.ParseLogLevel(tprof.LogLevel)
	}

	prof.Prompt = tprof.Prompt
	prof.FoldConstants = tprof.FoldConstants
	prof.WrapLiterals = tprof.LiteralOverflow == "wrap"
	prof.MaxSteps = tprof.MaxSteps

	return prof, nil
}

// validateProfile checks that the contents of a profile are valid.
func validateProfile(tprof *tomlProfile) error {
	if tprof.LogLevel != "" && !isLogLevelName(tprof.LogLevel) {
		return fmt.Errorf("unknown log level `%s`", tprof.LogLevel)
	}

	switch tprof.LiteralOverflow {
	case "", "error", "wrap":
	default:
		return fmt.Errorf("literal-overflow must be `error` or `wrap`, not `%s`", tprof.LiteralOverflow)
	}

	if tprof.MaxSteps < 0 {
		return errors.New("max-steps must not be negative")
	}

	if tprof.Version != "" && tprof.Version != common.YogVersion {
		report.ReportWarning(
			"config",
			"version of profile `%s` (v%s) does not match current yog version (v%s)",
			tprof.Name, tprof.Version, common.YogVersion,
		)
	}

	return nil
}

func isLogLevelName(name string) bool {
	for _, lname := range report.LogLevelNames {
		if name == lname {
			return true
		}
	}

	return false
}
