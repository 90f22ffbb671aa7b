package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"

	"yog/common"
)

// Find searches dir and each of its parents for a configuration file holding a
// profile.  It returns the path to the file if one is found.
func Find(dir string) (string, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}

	for {
		if path := filepath.Join(dir, common.ConfigFileName); checkPath(path) {
			return path, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}

		dir = parent
	}
}

// checkPath checks whether path is a configuration file.  Only the presence of
// the profile table is checked here: the file is validated when it is loaded.
func checkPath(path string) bool {
	finfo, err := os.Stat(path)
	if err != nil || finfo.IsDir() {
		return false
	}

	tree, err := toml.LoadFile(path)
	if err != nil {
		return false
	}

	return tree.Has("profile")
}

// LoadFor loads the profile that applies to a source file.  The default
// profile is returned if there is no configuration file above it.
func LoadFor(srcPath string) (*Profile, error) {
	path, ok := Find(filepath.Dir(srcPath))
	if !ok {
		return Default(), nil
	}

	return Load(path)
}
