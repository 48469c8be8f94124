package pkg

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
)

// ConfigFile is the base name of the YAML configuration file located in
// [ConfigDir].
const ConfigFile = "config.yaml"

// Prefix returns the base name used to construct the configuration and cache
// directory paths.
//
// By default, Prefix is the base name of the executable file unless it matches
// one of the following substitution rules:
//   - "__debug_bin" (default output of the dlv debugger): replaced with [Name]
//   - "^\.+" (dot-prefixed names): remove the dot prefix
//   - "" (nothing left after substitution): replaced with [Name]
//
//nolint:gochecknoglobals
var Prefix = sync.OnceValue(
	func() string {
		id := os.Args[0]
		exe, err := os.Executable()
		if err == nil {
			id = exe
		}

		return prefixOf(id)
	},
)

func prefixOf(path string) string {
	base := filepath.Base(path)
	id := strings.TrimSuffix(base, filepath.Ext(base))

	for _, sub := range []struct {
		rex *regexp.Regexp
		rep string
	}{
		{regexp.MustCompile(`^__debug_bin\d*$`), Name},
		{regexp.MustCompile(`^\.+`), ""},
	} {
		id = sub.rex.ReplaceAllString(id, sub.rep)
	}

	if id == "" {
		return Name
	}

	return id
}

// ConfigDir returns the configuration directory path.
//
//nolint:gochecknoglobals
var ConfigDir = sync.OnceValue(
	func() string {
		return userDir(os.UserConfigDir, ".config")
	},
)

// CacheDir returns the cache directory path used for transient files such as
// profiles.
//
//nolint:gochecknoglobals
var CacheDir = sync.OnceValue(
	func() string {
		return userDir(os.UserCacheDir, ".cache")
	},
)

// ConfigPath returns the path to the YAML configuration file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), ConfigFile)
}

// userDir resolves a per-user directory with the given lookup, falling back to
// a hidden directory in $HOME and finally the working directory.
func userDir(lookup func() (string, error), hidden string) string {
	dir, err := lookup()
	if err != nil {
		dir, err = os.UserHomeDir()
		if err == nil {
			dir = filepath.Join(dir, hidden)
		} else {
			dir, err = os.Getwd()
			if err != nil {
				dir = "."
			}
		}
	}

	return filepath.Join(dir, Prefix())
}
