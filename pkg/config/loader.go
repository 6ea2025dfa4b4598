package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/yinjianfei/owlapi/pkg/errors"
)

const (
	// EnvPrefix is stripped from environment variables before they become keys
	EnvPrefix = "OWLAPI_"
	// EnvConfigPath names a config file to load instead of the discovered one
	EnvConfigPath = EnvPrefix + "CONFIG"
	// AppName is the directory under the XDG config home
	AppName = "owlapi"
)

// configFileNames are tried in order under <XDG_CONFIG_HOME>/owlapi
var configFileNames = []string{"owlapi.toml", "owlapi.yaml", "owlapi.yml"}

// Load builds Options from the embedded defaults, a config file and the
// environment. An explicit path must exist; with an empty path the file
// named by OWLAPI_CONFIG is used, then the first of owlapi.toml,
// owlapi.yaml and owlapi.yml found in the XDG config directories.
func Load(path string) (*Options, error) {
	k, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	required := path != ""
	if path == "" {
		path = os.Getenv(EnvConfigPath)
		required = path != ""
	}
	if path == "" {
		path = discoverConfigFile()
	}

	source := ""
	if path != "" {
		loaded, err := loadFile(k, path, required)
		if err != nil {
			return nil, err
		}
		if loaded {
			source = path
		}
	}

	if err := loadEnv(k); err != nil {
		return nil, err
	}

	opts := newOptions(k)
	opts.path = source
	if _, err := opts.Settings(); err != nil {
		return nil, err
	}
	return opts, nil
}

// Defaults returns Options holding only the embedded defaults
func Defaults() *Options {
	k, err := loadDefaults()
	if err != nil {
		// the embedded file is part of the binary; failing to parse it is a build defect
		panic(err)
	}
	return newOptions(k)
}

func loadDefaults() (*koanf.Koanf, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	return k, nil
}

func discoverConfigFile() string {
	for _, name := range configFileNames {
		if found, err := xdg.SearchConfigFile(filepath.Join(AppName, name)); err == nil {
			return found
		}
	}
	return ""
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigParse, "unsupported config format %q", filepath.Ext(path)).
			WithDetail("path", path)
	}
}

// loadFile merges path into k, reporting whether a file was read. A
// missing file is only an error when required.
func loadFile(k *koanf.Koanf, path string, required bool) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !required {
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path).
			WithDetail("path", path)
	}

	parser, err := parserFor(path)
	if err != nil {
		return false, err
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return false, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	return true, nil
}

func loadEnv(k *koanf.Koanf) error {
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}
	return nil
}
