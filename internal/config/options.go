package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Options.
const EnvPrefix = "PILTI"

const (
	keyDebug     = "debug"
	keyDev       = "dev"
	keyConfigDir = "config_dir"
)

// Options are process-level knobs read from the environment
// (PILTI_DEBUG, PILTI_DEV, PILTI_CONFIG_DIR) or bound command flags.
type Options struct {
	Debug     bool
	DevMode   bool
	ConfigDir string
}

// NewViper returns a viper instance bound to the PILTI_* environment.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(keyDebug, false)
	v.SetDefault(keyDev, false)
	v.SetDefault(keyConfigDir, "")
	return v
}

// LoadOptions reads Options from v.
func LoadOptions(v *viper.Viper) Options {
	return Options{
		Debug:     v.GetBool(keyDebug),
		DevMode:   v.GetBool(keyDev),
		ConfigDir: v.GetString(keyConfigDir),
	}
}

// SettingsPath resolves the settings file location. An explicit ConfigDir
// wins; otherwise the per-user config directory is used.
func (o Options) SettingsPath() (string, error) {
	if o.ConfigDir != "" {
		return filepath.Join(o.ConfigDir, SettingsFile), nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := AppID
	if o.DevMode {
		appDir = AppID + "-dev"
	}
	return filepath.Join(configDir, appDir, SettingsFile), nil
}
