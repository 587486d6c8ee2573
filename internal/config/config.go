package config

import (
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix         = "NEWS"
	defaultAgencyName = "News agency"

	keyDebug       = "debug"
	keyAgencyName  = "agency_name"
	keyPauseOnExit = "pause_on_exit"
)

type Config struct {
	Debug       bool
	AgencyName  string
	PauseOnExit bool
}

var (
	config *Config
	v      = newViper()
)

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyDebug, false)
	v.SetDefault(keyAgencyName, defaultAgencyName)
	v.SetDefault(keyPauseOnExit, false)
	return v
}

// BindFlags lets command line flags override the environment.
//   - --debug overrides NEWS_DEBUG
//   - --pause overrides NEWS_PAUSE_ON_EXIT
func BindFlags(fs *pflag.FlagSet) error {
	if err := v.BindPFlag(keyDebug, fs.Lookup("debug")); err != nil {
		return err
	}
	return v.BindPFlag(keyPauseOnExit, fs.Lookup("pause"))
}

func GetConfig() *Config {
	if config != nil {
		return config
	}
	config = load(v)
	return config
}

func load(v *viper.Viper) *Config {
	conf := &Config{
		// Debug mode
		Debug: v.GetBool(keyDebug),
		// Name printed when news are published
		AgencyName: strings.TrimSpace(v.GetString(keyAgencyName)),
		// Wait for a key before exit
		PauseOnExit: v.GetBool(keyPauseOnExit),
	}
	if len(conf.AgencyName) == 0 {
		slog.Warn("agency name is empty in the environment (NEWS_AGENCY_NAME), using default",
			"default", defaultAgencyName)
		conf.AgencyName = defaultAgencyName
	}
	if conf.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	slog.Debug("configuration parameters",
		"NEWS_DEBUG", conf.Debug,
		"NEWS_AGENCY_NAME", conf.AgencyName,
		"NEWS_PAUSE_ON_EXIT", conf.PauseOnExit)

	return conf
}
