// Package config resolves the analyzer's configuration from, in
// increasing precedence, built-in defaults, a config file (while.yaml or
// while.json), WHILE_-prefixed environment variables, and CLI flags, the
// same layering viper gives cobra/pflag-based CLIs for free.
package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the analyzer's resolved configuration.
type Config struct {
	// Domains is the set of domain names to run, in the order given.
	// Valid names: "sign", "interval", "sinterval", "modulo",
	// "blackhole", "concrete".
	Domains []string

	// IntervalBound is the saturation bound used as +/-infinity by the
	// Interval and SInterval domains.
	IntervalBound int64

	// Modulus is N for the Modulo-N domain.
	Modulus int64

	// Verbose raises the logger to debug level.
	Verbose bool

	// ASTPath, if non-empty, is where to write the program's AST as
	// Graphviz DOT.
	ASTPath string
}

var defaultDomains = []string{"sign", "interval", "sinterval", "modulo", "blackhole", "concrete"}

// Load resolves a Config from defaults, an optional config file (found
// via cfgFile, or "while.yaml"/"while.json" in the working directory if
// cfgFile is empty), WHILE_-prefixed environment variables, and flags
// already parsed into fs.
func Load(fs *pflag.FlagSet, cfgFile string) (Config, error) {
	v := viper.New()

	v.SetDefault("domains", defaultDomains)
	v.SetDefault("interval-bound", int64(32767))
	v.SetDefault("modulus", int64(3))
	v.SetDefault("verbose", false)
	v.SetDefault("ast", "")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("while")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound && cfgFile != "" {
			return Config{}, err
		}
	}

	v.SetEnvPrefix("while")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return Config{}, err
		}
	}

	cfg := Config{
		Domains:       v.GetStringSlice("domains"),
		IntervalBound: v.GetInt64("interval-bound"),
		Modulus:       v.GetInt64("modulus"),
		Verbose:       v.GetBool("verbose"),
		ASTPath:       v.GetString("ast"),
	}
	if len(cfg.Domains) == 0 {
		cfg.Domains = defaultDomains
	}
	if cfg.Modulus < 1 {
		cfg.Modulus = 3
	}
	return cfg, nil
}
