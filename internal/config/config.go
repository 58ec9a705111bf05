// Package config loads configuration from files, env vars, and flags, and validates it.
package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"inflect/internal/logging"
	"inflect/pkg/inflection"
)

// EnvPrefix is the prefix for environment variable overrides, e.g.
// INFLECT_LOGGING_LEVEL=debug.
const EnvPrefix = "INFLECT"

// Config holds the command configuration.
type Config struct {
	Inflection inflection.Config `mapstructure:"inflection"`
	Logging    logging.Config    `mapstructure:"logging"`
	Transform  TransformConfig   `mapstructure:"transform"`
}

// TransformConfig holds the optional flags of individual operations.
type TransformConfig struct {
	// Upper makes camel produce PascalCase.
	Upper bool `mapstructure:"upper"`
	// StartLowercase keeps humanize output lowercase.
	StartLowercase bool `mapstructure:"start_lowercase"`
}

// Load loads configuration with the following precedence:
// 1. Command line flags
// 2. Environment variables
// 3. Config file
// 4. Default values
//
// It returns the parsed flag set so callers can read positional arguments
// and command-only flags such as --version.
func Load(args []string) (*Config, *pflag.FlagSet, error) {
	v := viper.New()

	// Defaults (lowest priority)
	setDefaults(v)

	// --- Flags ---
	fs := NewFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}

	// --- Config file ---
	cfgPath, _ := fs.GetString("config")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.SetConfigName("inflect")
		v.SetConfigType("yaml")
		v.AddConfigPath("/etc/inflect/")
		v.AddConfigPath("$HOME/.inflect")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if cfgPath != "" {
			return nil, fs, fmt.Errorf("failed to read config file %q: %w", cfgPath, err)
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fs, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// --- Environment variables ---
	// Canonical keys: dot + snake_case
	// Env vars: INFLECT_INFLECTION_UNCOUNTABLE_WORDS
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// --- Flags binding (highest priority) ---
	bindChangedFlagsToViper(v, fs)

	// --- Unmarshal (strict) ---
	var cfg Config
	if err := v.UnmarshalExact(
		&cfg,
		viper.DecodeHook(
			mapstructure.ComposeDecodeHookFunc(
				stringToStringSliceHookFunc(","),
			),
		),
	); err != nil {
		return nil, fs, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, fs, nil
}

// NewFlagSet defines all command line flags using canonical snake_case keys.
func NewFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("inflect", pflag.ContinueOnError)

	// Inflection flags
	fs.StringSlice("inflection.uncountable_words", nil, "Extra uncountable words (comma-separated or repeated)")
	fs.StringSlice("inflection.title_lowercase_words", nil, "Extra words kept lowercase in title case (comma-separated or repeated)")

	// Transform flags
	fs.Bool("transform.upper", false, "camel: capitalize the first word (PascalCase)")
	fs.Bool("transform.start_lowercase", false, "humanize: do not capitalize the first word")

	// Logging flags
	fs.String("logging.level", "", "Log level (debug, info, warn, error)")
	fs.String("logging.format", "", "Log format (json, text)")

	// Short aliases
	fs.BoolP("upper", "u", false, "Alias for --transform.upper")
	fs.BoolP("start-lowercase", "l", false, "Alias for --transform.start_lowercase")

	fs.StringP("config", "c", "", "Config file path")
	fs.Bool("version", false, "Print version and exit")
	return fs
}

var flagAliases = map[string]string{
	"upper":           "transform.upper",
	"start-lowercase": "transform.start_lowercase",
}

// bindChangedFlagsToViper copies only explicitly-set flags into Viper,
// preserving precedence: flags > env > file > defaults.
func bindChangedFlagsToViper(v *viper.Viper, fs *pflag.FlagSet) {
	fs.Visit(func(f *pflag.Flag) {
		if f.Name == "config" || f.Name == "version" {
			return
		}
		key := f.Name
		if alias, ok := flagAliases[key]; ok {
			key = alias
		}

		switch f.Value.Type() {
		case "string":
			val, _ := fs.GetString(f.Name)
			v.Set(key, val)
		case "bool":
			val, _ := fs.GetBool(f.Name)
			v.Set(key, val)
		case "stringSlice":
			val, _ := fs.GetStringSlice(f.Name)
			v.Set(key, val)
		default:
			v.Set(key, f.Value.String())
		}
	})
}

// setDefaults sets default values (lowest precedence).
func setDefaults(v *viper.Viper) {
	v.SetDefault("inflection.plural_overrides", map[string]string{})
	v.SetDefault("inflection.singular_overrides", map[string]string{})
	v.SetDefault("inflection.uncountable_words", []string{})
	v.SetDefault("inflection.title_lowercase_words", []string{})
	v.SetDefault("inflection.plural_rules", []inflection.RuleConfig{})
	v.SetDefault("inflection.singular_rules", []inflection.RuleConfig{})

	v.SetDefault("transform.upper", false)
	v.SetDefault("transform.start_lowercase", false)

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "text")
}

func stringToStringSliceHookFunc(sep string) mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf([]string{}) {
			return data, nil
		}

		raw := strings.TrimSpace(data.(string))
		if raw == "" {
			return []string{}, nil
		}

		parts := strings.Split(raw, sep)
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts, nil
	}
}
