package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inflect/internal/logging"
	"inflect/pkg/inflection"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inflect.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, fs, err := Load([]string{"plural", "cat"})
	require.NoError(t, err)

	assert.Equal(t, []string{"plural", "cat"}, fs.Args())
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.False(t, cfg.Transform.Upper)
	assert.False(t, cfg.Transform.StartLowercase)
	assert.Empty(t, cfg.Inflection.UncountableWords)
	assert.Empty(t, cfg.Inflection.PluralRules)
	assert.False(t, cfg.Validate().HasErrors())
}

func TestLoad_ConfigFile(t *testing.T) {
	path := writeConfigFile(t, `
inflection:
  plural_overrides:
    cactus: cacti
  singular_overrides:
    cacti: cactus
  uncountable_words: [police]
  title_lowercase_words: [via]
  plural_rules:
    - pattern: "(foc)us$"
      replacement: "${1}i"
logging:
  level: debug
  format: json
transform:
  start_lowercase: true
`)

	cfg, _, err := Load([]string{"--config", path})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"cactus": "cacti"}, cfg.Inflection.PluralOverrides)
	assert.Equal(t, map[string]string{"cacti": "cactus"}, cfg.Inflection.SingularOverrides)
	assert.Equal(t, []string{"police"}, cfg.Inflection.UncountableWords)
	assert.Equal(t, []string{"via"}, cfg.Inflection.TitleLowercaseWords)
	require.Len(t, cfg.Inflection.PluralRules, 1)
	assert.Equal(t, inflection.RuleConfig{Pattern: "(foc)us$", Replacement: "${1}i"}, cfg.Inflection.PluralRules[0])
	assert.Equal(t, logging.Config{Level: "debug", Format: "json"}, cfg.Logging)
	assert.True(t, cfg.Transform.StartLowercase)

	inf, err := inflection.New(cfg.Inflection, nil)
	require.NoError(t, err)
	assert.Equal(t, "foci", inf.Plural("focus"))
	assert.Equal(t, "cacti", inf.Plural("cactus"))
	assert.Equal(t, "police", inf.Plural("police"))
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, _, err := Load([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	path := writeConfigFile(t, `
inflection:
  irregular_words: [goose]
`)

	_, _, err := Load([]string{"-c", path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "irregular_words")
}

func TestLoad_WithEnvVars(t *testing.T) {
	t.Setenv("INFLECT_LOGGING_FORMAT", "json")
	t.Setenv("INFLECT_INFLECTION_UNCOUNTABLE_WORDS", "police, jeans")
	t.Setenv("INFLECT_TRANSFORM_UPPER", "true")

	cfg, _, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, []string{"police", "jeans"}, cfg.Inflection.UncountableWords)
	assert.True(t, cfg.Transform.Upper)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("INFLECT_LOGGING_LEVEL", "debug")

	cfg, fs, err := Load([]string{
		"camel", "--logging.level=error", "-u",
		"--inflection.title_lowercase_words=via,vs", "user_name",
	})
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Logging.Level)
	assert.True(t, cfg.Transform.Upper)
	assert.Equal(t, []string{"via", "vs"}, cfg.Inflection.TitleLowercaseWords)
	assert.Equal(t, []string{"camel", "user_name"}, fs.Args())
}

func TestLoad_VersionFlag(t *testing.T) {
	_, fs, err := Load([]string{"--version"})
	require.NoError(t, err)

	showVersion, err := fs.GetBool("version")
	require.NoError(t, err)
	assert.True(t, showVersion)
}

func TestLoad_UnknownFlag(t *testing.T) {
	_, _, err := Load([]string{"--no-such-flag"})
	require.Error(t, err)
}

func TestStringToStringSliceHookFunc(t *testing.T) {
	hook, ok := stringToStringSliceHookFunc(",").(func(reflect.Type, reflect.Type, interface{}) (interface{}, error))
	require.True(t, ok)

	stringType := reflect.TypeOf("")
	sliceType := reflect.TypeOf([]string{})

	out, err := hook(stringType, sliceType, " a , b ,c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, out)

	out, err = hook(stringType, sliceType, "  ")
	require.NoError(t, err)
	assert.Equal(t, []string{}, out)

	out, err = hook(stringType, stringType, "a,b")
	require.NoError(t, err)
	assert.Equal(t, "a,b", out)
}
