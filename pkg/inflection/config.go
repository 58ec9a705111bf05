// Package inflection transforms English words and identifiers: plural and
// singular forms, case conventions, table/class/foreign-key names and
// ordinal numbers.
package inflection

// RuleConfig is a user-supplied rule. Replacement uses regexp.Expand syntax.
type RuleConfig struct {
	Pattern     string `mapstructure:"pattern"`
	Replacement string `mapstructure:"replacement"`
}

// Config holds inflection customization options
type Config struct {
	// PluralOverrides maps singular -> custom plural
	// Example: {"person": "persons", "cactus": "cacti"}
	PluralOverrides map[string]string `mapstructure:"plural_overrides"`

	// SingularOverrides maps plural -> custom singular
	// Example: {"cacti": "cactus"}
	SingularOverrides map[string]string `mapstructure:"singular_overrides"`

	// UncountableWords are added to the built-in uncountable list.
	UncountableWords []string `mapstructure:"uncountable_words"`

	// TitleLowercaseWords are added to the words TitleCase keeps lowercase.
	TitleLowercaseWords []string `mapstructure:"title_lowercase_words"`

	// PluralRules and SingularRules are tried before the built-in tables.
	PluralRules   []RuleConfig `mapstructure:"plural_rules"`
	SingularRules []RuleConfig `mapstructure:"singular_rules"`
}

// DefaultConfig returns a configuration with no customization.
func DefaultConfig() Config {
	return Config{
		PluralOverrides:   make(map[string]string),
		SingularOverrides: make(map[string]string),
	}
}
