package inflection

import (
	"fmt"
	"log/slog"
	"strings"
)

// Inflector applies the rule tables and word lists, plus any customization
// from Config. It is immutable once built and safe for concurrent use.
type Inflector struct {
	pluralRules      RuleSet
	singularRules    RuleSet
	pluralOverride   map[string]string
	singularOverride map[string]string
	uncountable      wordSet
	titleLowercase   wordSet
	log              *slog.Logger
}

// New creates an Inflector with the given configuration.
func New(cfg Config, logger *slog.Logger) (*Inflector, error) {
	custom, err := compileRules("plural_rules", cfg.PluralRules)
	if err != nil {
		return nil, err
	}
	pluralRules := append(custom, singularToPlural...)

	custom, err = compileRules("singular_rules", cfg.SingularRules)
	if err != nil {
		return nil, err
	}
	singularRules := append(custom, pluralToSingular...)

	return &Inflector{
		pluralRules:      pluralRules,
		singularRules:    singularRules,
		pluralOverride:   lowerKeys(cfg.PluralOverrides),
		singularOverride: lowerKeys(cfg.SingularOverrides),
		uncountable:      newWordSet(uncountableWords, cfg.UncountableWords),
		titleLowercase:   newWordSet(titleLowercaseWords, cfg.TitleLowercaseWords),
		log:              logger,
	}, nil
}

// Default returns an Inflector with the built-in tables only.
func Default() *Inflector {
	inf, err := New(DefaultConfig(), nil)
	if err != nil {
		// The built-in configuration has no custom rules to fail on.
		panic(err)
	}
	return inf
}

var std = Default()

func (i *Inflector) logger() *slog.Logger {
	if i.log == nil {
		return slog.Default()
	}
	return i.log
}

func compileRules(field string, cfgs []RuleConfig) (RuleSet, error) {
	rules := make(RuleSet, 0, len(cfgs))
	for idx, rc := range cfgs {
		rule, err := NewRule(rc.Pattern, rc.Replacement)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", field, idx, err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func lowerKeys(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return out
}
