package inflection

import (
	"log/slog"
	"strings"
)

// Plural converts a singular word to its plural form using the default
// Inflector.
//
//	Plural("person") // "people"
//	Plural("sheep")  // "sheep"
func Plural(word string) string { return std.Plural(word) }

// Singular converts a plural word to its singular form using the default
// Inflector.
func Singular(word string) string { return std.Singular(word) }

// Plural converts a singular word to its plural form.
// Checks custom overrides first, then falls back to the rule tables.
func (i *Inflector) Plural(word string) string {
	if override, ok := i.pluralOverride[strings.ToLower(word)]; ok {
		return override
	}
	return i.apply("plural", word, i.pluralRules)
}

// Singular converts a plural word to its singular form.
// Checks custom overrides first, then falls back to the rule tables.
func (i *Inflector) Singular(word string) string {
	if override, ok := i.singularOverride[strings.ToLower(word)]; ok {
		return override
	}
	return i.apply("singular", word, i.singularRules)
}

// IsUncountable reports whether word has the same singular and plural form.
func (i *Inflector) IsUncountable(word string) bool {
	return i.uncountable.contains(word)
}

// IsUncountable reports whether word is in the default uncountable list.
func IsUncountable(word string) bool { return std.IsUncountable(word) }

func (i *Inflector) apply(kind, word string, rules RuleSet) string {
	out, idx := applyRules(word, rules, i.uncountable)
	if idx >= 0 {
		i.logger().Debug("inflection rule applied",
			slog.String("kind", kind),
			slog.String("input", word),
			slog.String("output", out),
			slog.Int("rule_index", idx),
			slog.String("pattern", rules[idx].Pattern.String()),
		)
	}
	return out
}
