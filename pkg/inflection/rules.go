package inflection

import (
	"fmt"
	"regexp"
)

// Rule is a single pattern/replacement pair. The pattern is matched
// case-insensitively and the replacement may reference capture groups
// using regexp.Expand syntax (${1}, ${2}).
type Rule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// RuleSet is an ordered list of rules. The first rule that matches wins.
type RuleSet []Rule

// NewRule compiles a case-insensitive rule.
func NewRule(pattern, replacement string) (Rule, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return Rule{}, fmt.Errorf("invalid rule pattern %q: %w", pattern, err)
	}
	return Rule{Pattern: re, Replacement: replacement}, nil
}

// MustRule is like NewRule but panics if the pattern does not compile.
func MustRule(pattern, replacement string) Rule {
	r, err := NewRule(pattern, replacement)
	if err != nil {
		panic(err)
	}
	return r
}

// String returns the rule in "pattern -> replacement" form.
func (r Rule) String() string {
	return r.Pattern.String() + " -> " + r.Replacement
}

// Specific forms come first; the "s$" and bare "$" catch-alls must stay last.
var singularToPlural = RuleSet{
	MustRule(`(m)an$`, `${1}en`),
	MustRule(`(pe)rson$`, `${1}ople`),
	MustRule(`(child)$`, `${1}ren`),
	MustRule(`^(ox)$`, `${1}en`),
	MustRule(`(ax|test)is$`, `${1}es`),
	MustRule(`(octop|vir)us$`, `${1}i`),
	MustRule(`(alias|status)$`, `${1}es`),
	MustRule(`(bu)s$`, `${1}ses`),
	MustRule(`(buffal|tomat|potat)o$`, `${1}oes`),
	MustRule(`([ti])um$`, `${1}a`),
	MustRule(`sis$`, `ses`),
	MustRule(`(?:([^f])fe|([lr])f)$`, `${1}${2}ves`),
	MustRule(`(hive)$`, `${1}s`),
	MustRule(`([^aeiouy]|qu)y$`, `${1}ies`),
	MustRule(`(x|ch|ss|sh)$`, `${1}es`),
	MustRule(`(matr|vert|ind)ix|ex$`, `${1}ices`),
	MustRule(`(m|l)ouse$`, `${1}ice`),
	MustRule(`(quiz)$`, `${1}zes`),
	MustRule(`s$`, `s`),
	MustRule(`$`, `s`),
}

var pluralToSingular = RuleSet{
	MustRule(`(m)en$`, `${1}an`),
	MustRule(`(pe)ople$`, `${1}rson`),
	MustRule(`(child)ren$`, `${1}`),
	MustRule(`([ti])a$`, `${1}um`),
	MustRule(`((a)naly|(b)a|(d)iagno|(p)arenthe|(p)rogno|(s)ynop|(t)he)ses$`, `${1}sis`),
	MustRule(`(hive)s$`, `${1}`),
	MustRule(`(tive)s$`, `${1}`),
	MustRule(`(curve)s$`, `${1}`),
	MustRule(`([lr])ves$`, `${1}f`),
	MustRule(`([^fo])ves$`, `${1}fe`),
	MustRule(`([^aeiouy]|qu)ies$`, `${1}y`),
	MustRule(`(s)eries$`, `${1}eries`),
	MustRule(`(m)ovies$`, `${1}ovie`),
	MustRule(`(x|ch|ss|sh)es$`, `${1}`),
	MustRule(`(m|l)ice$`, `${1}ouse`),
	MustRule(`(bus)es$`, `${1}`),
	MustRule(`(o)es$`, `${1}`),
	MustRule(`(shoe)s$`, `${1}`),
	MustRule(`(cris|ax|test)es$`, `${1}is`),
	MustRule(`(octop|vir)i$`, `${1}us`),
	MustRule(`(alias|status)es$`, `${1}`),
	MustRule(`^(ox)en`, `${1}`),
	MustRule(`(vert|ind)ices$`, `${1}ex`),
	MustRule(`(matr)ices$`, `${1}ix`),
	MustRule(`(quiz)zes$`, `${1}`),
	MustRule(`s$`, ``),
}

// Nouns with identical singular and plural forms.
var uncountableWords = []string{
	"equipment",
	"information",
	"rice",
	"money",
	"species",
	"series",
	"fish",
	"sheep",
	"moose",
	"deer",
	"news",
}

// Articles, conjunctions and prepositions kept lowercase in titles.
var titleLowercaseWords = []string{
	"and", "or", "nor", "a", "an", "the", "so", "but", "to", "of", "at", "by",
	"from", "into", "on", "onto", "off", "out", "in", "over", "with", "for",
}

// SingularToPluralRules returns a copy of the default pluralization rules.
func SingularToPluralRules() RuleSet {
	return append(RuleSet(nil), singularToPlural...)
}

// PluralToSingularRules returns a copy of the default singularization rules.
func PluralToSingularRules() RuleSet {
	return append(RuleSet(nil), pluralToSingular...)
}

// UncountableWords returns a copy of the default uncountable word list.
func UncountableWords() []string {
	return append([]string(nil), uncountableWords...)
}

// TitleLowercaseWords returns a copy of the words TitleCase leaves lowercase.
func TitleLowercaseWords() []string {
	return append([]string(nil), titleLowercaseWords...)
}
