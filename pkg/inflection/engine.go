package inflection

import "strings"

// wordSet is a lowercase membership set.
type wordSet map[string]struct{}

func newWordSet(groups ...[]string) wordSet {
	set := make(wordSet)
	for _, words := range groups {
		for _, w := range words {
			if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
				set[w] = struct{}{}
			}
		}
	}
	return set
}

func (s wordSet) contains(word string) bool {
	_, ok := s[strings.ToLower(word)]
	return ok
}

// applyRules rewrites input with the first matching rule and reports the
// index of that rule, or -1 when input was skipped or nothing matched.
// Every match of the winning pattern is replaced.
func applyRules(input string, rules RuleSet, skip wordSet) (string, int) {
	if input == "" || skip.contains(input) {
		return input, -1
	}
	for i, rule := range rules {
		if rule.Pattern.MatchString(input) {
			return rule.Pattern.ReplaceAllString(input, rule.Replacement), i
		}
	}
	return input, -1
}
