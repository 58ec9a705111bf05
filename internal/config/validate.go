package config

import (
	"fmt"
	"sort"
	"strings"

	"inflect/internal/logging"
	"inflect/pkg/inflection"
)

// ValidationError represents a configuration validation error with context.
type ValidationError struct {
	Field   string
	Message string
	Hint    string
}

func (e ValidationError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s (hint: %s)", e.Field, e.Message, e.Hint)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Field   string
	Message string
	Hint    string
}

// ValidationResult contains the results of configuration validation.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// Error returns a combined error message if there are validation errors.
func (r *ValidationResult) Error() string {
	if !r.HasErrors() {
		return ""
	}
	var msgs []string
	for _, e := range r.Errors {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the configuration for errors and returns validation results.
// It returns both errors (fatal) and warnings (non-fatal issues).
func (c *Config) Validate() *ValidationResult {
	result := &ValidationResult{}

	validateLogging(result, c.Logging)
	validateInflectionConfig(result, c.Inflection)

	return result
}

func validateLogging(result *ValidationResult, cfg logging.Config) {
	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[cfg.Level] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid log level %q", cfg.Level),
			Hint:    "valid values are: debug, info, warn, error",
		})
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[cfg.Format] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("invalid log format %q", cfg.Format),
			Hint:    "valid values are: json, text",
		})
	}
}

func validateInflectionConfig(result *ValidationResult, cfg inflection.Config) {
	validateOverrides(result, "inflection.plural_overrides", cfg.PluralOverrides)
	validateOverrides(result, "inflection.singular_overrides", cfg.SingularOverrides)
	validateWordList(result, "inflection.uncountable_words", cfg.UncountableWords, inflection.UncountableWords())
	validateWordList(result, "inflection.title_lowercase_words", cfg.TitleLowercaseWords, inflection.TitleLowercaseWords())
	validateRules(result, "inflection.plural_rules", cfg.PluralRules)
	validateRules(result, "inflection.singular_rules", cfg.SingularRules)
}

func validateOverrides(result *ValidationResult, field string, overrides map[string]string) {
	// Sorted so messages come out in a stable order.
	words := make([]string, 0, len(overrides))
	for word := range overrides {
		words = append(words, word)
	}
	sort.Strings(words)

	for _, word := range words {
		replacement := strings.TrimSpace(overrides[word])
		if strings.TrimSpace(word) == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   field,
				Message: "word cannot be empty",
			})
			continue
		}
		if replacement == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("override for %q cannot be empty", word),
			})
			continue
		}
		if inflection.IsUncountable(word) {
			result.Warnings = append(result.Warnings, ValidationWarning{
				Field:   field,
				Message: fmt.Sprintf("%q is uncountable; the override takes precedence", word),
			})
		}
	}
}

func validateWordList(result *ValidationResult, field string, words, builtin []string) {
	known := make(map[string]bool, len(builtin)+len(words))
	for _, w := range builtin {
		known[w] = true
	}
	for i, w := range words {
		lower := strings.ToLower(strings.TrimSpace(w))
		if lower == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("%s[%d]", field, i),
				Message: "word cannot be empty",
			})
			continue
		}
		if trimmed := strings.TrimSpace(w); trimmed != w {
			result.Warnings = append(result.Warnings, ValidationWarning{
				Field:   fmt.Sprintf("%s[%d]", field, i),
				Message: fmt.Sprintf("%q has surrounding whitespace, which is ignored", w),
				Hint:    fmt.Sprintf("write it as %q", lower),
			})
		} else if lower != w {
			result.Warnings = append(result.Warnings, ValidationWarning{
				Field:   fmt.Sprintf("%s[%d]", field, i),
				Message: fmt.Sprintf("%q is matched case-insensitively", w),
				Hint:    fmt.Sprintf("write it as %q", lower),
			})
		}
		if known[lower] {
			result.Warnings = append(result.Warnings, ValidationWarning{
				Field:   fmt.Sprintf("%s[%d]", field, i),
				Message: fmt.Sprintf("%q is already listed", lower),
			})
		}
		known[lower] = true
	}
}

func validateRules(result *ValidationResult, field string, rules []inflection.RuleConfig) {
	for i, rc := range rules {
		entry := fmt.Sprintf("%s[%d]", field, i)
		if strings.TrimSpace(rc.Pattern) == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   entry + ".pattern",
				Message: "pattern cannot be empty",
			})
			continue
		}
		if _, err := inflection.NewRule(rc.Pattern, rc.Replacement); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   entry + ".pattern",
				Message: err.Error(),
				Hint:    "patterns use Go RE2 syntax; replacements reference groups as ${1}",
			})
		}
	}
}
