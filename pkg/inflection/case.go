package inflection

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	idSuffixRe            = regexp.MustCompile(`(_ids|_id)$`)
	underscoresRe         = regexp.MustCompile(`_+`)
	spacesRe              = regexp.MustCompile(`\s+`)
	spacesOrUnderscoresRe = regexp.MustCompile(`[\s_]+`)
	uppercaseRe           = regexp.MustCompile(`[A-Z]`)
)

// CamelCase lowercases s and joins its space/underscore separated tokens,
// capitalizing every token after the first. With upper set the first token
// is capitalized too.
// Example: "user_name" -> "userName", ("user_name", true) -> "UserName"
func CamelCase(s string, upper bool) string {
	parts := spacesOrUnderscoresRe.Split(strings.ToLower(s), -1)
	start := 1
	if upper {
		start = 0
	}
	for i := start; i < len(parts); i++ {
		parts[i] = upperFirst(parts[i])
	}
	return strings.Join(parts, "")
}

// PascalCase is CamelCase with the first token capitalized.
// Example: "user_profiles" -> "UserProfiles"
func PascalCase(s string) string {
	return CamelCase(s, true)
}

// TitleCase converts s using the default Inflector's lowercase word list.
func TitleCase(s string) string { return std.TitleCase(s) }

// TitleCase capitalizes every word and hyphenated part of s except short
// function words. The first character of the result is always uppercase.
// Example: "the_lord_of_the_rings" -> "The Lord of the Rings"
func (i *Inflector) TitleCase(s string) string {
	words := spacesRe.Split(underscoresRe.ReplaceAllString(s, " "), -1)
	for w, word := range words {
		parts := strings.Split(word, "-")
		for p, part := range parts {
			if !i.titleLowercase.contains(part) {
				parts[p] = Capitalize(part)
			}
		}
		words[w] = strings.Join(parts, "-")
	}
	return upperFirst(strings.Join(words, " "))
}

// Underscore converts s to lowercase snake form, splitting before every
// ASCII uppercase letter.
// Example: "BlogPost" -> "blog_post", "user accounts" -> "user_accounts"
func Underscore(s string) string {
	s = spacesOrUnderscoresRe.ReplaceAllString(s, "_")
	s = uppercaseRe.ReplaceAllString(s, "_${0}")
	s = underscoresRe.ReplaceAllString(s, "_")
	s = strings.TrimPrefix(s, "_")
	return strings.ToLower(s)
}

// Dasherize replaces runs of whitespace and underscores with a dash.
// Case is preserved.
func Dasherize(s string) string {
	return spacesOrUnderscoresRe.ReplaceAllString(s, "-")
}

// Humanize turns an identifier into readable text: the trailing "_id" or
// "_ids" is dropped and underscores become spaces. The result is
// capitalized unless startLowercase is set.
// Example: "author_id" -> "Author", "employee_salary" -> "Employee salary"
func Humanize(s string, startLowercase bool) string {
	s = strings.ToLower(s)
	s = idSuffixRe.ReplaceAllString(s, "")
	s = underscoresRe.ReplaceAllString(s, " ")
	if startLowercase {
		return s
	}
	return Capitalize(s)
}

// Capitalize lowercases s and uppercases its first character.
func Capitalize(s string) string {
	return upperFirst(strings.ToLower(s))
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
