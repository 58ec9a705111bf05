package inflection

import "regexp"

// Digit runs at the start of the string or after whitespace.
var numbersRe = regexp.MustCompile(`(^|\s)\d+`)

// Ordinalize appends an English ordinal suffix to every number that starts
// the string or follows whitespace.
// Example: "rank 1 and 11 and 22" -> "rank 1st and 11th and 22nd"
func Ordinalize(s string) string {
	return numbersRe.ReplaceAllStringFunc(s, func(num string) string {
		singles := int(num[len(num)-1] - '0')
		tens := 0
		if len(num) > 1 {
			if c := num[len(num)-2]; c >= '0' && c <= '9' {
				tens = int(c - '0')
			}
		}
		return num + suffix(tens, singles)
	})
}

// OrdinalSuffix returns "st", "nd", "rd" or "th" for n.
func OrdinalSuffix(n int) string {
	if n < 0 {
		n = -n
	}
	return suffix((n/10)%10, n%10)
}

func suffix(tens, singles int) string {
	if tens != 1 {
		switch singles {
		case 1:
			return "st"
		case 2:
			return "nd"
		case 3:
			return "rd"
		}
	}
	return "th"
}
