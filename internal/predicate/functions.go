package predicate

import "regexp"

// Function is one entry of the query-function allow-list.
// Strings matching Pattern are emitted unquoted.
type Function struct {
	Name    string
	Pattern *regexp.Regexp
}

const (
	weekdayArg  = `(SUNDAY|MONDAY|TUESDAY|WEDNESDAY|THURSDAY|FRIDAY|SATURDAY)?`
	monthDayArg = `([1-9]|[12][0-9]|3[01]|LAST)?`
)

func fn(name, args string) Function {
	return Function{
		Name:    name,
		Pattern: regexp.MustCompile(`^` + name + `\(` + args + `\)$`),
	}
}

// Functions is the ordered allow-list of query functions. First match wins.
// Patterns match the whole value, so `THIS_MONTH(81)` or a function call
// embedded in longer text is quoted like any other string.
var Functions = []Function{
	fn("LOGINUSER", ""),
	fn("PRIMARY_ORGANIZATION", ""),
	fn("NOW", ""),
	fn("TODAY", ""),
	fn("YESTERDAY", ""),
	fn("TOMORROW", ""),
	fn("FROM_TODAY", `-?\d+,\s*(DAYS|WEEKS|MONTHS|YEARS)`),
	fn("THIS_WEEK", weekdayArg),
	fn("LAST_WEEK", weekdayArg),
	fn("NEXT_WEEK", weekdayArg),
	fn("THIS_MONTH", monthDayArg),
	fn("LAST_MONTH", monthDayArg),
	fn("NEXT_MONTH", monthDayArg),
	fn("THIS_YEAR", ""),
	fn("LAST_YEAR", ""),
	fn("NEXT_YEAR", ""),
}

// MatchFunction returns the allow-list entry matching s, if any.
func MatchFunction(s string) (Function, bool) {
	for _, f := range Functions {
		if f.Pattern.MatchString(s) {
			return f, true
		}
	}
	return Function{}, false
}

// IsFunction reports whether s is a recognized query function call.
func IsFunction(s string) bool {
	_, ok := MatchFunction(s)
	return ok
}
