// Package match decides whether an HTTP response satisfies the
// user-declared expectation filters, so a fuzzing run can suppress
// expected/known-benign results and report only the interesting ones.
package match

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/binaryArrow/cats/internal/models"
)

// Criteria holds the configured response filters for a fuzzing session.
// Each filter is independently optional: a nil slice or empty regex
// means "not configured". Criteria is built once from configuration and
// is read-only afterwards, so it may be shared across concurrently
// evaluated responses without locks.
type Criteria struct {
	// Codes are response-code filters, either exact ("404") or class
	// patterns ("4XX") matching any code with the same leading digit.
	Codes []string

	// Lines, Words and Sizes match the response's line count, word
	// count and byte size against the configured sets.
	Lines []int64
	Words []int64
	Sizes []int64

	// Regex must match the whole response body when configured.
	Regex string

	// MatchInput additionally reports responses that reflect the sent
	// value in their body. It does not count as a configured filter.
	MatchInput bool
}

// IsAnyCriterionConfigured reports whether at least one of the five
// optional filters is configured. The MatchInput flag alone does not
// count.
func (c Criteria) IsAnyCriterionConfigured() bool {
	return len(c.Codes) > 0 ||
		len(c.Lines) > 0 ||
		len(c.Words) > 0 ||
		len(c.Sizes) > 0 ||
		c.Regex != ""
}

// MatchesCode checks the received code against the configured code
// filters: an exact textual match, or a class pattern where a digit 2-9
// followed by two X characters matches any code with the same leading
// digit. A blank code never matches.
func (c Criteria) MatchesCode(code string) bool {
	if code == "" {
		return false
	}
	for _, pattern := range c.Codes {
		if pattern == code {
			return true
		}
		if isCodeClass(pattern) && pattern[0] == code[0] {
			return true
		}
	}
	return false
}

// MatchesLines checks the line count against the configured set. A nil
// set never matches.
func (c Criteria) MatchesLines(lines int64) bool {
	return containsInt64(c.Lines, lines)
}

// MatchesWords checks the word count against the configured set. A nil
// set never matches.
func (c Criteria) MatchesWords(words int64) bool {
	return containsInt64(c.Words, words)
}

// MatchesSize checks the byte size against the configured set. A nil
// set never matches.
func (c Criteria) MatchesSize(size int64) bool {
	return containsInt64(c.Sizes, size)
}

// MatchesRegex checks the given text against the configured pattern as
// a full-string regular expression. An unconfigured or uncompilable
// pattern never matches.
func (c Criteria) MatchesRegex(text string) bool {
	if c.Regex == "" {
		return false
	}
	re, err := regexp.Compile(`\A(?:` + c.Regex + `)\z`)
	if err != nil {
		return false
	}
	return re.MatchString(text)
}

// IsInputReflected reports whether the MatchInput flag is set and the
// response body contains the sent value as a substring.
func (c Criteria) IsInputReflected(response models.Response, value string) bool {
	return c.MatchInput && strings.Contains(response.Body, value)
}

// Evaluate decides whether the response matches the configured filters.
// With nothing configured the result is false for any response.
// Otherwise every configured filter must match: a strict AND over the
// configured subset, with unconfigured filters skipped.
func (c Criteria) Evaluate(response models.Response) bool {
	if !c.IsAnyCriterionConfigured() {
		return false
	}
	matched := true
	if len(c.Codes) > 0 {
		matched = matched && c.MatchesCode(strconv.Itoa(response.Code))
	}
	if len(c.Lines) > 0 {
		matched = matched && c.MatchesLines(response.Lines)
	}
	if len(c.Words) > 0 {
		matched = matched && c.MatchesWords(response.Words)
	}
	if len(c.Sizes) > 0 {
		matched = matched && c.MatchesSize(response.Size)
	}
	if c.Regex != "" {
		matched = matched && c.MatchesRegex(response.Body)
	}
	return matched
}

// Describe builds a human-readable summary of the configured filters,
// one comma-joined, space-prefixed clause per configured filter, in
// fixed order: response codes, regex, number of lines, number of words,
// response sizes. Empty when nothing is configured.
func (c Criteria) Describe() string {
	var clauses []string
	if len(c.Codes) > 0 {
		clauses = append(clauses, "response codes: "+formatStrings(c.Codes))
	}
	if c.Regex != "" {
		clauses = append(clauses, "regex: "+c.Regex)
	}
	if len(c.Lines) > 0 {
		clauses = append(clauses, "number of lines: "+formatInt64s(c.Lines))
	}
	if len(c.Words) > 0 {
		clauses = append(clauses, "number of words: "+formatInt64s(c.Words))
	}
	if len(c.Sizes) > 0 {
		clauses = append(clauses, "response sizes: "+formatInt64s(c.Sizes))
	}
	if len(clauses) == 0 {
		return ""
	}
	return " " + strings.Join(clauses, ", ")
}

func isCodeClass(pattern string) bool {
	if len(pattern) != 3 {
		return false
	}
	if pattern[0] < '2' || pattern[0] > '9' {
		return false
	}
	return (pattern[1] == 'X' || pattern[1] == 'x') &&
		(pattern[2] == 'X' || pattern[2] == 'x')
}

func containsInt64(values []int64, target int64) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func formatInt64s(values []int64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatStrings(values []string) string {
	return "[" + strings.Join(values, ", ") + "]"
}
