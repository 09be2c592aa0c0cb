package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/binaryArrow/cats/internal/models"
)

func standardResponse() models.Response {
	return models.Response{Code: 200, Body: "{}", Lines: 200, Words: 200, Size: 200}
}

func TestMatchesCode(t *testing.T) {
	criteria := Criteria{Codes: []string{"2XX", "400"}}

	assert.True(t, criteria.MatchesCode("200"))
	assert.True(t, criteria.MatchesCode("202"))
	assert.True(t, criteria.MatchesCode("400"))
	assert.False(t, criteria.MatchesCode("404"))
}

func TestMatchesCode_Blank(t *testing.T) {
	criteria := Criteria{Codes: []string{"2XX", "400"}}

	assert.True(t, criteria.MatchesCode("200"))
	assert.False(t, criteria.MatchesCode(""))
}

func TestMatchesCode_LowercaseClassPattern(t *testing.T) {
	criteria := Criteria{Codes: []string{"4xx"}}

	assert.True(t, criteria.MatchesCode("404"))
	assert.True(t, criteria.MatchesCode("499"))
	assert.False(t, criteria.MatchesCode("200"))
}

func TestMatchesLines(t *testing.T) {
	criteria := Criteria{Lines: []int64{200}}
	assert.True(t, criteria.MatchesLines(200))
	assert.True(t, criteria.Evaluate(standardResponse()))
}

func TestMatchesLines_Unconfigured(t *testing.T) {
	criteria := Criteria{}
	assert.False(t, criteria.MatchesLines(200))
	assert.False(t, criteria.Evaluate(standardResponse()))
}

func TestMatchesWords(t *testing.T) {
	criteria := Criteria{Words: []int64{200}}
	assert.True(t, criteria.MatchesWords(200))
	assert.True(t, criteria.Evaluate(standardResponse()))
}

func TestMatchesWords_Unconfigured(t *testing.T) {
	criteria := Criteria{}
	assert.False(t, criteria.MatchesWords(200))
	assert.False(t, criteria.Evaluate(standardResponse()))
}

func TestMatchesSize(t *testing.T) {
	criteria := Criteria{Sizes: []int64{200}}
	assert.True(t, criteria.MatchesSize(200))
	assert.True(t, criteria.Evaluate(standardResponse()))
}

func TestMatchesSize_Unconfigured(t *testing.T) {
	criteria := Criteria{}
	assert.False(t, criteria.MatchesSize(200))
	assert.False(t, criteria.Evaluate(standardResponse()))
}

func TestMatchesRegex(t *testing.T) {
	criteria := Criteria{Regex: ".*error.*"}
	response := models.Response{Code: 200, Body: `{"err":"error 333"}`, Lines: 200, Words: 200, Size: 200}

	assert.True(t, criteria.MatchesRegex("error 333"))
	assert.True(t, criteria.Evaluate(response))
}

func TestMatchesRegex_Unconfigured(t *testing.T) {
	criteria := Criteria{}
	response := models.Response{Code: 200, Body: `{"error":"value"}`, Lines: 200, Words: 200, Size: 200}

	assert.False(t, criteria.MatchesRegex("error"))
	assert.False(t, criteria.Evaluate(response))
}

func TestMatchesRegex_FullStringSemantics(t *testing.T) {
	criteria := Criteria{Regex: "error"}

	// The pattern must cover the whole text, not just a substring.
	assert.True(t, criteria.MatchesRegex("error"))
	assert.False(t, criteria.MatchesRegex("an error happened"))
}

func TestIsAnyCriterionConfigured(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     bool
	}{
		{"nothing configured", Criteria{}, false},
		{"codes only", Criteria{Codes: []string{"200"}}, true},
		{"lines only", Criteria{Lines: []int64{1}}, true},
		{"words only", Criteria{Words: []int64{1}}, true},
		{"sizes only", Criteria{Sizes: []int64{1}}, true},
		{"regex only", Criteria{Regex: "regex"}, true},
		{"match input flag alone does not count", Criteria{MatchInput: true}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.criteria.IsAnyCriterionConfigured())
		})
	}
}

func TestEvaluate_NothingConfigured(t *testing.T) {
	criteria := Criteria{}

	assert.False(t, criteria.Evaluate(standardResponse()))
	assert.False(t, criteria.Evaluate(models.Response{Code: 500, Body: "boom"}))
}

func TestEvaluate_AllConfiguredAndSatisfied(t *testing.T) {
	criteria := Criteria{
		Codes: []string{"200"},
		Lines: []int64{200},
		Words: []int64{200},
		Sizes: []int64{200},
	}
	assert.True(t, criteria.Evaluate(standardResponse()))
}

func TestEvaluate_StrictANDOverConfiguredSubset(t *testing.T) {
	// Two filters configured, one satisfied and one not: no match.
	criteria := Criteria{
		Codes: []string{"200"},
		Lines: []int64{999},
	}
	assert.False(t, criteria.Evaluate(standardResponse()))

	// The unsatisfied filter removed, the remaining one decides.
	criteria.Lines = nil
	assert.True(t, criteria.Evaluate(standardResponse()))
}

func TestIsInputReflected(t *testing.T) {
	tests := []struct {
		name       string
		matchInput bool
		value      string
		want       bool
	}{
		{"flag set and value reflected", true, "cool", true},
		{"flag set and value absent", true, "uncool", false},
		{"flag unset and value reflected", false, "cool", false},
		{"flag unset and value absent", false, "uncool", false},
	}
	response := models.Response{Body: "i'm a cool body"}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			criteria := Criteria{MatchInput: tc.matchInput}
			assert.Equal(t, tc.want, criteria.IsInputReflected(response, tc.value))
		})
	}
}

func TestDescribe_AllConfigured(t *testing.T) {
	criteria := Criteria{
		Codes: []string{"200"},
		Lines: []int64{200},
		Words: []int64{200},
		Sizes: []int64{200},
		Regex: "*",
	}
	expected := " response codes: [200], regex: *, number of lines: [200], number of words: [200], response sizes: [200]"
	assert.Equal(t, expected, criteria.Describe())
}

func TestDescribe_SingleClauses(t *testing.T) {
	assert.Equal(t, " regex: *", Criteria{Regex: "*"}.Describe())
	assert.Equal(t, " response codes: [200]", Criteria{Codes: []string{"200"}}.Describe())
	assert.Equal(t, " number of lines: [200]", Criteria{Lines: []int64{200}}.Describe())
	assert.Equal(t, " number of words: [200]", Criteria{Words: []int64{200}}.Describe())
	assert.Equal(t, " response sizes: [200]", Criteria{Sizes: []int64{200}}.Describe())
}

func TestDescribe_MultipleValues(t *testing.T) {
	criteria := Criteria{Codes: []string{"2XX", "400"}, Sizes: []int64{100, 200}}
	assert.Equal(t, " response codes: [2XX, 400], response sizes: [100, 200]", criteria.Describe())
}

func TestDescribe_Empty(t *testing.T) {
	assert.Empty(t, Criteria{}.Describe())
	assert.Empty(t, Criteria{MatchInput: true}.Describe())
}
