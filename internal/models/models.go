package models

import "strings"

// Response is an immutable snapshot of a completed HTTP exchange,
// produced once per request by the HTTP executor and consumed read-only
// by the match filters. Only the fields the filters compare against are
// kept: the status code, the body and its line/word/byte counts.
type Response struct {
	Code  int
	Body  string
	Lines int64
	Words int64
	Size  int64
}

// NewResponse builds a Response from a status code and raw body text,
// deriving the counts: lines are newline-separated, words are
// whitespace-separated fields, size is the body's byte length. An empty
// body counts zero for all three.
func NewResponse(code int, body string) Response {
	response := Response{
		Code: code,
		Body: body,
		Size: int64(len(body)),
	}
	if body != "" {
		response.Lines = int64(strings.Count(body, "\n") + 1)
		response.Words = int64(len(strings.Fields(body)))
	}
	return response
}
