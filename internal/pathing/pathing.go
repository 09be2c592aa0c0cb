// Package pathing normalizes the dotted/hash-separated field-path notation
// used to address nodes inside JSON payloads. Fuzzing strategies receive
// field paths in a notation where "#" is an alias for "." and a document
// whose root is an array is addressed through the reserved "$[0]#" and
// "$[*]#" prefixes. This package rewrites that notation into the query
// syntax understood by the path-query engine.
package pathing

import (
	"fmt"
	"strings"

	"github.com/binaryArrow/cats/internal/errors"
)

const (
	// FirstElementFromRootArray prefixes a field path so that it addresses
	// the first element when the document root is itself an array.
	FirstElementFromRootArray = "$[0]#"

	// AllElementsRootArray prefixes a field path so that it broadcasts
	// across every element of a root-level array.
	AllElementsRootArray = "$[*]#"
)

// Sanitize replaces every "#" with "." inside the given path. It is pure
// and total: any input yields a rewritten path, never an error.
func Sanitize(path string) string {
	return strings.ReplaceAll(path, "#", ".")
}

// SplitParent splits a sanitized path into the parent path (everything
// before the last ".") and the final segment. A path with no "." has the
// document root as its parent.
func SplitParent(path string) (parent, final string) {
	idx := strings.LastIndex(path, ".")
	if idx < 0 {
		return "$", path
	}
	return path[:idx], path[idx+1:]
}

// QuoteKey bracket-quotes keys containing a space so they stay valid
// path syntax when joined with "." separators.
func QuoteKey(key string) string {
	if strings.Contains(key, " ") {
		return "['" + key + "']"
	}
	return key
}

// EscapeSegment escapes the characters the query engine treats as syntax
// so that a literal key survives translation unchanged.
func EscapeSegment(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	for i := 0; i < len(key); i++ {
		switch c := key[i]; c {
		case '\\', '.', '*', '?', '|', '#', '@':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// ToQuery translates a sanitized field path into the engine's query
// syntax: "$" (the document root) disappears, "[N]" becomes a numeric
// segment, "[*]" becomes the broadcast segment "#", bracket-quoted keys
// ("['key name']") become literal segments, and a trailing "keys()" call
// becomes the key-listing modifier. An empty result addresses the root.
// Paths that are not syntactically valid yield ErrMalformedPath.
func ToQuery(path string) (string, error) {
	p := strings.TrimSpace(path)
	if p == "" || p == "$" {
		return "", nil
	}

	var segs []string
	var lit strings.Builder
	afterBracket := false

	flush := func(allowEmpty bool) error {
		s := lit.String()
		lit.Reset()
		if s == "" {
			if allowEmpty {
				return nil
			}
			return malformed(path)
		}
		if s == "$" {
			// The root marker is only valid as the very first segment.
			if len(segs) > 0 {
				return malformed(path)
			}
			return nil
		}
		if s == "keys()" {
			segs = append(segs, "@keys")
			return nil
		}
		segs = append(segs, EscapeSegment(s))
		return nil
	}

	for i := 0; i < len(p); i++ {
		switch c := p[i]; c {
		case '.':
			if err := flush(afterBracket); err != nil {
				return "", err
			}
			afterBracket = false
		case '[':
			if err := flush(true); err != nil {
				return "", err
			}
			rest := p[i+1:]
			if strings.HasPrefix(rest, "'") {
				end := strings.Index(rest, "']")
				if end < 1 {
					return "", malformed(path)
				}
				segs = append(segs, EscapeSegment(rest[1:end]))
				i += end + 2
			} else {
				end := strings.IndexByte(rest, ']')
				if end < 0 {
					return "", malformed(path)
				}
				switch inner := rest[:end]; {
				case inner == "*":
					segs = append(segs, "#")
				case isIndex(inner):
					segs = append(segs, inner)
				default:
					return "", malformed(path)
				}
				i += end + 1
			}
			afterBracket = true
		case ']':
			return "", malformed(path)
		default:
			lit.WriteByte(c)
			afterBracket = false
		}
	}

	if err := flush(afterBracket); err != nil {
		return "", err
	}
	return strings.Join(segs, "."), nil
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func malformed(path string) error {
	return errors.NewPathError(fmt.Sprintf("not a valid path expression: %q", path), errors.ErrMalformedPath)
}
