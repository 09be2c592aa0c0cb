// Package document exposes the path-based operations fuzzing strategies
// use to inspect and rewrite JSON payloads: validity and emptiness
// checks, reads that degrade to the NOT_SET sentinel, node-kind
// predicates, deletion, root insertion, canonical equality and
// oneOf/anyOf union collapsing.
//
// Every operation parses, transforms and re-serializes per call and
// holds no shared state, so the package is safe to call from any number
// of concurrent workers. Failures never escape as errors: reads return
// the sentinel, mutations return the original payload unchanged.
package document

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/cyberphone/json-canonicalization/go/src/webpki.org/jsoncanonicalizer"

	"github.com/binaryArrow/cats/internal/pathing"
	"github.com/binaryArrow/cats/internal/pathquery"
)

// NotSet is the placeholder returned when a path is not found inside a
// given JSON payload. Callers test for it with IsNotSet rather than
// comparing directly.
const NotSet = "NOT_SET"

var engine pathquery.Engine = pathquery.NewGJSON()

// IsNotSet checks if the given value was not found when searched in a
// JSON payload using the functions of this package. The comparison is
// case-insensitive.
func IsNotSet(value string) bool {
	return strings.EqualFold(value, NotSet)
}

// IsValidJSON checks if the given text parses under the strict grammar.
// The text must additionally contain at least one "{" or "]": a bare
// number or string parses fine but is not a meaningful payload shape.
func IsValidJSON(text string) bool {
	if !json.Valid([]byte(text)) {
		return false
	}
	return strings.Contains(text, "{") || strings.Contains(text, "]")
}

// IsEmpty checks if the given payload is blank, "{}" or the quoted
// string "\"{}\"".
func IsEmpty(payload string) bool {
	trimmed := strings.TrimSpace(payload)
	return trimmed == "" || trimmed == "{}" || trimmed == `"{}"`
}

// IsRootArray reports whether the top-level parsed value is an array.
func IsRootArray(payload string) bool {
	root, err := engine.Resolve(payload, "$")
	return err == nil && root.Kind == pathquery.KindArray
}

// Read returns the value at the given path, or NotSet when the path
// cannot be resolved for any reason. Read never fails.
func Read(payload, path string) string {
	node, err := engine.Resolve(payload, pathing.Sanitize(path))
	if err != nil {
		slog.Debug("expected field was not found, defaulting to NOT_SET", "path", path)
		return NotSet
	}
	return node.String()
}

// IsFieldPresent checks if the given field resolves inside the payload.
func IsFieldPresent(payload, field string) bool {
	return !IsNotSet(Read(payload, field))
}

// IsValidNonEmptyMap checks if the given field is a map with at least
// one key.
func IsValidNonEmptyMap(payload, field string) bool {
	keys := Read(payload, field+".keys()")
	return !IsNotSet(keys) && keys != "[]"
}

// resolveWithRootPrefix applies root-array prefixing before resolving:
// the query grammar addresses properties relative to a root object, so a
// root-level array must be entered through its first element.
func resolveWithRootPrefix(payload, field string) (pathquery.Node, error) {
	if IsRootArray(payload) {
		field = pathing.FirstElementFromRootArray + field
	}
	return engine.Resolve(payload, pathing.Sanitize(field))
}

// IsPrimitive reports whether the field resolves to a scalar/value node.
// A missing or unreadable field reports false.
func IsPrimitive(payload, field string) bool {
	node, err := resolveWithRootPrefix(payload, field)
	return err == nil && node.IsPrimitive()
}

// IsObject reports whether the field resolves to a non-value node.
// A missing or unreadable field reports false.
func IsObject(payload, field string) bool {
	node, err := resolveWithRootPrefix(payload, field)
	return err == nil && !node.IsPrimitive()
}

// IsArray reports whether the field resolves to an array node.
// A missing or unreadable field reports false.
func IsArray(payload, field string) bool {
	node, err := resolveWithRootPrefix(payload, field)
	return err == nil && node.Kind == pathquery.KindArray
}

// Delete removes the node at the given path. A blank payload or an
// unresolvable path returns the payload unchanged; deleting is an
// idempotent no-op on absence.
func Delete(payload, path string) string {
	if strings.TrimSpace(payload) == "" {
		return payload
	}
	out, err := engine.Delete(payload, pathing.Sanitize(path))
	if err != nil {
		slog.Debug("nothing to delete", "path", path)
		return payload
	}
	return out
}

// InsertRoot adds a new key with the given string value at the document
// root and returns the resulting payload.
func InsertRoot(payload, key, value string) string {
	raw, err := json.Marshal(value)
	if err != nil {
		return payload
	}
	out, err := engine.Set(payload, pathing.QuoteKey(key), string(raw))
	if err != nil {
		slog.Debug("could not insert element at root", "key", key)
		return payload
	}
	return out
}

// EqualAsJSON checks if the two inputs are the same as JSON documents,
// comparing their canonical serialized forms. Inputs that cannot be
// canonicalized fall back to a trimmed textual comparison.
func EqualAsJSON(a, b string) bool {
	canonA, errA := jsoncanonicalizer.Transform([]byte(a))
	canonB, errB := jsoncanonicalizer.Transform([]byte(b))
	if errA != nil || errB != nil {
		return strings.TrimSpace(a) == strings.TrimSpace(b)
	}
	return string(canonA) == string(canonB)
}
