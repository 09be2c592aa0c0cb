// Package pathquery is the path-query capability behind the payload
// operations: resolving, rewriting, deleting and renaming nodes addressed
// by sanitized field paths. It is backed by gjson/sjson, but callers only
// see the Engine interface and the package's error sentinels, so the
// absence/unreadability contract stays stable regardless of the backing
// JSON-tree implementation.
package pathquery

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/binaryArrow/cats/internal/errors"
	"github.com/binaryArrow/cats/internal/pathing"
)

// Kind classifies a resolved JSON node.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindObject
	KindArray
)

// Node is a resolved JSON node: its raw serialized form plus its kind.
type Node struct {
	Raw  string
	Kind Kind

	str string
}

// String returns the node's textual value: unquoted for strings, the
// serialized form for objects and arrays.
func (n Node) String() string {
	return n.str
}

// IsPrimitive reports whether the node is a scalar/value node rather
// than an object or array.
func (n Node) IsPrimitive() bool {
	return n.Kind != KindObject && n.Kind != KindArray
}

// Engine resolves and rewrites nodes addressed by sanitized field paths.
// Implementations distinguish a missing node (ErrPathNotFound) from a
// path that is not valid query syntax (ErrMalformedPath); callers fold
// both into their local recovery policy.
type Engine interface {
	// Resolve returns the node at path, or an error when the path is
	// malformed or does not resolve. An empty or "$" path resolves the
	// document root.
	Resolve(payload, path string) (Node, error)

	// Set writes a raw JSON fragment at path and returns the new payload.
	// Missing intermediate nodes are created; callers that must not
	// create nodes check existence with Resolve first.
	Set(payload, path, rawValue string) (string, error)

	// Delete removes the node at path and returns the new payload.
	Delete(payload, path string) (string, error)

	// RenameKey moves the value of oldKey under parentPath to newKey.
	RenameKey(payload, parentPath, oldKey, newKey string) (string, error)
}

// GJSON is the gjson/sjson-backed Engine. It is stateless and safe for
// concurrent use from any number of fuzzing workers.
type GJSON struct{}

// NewGJSON returns the default path-query engine.
func NewGJSON() GJSON {
	return GJSON{}
}

// Resolve implements Engine.
func (GJSON) Resolve(payload, path string) (Node, error) {
	query, err := pathing.ToQuery(path)
	if err != nil {
		return Node{}, err
	}
	var res gjson.Result
	if query == "" {
		res = gjson.Parse(payload)
	} else {
		res = gjson.Get(payload, query)
		if !res.Exists() {
			return Node{}, errors.NewPathError(fmt.Sprintf("path %q not found", path), errors.ErrPathNotFound)
		}
	}
	return nodeFrom(res), nil
}

// Set implements Engine.
func (GJSON) Set(payload, path, rawValue string) (string, error) {
	query, err := pathing.ToQuery(path)
	if err != nil {
		return payload, err
	}
	if query == "" {
		return payload, errors.NewPathError("cannot set the document root through a path", errors.ErrMalformedPath)
	}
	out, serr := sjson.SetRaw(payload, query, rawValue)
	if serr != nil {
		return payload, errors.NewPathError(fmt.Sprintf("could not set %q", path), errors.ErrMalformedPath)
	}
	return out, nil
}

// Delete implements Engine.
func (GJSON) Delete(payload, path string) (string, error) {
	query, err := pathing.ToQuery(path)
	if err != nil {
		return payload, err
	}
	if query == "" || !gjson.Get(payload, query).Exists() {
		return payload, errors.NewPathError(fmt.Sprintf("path %q not found", path), errors.ErrPathNotFound)
	}
	out, serr := sjson.Delete(payload, query)
	if serr != nil {
		return payload, errors.NewPathError(fmt.Sprintf("could not delete %q", path), errors.ErrMalformedPath)
	}
	return out, nil
}

// RenameKey implements Engine.
func (GJSON) RenameKey(payload, parentPath, oldKey, newKey string) (string, error) {
	parentQuery, err := pathing.ToQuery(parentPath)
	if err != nil {
		return payload, err
	}
	oldQuery := joinQuery(parentQuery, pathing.EscapeSegment(oldKey))
	newQuery := joinQuery(parentQuery, pathing.EscapeSegment(newKey))

	current := gjson.Get(payload, oldQuery)
	if !current.Exists() {
		return payload, errors.NewPathError(fmt.Sprintf("key %q not found under %q", oldKey, parentPath), errors.ErrPathNotFound)
	}
	out, serr := sjson.SetRaw(payload, newQuery, current.Raw)
	if serr != nil {
		return payload, errors.NewPathError(fmt.Sprintf("could not rename %q to %q", oldKey, newKey), errors.ErrMalformedPath)
	}
	out, serr = sjson.Delete(out, oldQuery)
	if serr != nil {
		return payload, errors.NewPathError(fmt.Sprintf("could not remove %q after rename", oldKey), errors.ErrMalformedPath)
	}
	return out, nil
}

// NormalizeFragment validates a replacement value under the permissive
// grammar. A valid JSON literal passes through untouched; a bare scalar
// word is tolerated and quoted into a JSON string. Anything else yields
// ErrInvalidJSON.
func NormalizeFragment(value string) (string, error) {
	if gjson.Valid(value) {
		return value, nil
	}
	trimmed := strings.TrimSpace(value)
	if trimmed != "" && !strings.ContainsAny(trimmed, "{}[]\"") {
		if quoted, err := json.Marshal(trimmed); err == nil {
			return string(quoted), nil
		}
	}
	return "", errors.NewParseError(fmt.Sprintf("value %q is not parseable as JSON", value), errors.ErrInvalidJSON)
}

func joinQuery(parent, child string) string {
	if parent == "" {
		return child
	}
	return parent + "." + child
}

func nodeFrom(res gjson.Result) Node {
	kind := KindNull
	switch res.Type {
	case gjson.String:
		kind = KindString
	case gjson.Number:
		kind = KindNumber
	case gjson.True, gjson.False:
		kind = KindBool
	case gjson.JSON:
		if res.IsArray() {
			kind = KindArray
		} else {
			kind = KindObject
		}
	}
	return Node{Raw: res.Raw, Kind: kind, str: res.String()}
}
