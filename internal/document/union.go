package document

import (
	"log/slog"
	"strings"

	"github.com/binaryArrow/cats/internal/pathing"
	"github.com/binaryArrow/cats/internal/pathquery"
)

// UnionMarker is the textual hint that a payload still carries a
// oneOf/anyOf grouping produced by schema composition. The check is a
// plain substring test on the serialized payload, not a schema lookup;
// a legitimate field name containing "_OF" will trip it.
const UnionMarker = "_OF"

// ResolveUnion puts newValue at targetPath. When the path does not exist
// and the payload carries a oneOf/anyOf grouping, it assumes the target
// is hidden behind a schema union: it renames alternativeKey under the
// target's parent to the final path segment and deletes each of the
// eliminate keys from that same parent.
//
// Every failure mode degrades to a best-effort payload: a fuzzer must
// never crash mid-run on one malformed document, it should produce a
// less-ideal mutation and continue. In particular an unparseable
// newValue skips the mutation entirely, a failed rename is suppressed,
// and a missing eliminate key does not abort the elimination of the
// remaining ones.
func ResolveUnion(payload, targetPath, alternativeKey, newValue string, eliminate []string) string {
	if targetPath == "$" {
		return newValue
	}

	raw, err := pathquery.NormalizeFragment(newValue)
	if err != nil {
		slog.Debug("could not add node", "path", targetPath, "error", err)
		return payload
	}

	path := pathing.Sanitize(targetPath)
	if _, rerr := engine.Resolve(payload, path); rerr == nil {
		out, serr := engine.Set(payload, path, raw)
		if serr != nil {
			slog.Debug("could not set node", "path", targetPath, "error", serr)
			return payload
		}
		return out
	}

	if !strings.Contains(payload, UnionMarker) {
		// No union to resolve and no safe mutation to apply.
		return payload
	}

	parent, final := pathing.SplitParent(path)
	out, rerr := engine.RenameKey(payload, parent, alternativeKey, final)
	if rerr != nil {
		slog.Debug("could not rename alternative key", "key", alternativeKey, "error", rerr)
		out = payload
	}
	for _, key := range eliminate {
		node := parent + "." + pathing.QuoteKey(key)
		next, derr := engine.Delete(out, node)
		if derr != nil {
			slog.Debug("path not found when removing any_of/one_of", "path", node)
			continue
		}
		out = next
	}
	return out
}
