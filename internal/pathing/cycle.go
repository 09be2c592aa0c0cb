package pathing

import "strings"

// IsCyclicReference reports whether a "#"-joined traversal history of
// property names revisits a name, i.e. the chain describes a
// self-referencing property in the form prop#prop#... . Chains shorter
// than depth carry too little history to judge and never report cyclic.
//
// The scan is a pairwise case-insensitive comparison, intentionally
// quadratic: chains are bounded by schema nesting depth, and a set-based
// shortcut would change the case-folding semantics.
func IsCyclicReference(currentProperty string, depth int) bool {
	properties := strings.Split(currentProperty, "#")

	if len(properties) < depth {
		return false
	}

	for i := 0; i < len(properties)-1; i++ {
		for j := i + 1; j < len(properties); j++ {
			if strings.EqualFold(properties[i], properties[j]) {
				return true
			}
		}
	}

	return false
}
