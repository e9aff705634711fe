package tree

import (
	"sort"

	"github.com/temirov/lsdir/internal/utils"
)

// IgnoreSet holds directory names excluded from both printing and descent.
// Membership is exact and case-sensitive; file names are never checked.
type IgnoreSet map[string]struct{}

// DefaultIgnoreSet returns a fresh set of the dependency-cache and
// version-control directories skipped when no set is supplied.
func DefaultIgnoreSet() IgnoreSet {
	return NewIgnoreSet(
		utils.NodeModulesDirectoryName,
		utils.GitDirectoryName,
		utils.PythonCacheDirectoryName,
	)
}

// NewIgnoreSet builds a set from names, normalizing each and dropping empty ones.
// The result is never nil, so an empty set means "ignore nothing".
func NewIgnoreSet(names ...string) IgnoreSet {
	ignoreSet := make(IgnoreSet, len(names))
	for _, name := range names {
		normalizedName := utils.NormalizeDirectoryName(name)
		if normalizedName == "" {
			continue
		}
		ignoreSet[normalizedName] = struct{}{}
	}
	return ignoreSet
}

// Contains reports whether name is in the set.
func (ignoreSet IgnoreSet) Contains(name string) bool {
	_, found := ignoreSet[name]
	return found
}

// Names returns the members in ascending order.
func (ignoreSet IgnoreSet) Names() []string {
	names := make([]string, 0, len(ignoreSet))
	for name := range ignoreSet {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
