package ports

import "pom-version-checker/internal/types"

// PrecedencePort orders the lookup sources tried inside one scope.
type PrecedencePort interface {
	Sources() []types.LookupSource
}

// ExclusionPort decides which groups are never looked up or reported.
type ExclusionPort interface {
	Excluded(groupID string) bool
}
