package policies

import (
	"strings"

	"pom-version-checker/internal/ports"
)

// GroupExclusionPolicy hides groups (typically the organisation's own) from
// latest-version lookups. Several prefixes may be given comma separated;
// an empty prefix excludes nothing.
type GroupExclusionPolicy struct {
	prefixes []string
}

func NewGroupExclusionPolicy(prefix string) GroupExclusionPolicy {
	policy := GroupExclusionPolicy{}
	for _, raw := range strings.Split(prefix, ",") {
		value := strings.TrimSpace(raw)
		if value == "" {
			continue
		}
		policy.prefixes = append(policy.prefixes, value)
	}
	return policy
}

func (p GroupExclusionPolicy) Excluded(groupID string) bool {
	for _, prefix := range p.prefixes {
		if strings.HasPrefix(groupID, prefix) {
			return true
		}
	}
	return false
}

var _ ports.ExclusionPort = GroupExclusionPolicy{}
