package policies

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pom-version-checker/internal/ports"
	"pom-version-checker/internal/types"
)

// PrecedencePolicy orders the version sources consulted inside a single
// scope. Scopes themselves are always visited nearest first.
type PrecedencePolicy struct {
	Mode    types.Precedence
	sources []types.LookupSource
}

func NewPrecedencePolicy(mode string) (PrecedencePolicy, error) {
	normalized := types.Precedence(strings.ToLower(strings.TrimSpace(mode)))
	switch normalized {
	case "", types.PrecedencePropertiesFirst:
		return PrecedencePolicy{
			Mode:    types.PrecedencePropertiesFirst,
			sources: []types.LookupSource{types.LookupProperties, types.LookupManaged, types.LookupImports},
		}, nil
	case types.PrecedenceManagedFirst:
		return PrecedencePolicy{
			Mode:    types.PrecedenceManagedFirst,
			sources: []types.LookupSource{types.LookupManaged, types.LookupImports, types.LookupProperties},
		}, nil
	default:
		return PrecedencePolicy{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown precedence policy: %s", mode))
	}
}

// DefaultPrecedencePolicy is properties-first.
func DefaultPrecedencePolicy() PrecedencePolicy {
	policy, _ := NewPrecedencePolicy(string(types.PrecedencePropertiesFirst))
	return policy
}

func (p PrecedencePolicy) Sources() []types.LookupSource {
	if len(p.sources) == 0 {
		return DefaultPrecedencePolicy().sources
	}
	return append([]types.LookupSource(nil), p.sources...)
}

var _ ports.PrecedencePort = PrecedencePolicy{}
