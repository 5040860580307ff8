package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pom-version-checker/internal/adapters"
	"pom-version-checker/internal/types"
)

// linearChain publishes n ancestors where ancestor i declares ancestor i+1
// as its parent.
func linearChain(n int) (*fakeRemote, []types.Coordinate) {
	remote := &fakeRemote{poms: map[string]string{}}
	coords := make([]types.Coordinate, n)
	for i := range coords {
		coords[i] = coord("org.example", fmt.Sprintf("parent-%d", i), "1.0")
	}
	for i, c := range coords {
		pom := testPom{coordinate: c}
		if i+1 < n {
			next := coords[i+1]
			pom.parent = &next
		}
		remote.poms[c.String()] = pom.String()
	}
	return remote, coords
}

func TestAncestorWalkerFollowsChainNearestFirst(t *testing.T) {
	remote, coords := linearChain(3)
	walker := NewAncestorWalker(remote, adapters.NewPomXMLAdapter(), 0)

	chain := walker.Walk(t.Context(), &coords[0])

	if diff := cmp.Diff(coords, chain.Coordinates()); diff != "" {
		t.Fatalf("unexpected chain (-want +got):\n%s", diff)
	}
	assert.Equal(t, types.ChainStopComplete, chain.Stop)
	assert.Len(t, remote.calls, 3)
}

func TestAncestorWalkerNoParent(t *testing.T) {
	remote := &fakeRemote{}
	walker := NewAncestorWalker(remote, adapters.NewPomXMLAdapter(), 0)

	chain := walker.Walk(t.Context(), nil)

	assert.Empty(t, chain.Descriptors)
	assert.Equal(t, types.ChainStopComplete, chain.Stop)
	assert.Empty(t, remote.calls)
}

func TestAncestorWalkerStopsAtDepthBound(t *testing.T) {
	remote, coords := linearChain(30)
	walker := NewAncestorWalker(remote, adapters.NewPomXMLAdapter(), 0)

	chain := walker.Walk(t.Context(), &coords[0])

	require.Len(t, chain.Descriptors, DefaultMaxDepth)
	assert.Equal(t, types.ChainStopTooDeep, chain.Stop)
	assert.Len(t, remote.calls, DefaultMaxDepth)
	assert.Equal(t, coords[DefaultMaxDepth-1], chain.Descriptors[DefaultMaxDepth-1].Coordinate)
}

func TestAncestorWalkerCustomDepth(t *testing.T) {
	remote, coords := linearChain(5)
	walker := NewAncestorWalker(remote, adapters.NewPomXMLAdapter(), 2)

	chain := walker.Walk(t.Context(), &coords[0])

	assert.Len(t, chain.Descriptors, 2)
	assert.Equal(t, types.ChainStopTooDeep, chain.Stop)
}

func TestAncestorWalkerChainOfExactlyMaxDepthCompletes(t *testing.T) {
	remote, coords := linearChain(DefaultMaxDepth)
	walker := NewAncestorWalker(remote, adapters.NewPomXMLAdapter(), 0)

	chain := walker.Walk(t.Context(), &coords[0])

	assert.Len(t, chain.Descriptors, DefaultMaxDepth)
	assert.Equal(t, types.ChainStopComplete, chain.Stop)
}

func TestAncestorWalkerDetectsCycle(t *testing.T) {
	a := coord("org.example", "a", "1")
	b := coord("org.example", "b", "1")
	remote := &fakeRemote{poms: map[string]string{
		a.String(): testPom{coordinate: a, parent: &b}.String(),
		b.String(): testPom{coordinate: b, parent: &a}.String(),
	}}
	walker := NewAncestorWalker(remote, adapters.NewPomXMLAdapter(), 0)

	chain := walker.Walk(t.Context(), &a)

	if diff := cmp.Diff([]types.Coordinate{a, b}, chain.Coordinates()); diff != "" {
		t.Fatalf("unexpected chain (-want +got):\n%s", diff)
	}
	assert.Equal(t, types.ChainStopCycle, chain.Stop)
}

func TestAncestorWalkerTruncates(t *testing.T) {
	first := coord("org.example", "first", "1")
	missing := coord("org.example", "missing", "1")

	tests := []struct {
		name      string
		remote    *fakeRemote
		want      types.ChainStop
		wantCalls int
	}{
		{
			name: "empty body",
			remote: &fakeRemote{poms: map[string]string{
				first.String(): testPom{coordinate: first, parent: &missing}.String(),
			}},
			want:      types.ChainStopEmpty,
			wantCalls: 2,
		},
		{
			name: "fetch error",
			remote: &fakeRemote{
				poms: map[string]string{first.String(): testPom{coordinate: first, parent: &missing}.String()},
				errs: map[string]error{missing.String(): errors.New("timeout")},
			},
			want:      types.ChainStopUnreachable,
			wantCalls: 2,
		},
		{
			name: "malformed ancestor",
			remote: &fakeRemote{poms: map[string]string{
				first.String():   testPom{coordinate: first, parent: &missing}.String(),
				missing.String(): "<project><groupId>org.example</groupId></project>",
			}},
			want:      types.ChainStopMalformed,
			wantCalls: 2,
		},
		{
			name: "placeholder parent version",
			remote: &fakeRemote{poms: map[string]string{
				first.String(): testPom{coordinate: first, parent: coordPtr("org.example", "missing", "${revision}")}.String(),
			}},
			want:      types.ChainStopUnreachable,
			wantCalls: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			walker := NewAncestorWalker(tt.remote, adapters.NewPomXMLAdapter(), 0)

			chain := walker.Walk(t.Context(), &first)

			if diff := cmp.Diff([]types.Coordinate{first}, chain.Coordinates()); diff != "" {
				t.Fatalf("unexpected chain (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.want, chain.Stop)
			assert.Len(t, tt.remote.calls, tt.wantCalls)
		})
	}
}
