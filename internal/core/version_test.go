package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pom-version-checker/internal/types"
)

func TestVersionComparatorDefaultsToDeb(t *testing.T) {
	cmp, err := NewVersionComparator("")
	require.NoError(t, err)
	assert.Equal(t, types.VersionSchemeDeb, cmp.Scheme())
}

func TestVersionComparatorDebOrdering(t *testing.T) {
	cmp, err := NewVersionComparator("deb")
	require.NoError(t, err)

	assert.Equal(t, -1, cmp.Compare("1.9.0", "1.10.0"))
	assert.Equal(t, 1, cmp.Compare("2.0.0", "1.99.99"))
	assert.Equal(t, 0, cmp.Compare("1.2.3", "1.2.3"))
	assert.Equal(t, -1, cmp.Compare("5.3.1.RELEASE", "5.3.2.RELEASE"))
}

func TestVersionComparatorMavenQualifiers(t *testing.T) {
	cmp, err := NewVersionComparator("deb")
	require.NoError(t, err)

	tests := []struct {
		lower  string
		higher string
	}{
		{lower: "2.0.0-RC1", higher: "2.0.0"},
		{lower: "6.0.0-M1", higher: "6.0.0"},
		{lower: "1.0-alpha-1", higher: "1.0"},
		{lower: "1.0-SNAPSHOT", higher: "1.0"},
		{lower: "3.1.0-CR2", higher: "3.1.0.RELEASE"},
		{lower: "1.0-alpha-1", higher: "1.0-beta-1"},
		{lower: "1.0-beta-2", higher: "1.0-M1"},
		{lower: "6.0.0-M2", higher: "6.0.0-RC1"},
		{lower: "2.0.0-RC1", higher: "2.0.0-RC2"},
		{lower: "2.0.0-RC2", higher: "2.0.0-RC10"},
		{lower: "2.0.0-RC1", higher: "2.0.0-SNAPSHOT"},
		{lower: "5.3.0.RC1", higher: "5.3.0.RELEASE"},
		{lower: "2.0.0", higher: "2.0.1-RC1"},
	}
	for _, tt := range tests {
		t.Run(tt.lower+" < "+tt.higher, func(t *testing.T) {
			assert.Equal(t, -1, cmp.Compare(tt.lower, tt.higher))
			assert.Equal(t, 1, cmp.Compare(tt.higher, tt.lower))
			assert.False(t, cmp.UpToDate(tt.lower, tt.higher))
			assert.True(t, cmp.UpToDate(tt.higher, tt.lower))
		})
	}
}

func TestVersionComparatorKeepsNonPreReleaseQualifiers(t *testing.T) {
	cmp, err := NewVersionComparator("deb")
	require.NoError(t, err)

	assert.Equal(t, -1, cmp.Compare("31.1-jre", "32.0.0-jre"))
	assert.Equal(t, -1, cmp.Compare("31.1-android", "31.1-jre"))
	assert.True(t, cmp.UpToDate("5.3.1.RELEASE", "5.3.1.RELEASE"))
}

func TestVersionComparatorCompareIsClamped(t *testing.T) {
	cmp, err := NewVersionComparator("deb")
	require.NoError(t, err)

	for _, pair := range [][2]string{{"2.0.0", "1.0"}, {"1.0", "301.0"}, {"2.0.0-RC1", "2.0.0"}} {
		got := cmp.Compare(pair[0], pair[1])
		assert.Contains(t, []int{-1, 1}, got, "%s vs %s", pair[0], pair[1])
	}
}

func TestVersionComparatorPEP440Ordering(t *testing.T) {
	cmp, err := NewVersionComparator("pep440")
	require.NoError(t, err)

	assert.Equal(t, -1, cmp.Compare("1.0.0rc1", "1.0.0"))
	assert.Equal(t, 1, cmp.Compare("2.10", "2.9"))
}

func TestVersionComparatorUnparseableFallsBackToLexical(t *testing.T) {
	cmp, err := NewVersionComparator("pep440")
	require.NoError(t, err)
	assert.Equal(t, -1, cmp.Compare("Finchley.SR1", "Greenwich.SR2"))
}

func TestVersionComparatorUnknownScheme(t *testing.T) {
	_, err := NewVersionComparator("calver")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported version scheme")
}

func TestVersionComparatorUpToDate(t *testing.T) {
	cmp, err := NewVersionComparator("deb")
	require.NoError(t, err)

	tests := []struct {
		name     string
		resolved string
		latest   string
		want     bool
	}{
		{name: "equal", resolved: "2.3.0", latest: "2.3.0", want: true},
		{name: "older", resolved: "2.3.0", latest: "2.4.0", want: false},
		{name: "newer than release", resolved: "3.0.0", latest: "2.4.0", want: true},
		{name: "no latest known", resolved: "2.3.0", latest: "", want: true},
		{name: "unresolved", resolved: types.UnresolvedVersion, latest: "2.4.0", want: false},
		{name: "unresolved without latest", resolved: types.UnresolvedVersion, latest: "", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cmp.UpToDate(tt.resolved, tt.latest))
		})
	}
}
