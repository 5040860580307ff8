package core

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pom-version-checker/internal/types"
)

type fakeWorkspace struct {
	files map[string]string
	found []string
}

func (f fakeWorkspace) ReadDescriptor(path string) ([]byte, error) {
	content, ok := f.files[path]
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read descriptor")
	}
	return []byte(content), nil
}

func (f fakeWorkspace) FindDescriptors(root string, name string) ([]string, error) {
	return f.found, nil
}

type fakeRemote struct {
	poms  map[string]string
	errs  map[string]error
	calls []string
}

func (f *fakeRemote) FetchDescriptor(ctx context.Context, coordinate types.Coordinate) ([]byte, error) {
	key := coordinate.String()
	f.calls = append(f.calls, key)
	if err, ok := f.errs[key]; ok {
		return nil, err
	}
	content, ok := f.poms[key]
	if !ok {
		return nil, nil
	}
	return []byte(content), nil
}

type fakeLatest struct {
	versions map[string]string
	errs     map[string]error
	calls    []string
}

func (f *fakeLatest) LatestVersion(ctx context.Context, groupID string, artifactID string) (string, error) {
	key := groupID + ":" + artifactID
	f.calls = append(f.calls, key)
	if err, ok := f.errs[key]; ok {
		return "", err
	}
	return f.versions[key], nil
}

// testPom renders a minimal descriptor. Coordinates with an empty version
// produce a dependency without a <version> element.
type testPom struct {
	coordinate types.Coordinate
	parent     *types.Coordinate
	properties map[string]string
	deps       []types.Coordinate
	managed    []types.Coordinate
	imports    []types.Coordinate
}

func (p testPom) String() string {
	var b strings.Builder
	b.WriteString("<project>\n")
	if p.parent != nil {
		fmt.Fprintf(&b, "  <parent>%s</parent>\n", coordinateXML(*p.parent))
	}
	b.WriteString("  " + coordinateXML(p.coordinate) + "\n")
	if len(p.properties) > 0 {
		names := make([]string, 0, len(p.properties))
		for name := range p.properties {
			names = append(names, name)
		}
		sort.Strings(names)
		b.WriteString("  <properties>\n")
		for _, name := range names {
			fmt.Fprintf(&b, "    <%s>%s</%s>\n", name, p.properties[name], name)
		}
		b.WriteString("  </properties>\n")
	}
	if len(p.deps) > 0 {
		b.WriteString("  <dependencies>\n")
		for _, dep := range p.deps {
			fmt.Fprintf(&b, "    <dependency>%s</dependency>\n", coordinateXML(dep))
		}
		b.WriteString("  </dependencies>\n")
	}
	if len(p.managed) > 0 || len(p.imports) > 0 {
		b.WriteString("  <dependencyManagement><dependencies>\n")
		for _, dep := range p.managed {
			fmt.Fprintf(&b, "    <dependency>%s</dependency>\n", coordinateXML(dep))
		}
		for _, dep := range p.imports {
			fmt.Fprintf(&b, "    <dependency>%s<type>pom</type><scope>import</scope></dependency>\n", coordinateXML(dep))
		}
		b.WriteString("  </dependencies></dependencyManagement>\n")
	}
	b.WriteString("</project>\n")
	return b.String()
}

func coordinateXML(c types.Coordinate) string {
	var b strings.Builder
	if c.GroupID != "" {
		fmt.Fprintf(&b, "<groupId>%s</groupId>", c.GroupID)
	}
	fmt.Fprintf(&b, "<artifactId>%s</artifactId>", c.ArtifactID)
	if c.Version != "" {
		fmt.Fprintf(&b, "<version>%s</version>", c.Version)
	}
	return b.String()
}

func coord(group string, artifact string, version string) types.Coordinate {
	return types.Coordinate{GroupID: group, ArtifactID: artifact, Version: version}
}

func coordPtr(group string, artifact string, version string) *types.Coordinate {
	c := coord(group, artifact, version)
	return &c
}
