package adapters

import (
	"encoding/xml"
	"regexp"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pom-version-checker/internal/ports"
	"pom-version-checker/internal/shared"
	"pom-version-checker/internal/types"
)

// PomXMLAdapter decodes Maven project descriptors.
type PomXMLAdapter struct{}

func NewPomXMLAdapter() PomXMLAdapter {
	return PomXMLAdapter{}
}

type pomProject struct {
	GroupID      string          `xml:"groupId"`
	ArtifactID   string          `xml:"artifactId"`
	Version      string          `xml:"version"`
	Properties   pomProperties   `xml:"properties"`
	Dependencies []pomDependency `xml:"dependencies>dependency"`
	Managed      []pomDependency `xml:"dependencyManagement>dependencies>dependency"`
}

type pomParent struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}

type pomDependency struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
	Scope      string `xml:"scope"`
	Type       string `xml:"type"`
}

type pomProperties struct {
	Entries []pomProperty `xml:",any"`
}

type pomProperty struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

// Sections that never declare project dependencies. Plugins declare their
// own coordinates and dependencies and must not be mistaken for ours.
var strippedSections = []*regexp.Regexp{
	regexp.MustCompile(`(?s)<build>.*?</build>`),
	regexp.MustCompile(`(?s)<plugins>.*?</plugins>`),
	regexp.MustCompile(`(?s)<reporting>.*?</reporting>`),
	regexp.MustCompile(`(?s)<profiles>.*?</profiles>`),
}

var parentSection = regexp.MustCompile(`(?s)<parent>.*?</parent>`)

// Parse strips build-only sections, isolates the <parent> block and
// decodes the rest. The parent block is removed before dependencies are
// extracted so its coordinate is never counted as a dependency.
func (a PomXMLAdapter) Parse(raw []byte) (types.Descriptor, error) {
	text := string(raw)
	for _, section := range strippedSections {
		text = section.ReplaceAllString(text, "")
	}
	text = shared.CollapseWhitespace(text)

	var parent *types.Coordinate
	if block := parentSection.FindString(text); block != "" {
		var decoded pomParent
		if err := xml.Unmarshal([]byte(block), &decoded); err != nil {
			return types.Descriptor{}, malformedDescriptor("failed to decode parent block", err)
		}
		if strings.TrimSpace(decoded.ArtifactID) != "" {
			parent = &types.Coordinate{
				GroupID:    strings.TrimSpace(decoded.GroupID),
				ArtifactID: strings.TrimSpace(decoded.ArtifactID),
				Version:    strings.TrimSpace(decoded.Version),
			}
		}
		text = parentSection.ReplaceAllString(text, "")
	}

	var project pomProject
	if err := xml.Unmarshal([]byte(text), &project); err != nil {
		return types.Descriptor{}, malformedDescriptor("failed to decode descriptor", err)
	}
	artifactID := strings.TrimSpace(project.ArtifactID)
	if artifactID == "" {
		return types.Descriptor{}, malformedDescriptor("descriptor has no artifactId", nil)
	}

	coordinate := types.Coordinate{
		GroupID:    strings.TrimSpace(project.GroupID),
		ArtifactID: artifactID,
		Version:    strings.TrimSpace(project.Version),
	}
	if parent != nil {
		if coordinate.GroupID == "" {
			coordinate.GroupID = parent.GroupID
		}
		if coordinate.Version == "" {
			coordinate.Version = parent.Version
		}
	}

	descriptor := types.Descriptor{
		Coordinate: coordinate,
		Parent:     parent,
		Properties: collectProperties(project.Properties, coordinate, parent),
		Source:     text,
	}
	descriptor.Dependencies = append(descriptor.Dependencies, convertDependencies(project.Dependencies, false)...)
	descriptor.Dependencies = append(descriptor.Dependencies, convertDependencies(project.Managed, true)...)
	return descriptor, nil
}

func collectProperties(block pomProperties, coordinate types.Coordinate, parent *types.Coordinate) map[string]string {
	properties := map[string]string{}
	for _, entry := range block.Entries {
		name := strings.TrimSpace(entry.XMLName.Local)
		if name == "" {
			continue
		}
		properties[name] = strings.TrimSpace(entry.Value)
	}
	builtin := map[string]string{
		"project.groupId":    coordinate.GroupID,
		"project.artifactId": coordinate.ArtifactID,
		"project.version":    coordinate.Version,
	}
	if parent != nil {
		builtin["project.parent.groupId"] = parent.GroupID
		builtin["project.parent.version"] = parent.Version
	}
	for name, value := range builtin {
		if value == "" {
			continue
		}
		if _, declared := properties[name]; !declared {
			properties[name] = value
		}
	}
	return properties
}

func convertDependencies(entries []pomDependency, managed bool) []types.Dependency {
	var out []types.Dependency
	for _, entry := range entries {
		artifactID := strings.TrimSpace(entry.ArtifactID)
		if artifactID == "" {
			continue
		}
		version := strings.TrimSpace(entry.Version)
		if version == "" {
			version = shared.SyntheticPlaceholder(artifactID)
		}
		out = append(out, types.Dependency{
			Coordinate: types.Coordinate{
				GroupID:    strings.TrimSpace(entry.GroupID),
				ArtifactID: artifactID,
				Version:    version,
			},
			Declared: version,
			Scope:    strings.TrimSpace(entry.Scope),
			Type:     strings.TrimSpace(entry.Type),
			Managed:  managed,
		})
	}
	return out
}

func malformedDescriptor(msg string, cause error) error {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("malformed descriptor: " + msg)
	if cause != nil {
		return builder.WithCause(cause)
	}
	return builder
}

var _ ports.DescriptorParserPort = PomXMLAdapter{}
