package types

// Dependency is one declared dependency. Version starts as the raw declared
// text and holds the concrete version (or UnresolvedVersion) after the
// resolution phase.
type Dependency struct {
	Coordinate    `yaml:",inline"`
	Declared      string      `yaml:"declared,omitempty"`
	Scope         string      `yaml:"scope,omitempty"`
	Type          string      `yaml:"type,omitempty"`
	Managed       bool        `yaml:"managed,omitempty"`
	LatestVersion string      `yaml:"latest_version,omitempty"`
	ResolvedFrom  *Coordinate `yaml:"resolved_from,omitempty"`
}

// IsImport reports whether the entry imports another descriptor's
// dependency management (a bill of materials).
func (d Dependency) IsImport() bool {
	return d.Managed && d.Scope == "import" && d.Type == "pom"
}

// Descriptor is the parsed essence of one project descriptor.
type Descriptor struct {
	Coordinate   Coordinate
	Parent       *Coordinate
	Dependencies []Dependency
	Properties   map[string]string
	// Source is the normalized descriptor text the structured decode ran on.
	Source string
}

// Property returns the raw value of a property declared by the descriptor.
func (d Descriptor) Property(name string) (string, bool) {
	if d.Properties == nil {
		return "", false
	}
	value, ok := d.Properties[name]
	return value, ok
}

// Module is one sub-project of a multi-module layout.
type Module struct {
	Descriptor
	Path string
}

// Project is the root aggregate of one resolution run.
type Project struct {
	Descriptor
	Path         string
	Modules      []Module
	ExcludeGroup string
}

// AncestorChain is the ordered list of ancestor descriptors, nearest parent
// first, together with the reason the walk stopped.
type AncestorChain struct {
	Descriptors []Descriptor
	Stop        ChainStop
}

// Coordinates lists the chain's coordinates in walk order.
func (c AncestorChain) Coordinates() []Coordinate {
	out := make([]Coordinate, 0, len(c.Descriptors))
	for _, descriptor := range c.Descriptors {
		out = append(out, descriptor.Coordinate)
	}
	return out
}
