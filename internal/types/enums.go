package types

const (
	// DescriptorFileName is the conventional project descriptor name.
	DescriptorFileName = "pom.xml"
	// PlaceholderPrefix opens a property reference such as ${lib.version}.
	PlaceholderPrefix = "${"
	// UnresolvedVersion marks a dependency no scope could supply a version for.
	UnresolvedVersion = "UNRESOLVED"
)

// ChainStop records why the ancestor walk ended.
type ChainStop string

const (
	ChainStopComplete    ChainStop = "complete"
	ChainStopUnreachable ChainStop = "unreachable"
	ChainStopEmpty       ChainStop = "empty"
	ChainStopMalformed   ChainStop = "malformed"
	ChainStopTooDeep     ChainStop = "too-deep"
	ChainStopCycle       ChainStop = "cycle"
)

// LookupSource is one place a scope can supply a version from.
type LookupSource string

const (
	LookupProperties LookupSource = "properties"
	LookupManaged    LookupSource = "managed"
	LookupImports    LookupSource = "imports"
)

type Precedence string

const (
	PrecedencePropertiesFirst Precedence = "properties-first"
	PrecedenceManagedFirst    Precedence = "managed-first"
)

type VersionScheme string

const (
	VersionSchemeDeb    VersionScheme = "deb"
	VersionSchemePEP440 VersionScheme = "pep440"
)

type ReportFormat string

const (
	ReportFormatText ReportFormat = "text"
	ReportFormatYAML ReportFormat = "yaml"
)
