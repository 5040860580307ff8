package core

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"pom-version-checker/internal/policies"
	"pom-version-checker/internal/ports"
	"pom-version-checker/internal/shared"
	"pom-version-checker/internal/types"
)

// VersionResolver replaces placeholder dependency versions with concrete
// ones found in the project and its ancestors.
type VersionResolver struct {
	Precedence ports.PrecedencePort
	Imports    *BOMImporter
}

func NewVersionResolver(precedence ports.PrecedencePort, imports *BOMImporter) VersionResolver {
	return VersionResolver{
		Precedence: precedence,
		Imports:    imports,
	}
}

// resolutionScope is one descriptor consulted for versions. A nil origin
// means versions found here are not attributed to anything else.
type resolutionScope struct {
	descriptor types.Descriptor
	origin     *types.Coordinate
	imports    []types.Descriptor
	loaded     bool
}

// Resolve rewrites every dependency version of the project in place. Root
// dependencies see the root followed by its ancestors; module dependencies
// see the module, the resolved root and then the ancestors. Modules never
// see each other.
func (r VersionResolver) Resolve(ctx context.Context, project *types.Project, chain types.AncestorChain) error {
	if project == nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("resolver requires a project")
	}

	ancestors := make([]*resolutionScope, 0, len(chain.Descriptors))
	for _, descriptor := range chain.Descriptors {
		origin := descriptor.Coordinate
		ancestors = append(ancestors, &resolutionScope{descriptor: descriptor, origin: &origin})
	}

	root := &resolutionScope{descriptor: project.Descriptor}
	rootScopes := append([]*resolutionScope{root}, ancestors...)
	project.Dependencies = r.resolveAll(ctx, project.Descriptor, rootScopes)

	rootOrigin := project.Coordinate
	resolvedRoot := &resolutionScope{
		descriptor: project.Descriptor,
		origin:     &rootOrigin,
		imports:    root.imports,
		loaded:     root.loaded,
	}
	for i := range project.Modules {
		module := &project.Modules[i]
		scopes := make([]*resolutionScope, 0, len(ancestors)+2)
		scopes = append(scopes, &resolutionScope{descriptor: module.Descriptor}, resolvedRoot)
		scopes = append(scopes, ancestors...)
		module.Dependencies = r.resolveAll(ctx, module.Descriptor, scopes)
	}
	return nil
}

func (r VersionResolver) resolveAll(ctx context.Context, declaring types.Descriptor, scopes []*resolutionScope) []types.Dependency {
	if len(declaring.Dependencies) == 0 {
		return declaring.Dependencies
	}
	out := make([]types.Dependency, 0, len(declaring.Dependencies))
	for _, dep := range declaring.Dependencies {
		dep.GroupID = substituteOnce(dep.GroupID, declaring)
		out = append(out, r.resolveDependency(ctx, dep, scopes))
	}
	return out
}

func (r VersionResolver) resolveDependency(ctx context.Context, dep types.Dependency, scopes []*resolutionScope) types.Dependency {
	if dep.Version == "" {
		dep.Version = shared.SyntheticPlaceholder(dep.ArtifactID)
	}
	if !shared.HasPlaceholder(dep.Version) {
		return dep
	}
	name := shared.PlaceholderName(dep.Version)
	for _, scope := range scopes {
		for _, source := range r.sources() {
			version, origin, ok := r.lookup(ctx, scope, source, dep, name)
			if !ok {
				continue
			}
			dep.Version = version
			dep.ResolvedFrom = origin
			return dep
		}
	}
	log.Ctx(ctx).Debug().
		Str("dependency", dep.Key()).
		Str("declared", dep.Declared).
		Msg("dependency version unresolved")
	dep.Version = types.UnresolvedVersion
	dep.ResolvedFrom = nil
	return dep
}

func (r VersionResolver) sources() []types.LookupSource {
	if r.Precedence == nil {
		return policies.DefaultPrecedencePolicy().Sources()
	}
	return r.Precedence.Sources()
}

func (r VersionResolver) lookup(ctx context.Context, scope *resolutionScope, source types.LookupSource, dep types.Dependency, name string) (string, *types.Coordinate, bool) {
	switch source {
	case types.LookupProperties:
		value, ok := scope.descriptor.Property(name)
		if !ok {
			return "", nil, false
		}
		candidate := shared.ReplacePlaceholder(dep.Version, value)
		if !isConcrete(candidate) {
			return "", nil, false
		}
		return candidate, copyCoordinate(scope.origin), true
	case types.LookupManaged:
		if version, ok := managedVersion(scope.descriptor, dep.ArtifactID); ok {
			return version, copyCoordinate(scope.origin), true
		}
	case types.LookupImports:
		for _, bom := range r.scopeImports(ctx, scope) {
			if version, ok := managedVersion(bom, dep.ArtifactID); ok {
				return version, copyCoordinate(&bom.Coordinate), true
			}
		}
	}
	return "", nil, false
}

func (r VersionResolver) scopeImports(ctx context.Context, scope *resolutionScope) []types.Descriptor {
	if !scope.loaded {
		scope.imports = r.Imports.Imports(ctx, scope.descriptor)
		scope.loaded = true
	}
	return scope.imports
}

// managedVersion returns the first concrete version the descriptor gives
// artifactID, allowing one substitution from its own properties.
// Dependency management pins are consulted before plain dependencies.
func managedVersion(descriptor types.Descriptor, artifactID string) (string, bool) {
	for _, pinned := range []bool{true, false} {
		for _, entry := range descriptor.Dependencies {
			if entry.Managed != pinned || entry.ArtifactID != artifactID || entry.IsImport() {
				continue
			}
			candidate := substituteOnce(entry.Version, descriptor)
			if isConcrete(candidate) {
				return candidate, true
			}
		}
	}
	return "", false
}

func isConcrete(version string) bool {
	return version != "" && version != types.UnresolvedVersion && !shared.HasPlaceholder(version)
}

func copyCoordinate(coordinate *types.Coordinate) *types.Coordinate {
	if coordinate == nil {
		return nil
	}
	copied := *coordinate
	return &copied
}
