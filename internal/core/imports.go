package core

import (
	"context"

	"github.com/rs/zerolog/log"

	"pom-version-checker/internal/ports"
	"pom-version-checker/internal/shared"
	"pom-version-checker/internal/types"
)

// BOMImporter fetches the bills of materials a descriptor imports through
// its dependency management. Imports of an imported BOM are not followed.
type BOMImporter struct {
	Remote ports.RemoteDescriptorPort
	Parser ports.DescriptorParserPort
}

func NewBOMImporter(remote ports.RemoteDescriptorPort, parser ports.DescriptorParserPort) *BOMImporter {
	return &BOMImporter{
		Remote: remote,
		Parser: parser,
	}
}

// Imports returns the descriptors of every BOM scope imports, in
// declaration order. Unavailable BOMs are logged and skipped.
func (b *BOMImporter) Imports(ctx context.Context, scope types.Descriptor) []types.Descriptor {
	if b == nil || b.Remote == nil || b.Parser == nil {
		return nil
	}
	var out []types.Descriptor
	logger := log.Ctx(ctx)
	for _, dep := range scope.Dependencies {
		if !dep.IsImport() {
			continue
		}
		coordinate := types.Coordinate{
			GroupID:    substituteOnce(dep.GroupID, scope),
			ArtifactID: dep.ArtifactID,
			Version:    substituteOnce(dep.Version, scope),
		}
		if !coordinate.Fetchable() {
			logger.Warn().
				Str("bom", coordinate.String()).
				Str("scope", scope.Coordinate.String()).
				Msg("import has no concrete coordinate, skipping")
			continue
		}
		raw, err := b.Remote.FetchDescriptor(ctx, coordinate)
		if err != nil || len(raw) == 0 {
			logger.Warn().Err(err).Str("bom", coordinate.String()).Msg("import unavailable, skipping")
			continue
		}
		descriptor, err := b.Parser.Parse(raw)
		if err != nil {
			logger.Warn().Err(err).Str("bom", coordinate.String()).Msg("import malformed, skipping")
			continue
		}
		out = append(out, descriptor)
	}
	return out
}

// substituteOnce replaces the first property reference in value from the
// descriptor's own property table. Unknown properties leave value as is.
func substituteOnce(value string, descriptor types.Descriptor) string {
	if !shared.HasPlaceholder(value) {
		return value
	}
	replacement, ok := descriptor.Property(shared.PlaceholderName(value))
	if !ok {
		return value
	}
	return shared.ReplacePlaceholder(value, replacement)
}
