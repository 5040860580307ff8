package core

import (
	"context"

	"github.com/rs/zerolog/log"

	"pom-version-checker/internal/ports"
	"pom-version-checker/internal/types"
)

const DefaultMaxDepth = 20

// AncestorWalker follows declared parent links through the remote
// repository.
type AncestorWalker struct {
	Remote   ports.RemoteDescriptorPort
	Parser   ports.DescriptorParserPort
	MaxDepth int
}

func NewAncestorWalker(remote ports.RemoteDescriptorPort, parser ports.DescriptorParserPort, maxDepth int) AncestorWalker {
	return AncestorWalker{
		Remote:   remote,
		Parser:   parser,
		MaxDepth: maxDepth,
	}
}

// Walk returns the chain of ancestors starting at parent, nearest first.
// Every failure ends the walk quietly; Stop records which one.
func (w AncestorWalker) Walk(ctx context.Context, parent *types.Coordinate) types.AncestorChain {
	maxDepth := w.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	chain := types.AncestorChain{Stop: types.ChainStopComplete}
	visited := map[string]struct{}{}
	logger := log.Ctx(ctx)

	for next := parent; next != nil; {
		if len(chain.Descriptors) >= maxDepth {
			logger.Warn().
				Int("max_depth", maxDepth).
				Str("next", next.String()).
				Msg("ancestor chain too deep, truncating")
			chain.Stop = types.ChainStopTooDeep
			break
		}
		key := next.String()
		if _, seen := visited[key]; seen {
			logger.Warn().Str("ancestor", key).Msg("ancestor cycle detected")
			chain.Stop = types.ChainStopCycle
			break
		}
		visited[key] = struct{}{}

		if w.Remote == nil || w.Parser == nil || !next.Fetchable() {
			logger.Warn().Str("ancestor", key).Msg("ancestor cannot be fetched")
			chain.Stop = types.ChainStopUnreachable
			break
		}
		raw, err := w.Remote.FetchDescriptor(ctx, *next)
		if err != nil {
			logger.Warn().Err(err).Str("ancestor", key).Msg("ancestor unreachable")
			chain.Stop = types.ChainStopUnreachable
			break
		}
		if len(raw) == 0 {
			logger.Warn().Str("ancestor", key).Msg("ancestor not found in repository")
			chain.Stop = types.ChainStopEmpty
			break
		}
		descriptor, err := w.Parser.Parse(raw)
		if err != nil {
			logger.Warn().Err(err).Str("ancestor", key).Msg("ancestor malformed")
			chain.Stop = types.ChainStopMalformed
			break
		}
		chain.Descriptors = append(chain.Descriptors, descriptor)
		next = descriptor.Parent
	}

	logger.Debug().
		Int("ancestors", len(chain.Descriptors)).
		Str("stop", string(chain.Stop)).
		Msg("ancestor walk finished")
	return chain
}
