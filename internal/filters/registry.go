package filters

import (
	"fmt"

	"github.com/custodia-labs/maude-cli/internal/core/ports/driven"
)

// BuilderFunc creates a FilterStage from generic config.
// Config is a map of stage-specific settings parsed from user config.
type BuilderFunc func(cfg map[string]any) (driven.FilterStage, error)

// Registry maps stage names to their builders.
// It allows report flows to be assembled from configuration.
type Registry struct {
	builders map[string]BuilderFunc
}

// NewRegistry creates a new stage registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds a stage builder to the registry.
// Name should be unique and match the stage's Name() return value.
func (r *Registry) Register(name string, builder BuilderFunc) {
	r.builders[name] = builder
}

// Build creates a stage by name with the given config.
// Returns error if the stage name is not registered.
func (r *Registry) Build(name string, cfg map[string]any) (driven.FilterStage, error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown filter stage: %s", name)
	}
	return builder(cfg)
}

// BuildChain builds a chain from stage names sharing one config map.
func (r *Registry) BuildChain(names []string, cfg map[string]any) (*Chain, error) {
	chain := NewChain()
	for _, name := range names {
		stage, err := r.Build(name, cfg)
		if err != nil {
			return nil, err
		}
		chain.Add(stage)
	}
	return chain, nil
}

// Has returns true if a stage with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Names returns all registered stage names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	return names
}
