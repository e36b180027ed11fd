package filters

import (
	"github.com/custodia-labs/maude-cli/internal/core/domain"
	"github.com/custodia-labs/maude-cli/internal/core/ports/driven"
)

// Ensure Chain implements the interface.
var _ driven.FilterChain = (*Chain)(nil)

// Chain applies filter stages in order.
type Chain struct {
	stages []driven.FilterStage
}

// NewChain creates a chain with the given stages.
// Stages are applied in the order provided.
func NewChain(stages ...driven.FilterStage) *Chain {
	return &Chain{stages: stages}
}

// Apply runs the table through every stage and returns the final table
// with one criterion per stage, each describing that stage's result.
func (c *Chain) Apply(table domain.Table) (domain.Table, []string) {
	criteria := make([]string, 0, len(c.stages))
	for _, stage := range c.stages {
		table = stage.Apply(table)
		criteria = append(criteria, stage.Describe(table))
	}
	return table, criteria
}

// Add appends a stage to the chain.
func (c *Chain) Add(stage driven.FilterStage) {
	c.stages = append(c.stages, stage)
}

// Len returns the number of stages in the chain.
func (c *Chain) Len() int {
	return len(c.stages)
}

// Names returns the stage names in order.
func (c *Chain) Names() []string {
	names := make([]string, len(c.stages))
	for i, s := range c.stages {
		names[i] = s.Name()
	}
	return names
}
