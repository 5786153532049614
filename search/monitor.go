package search

import (
	"github.com/poiesic/toolscout/core"
)

// SearchMonitor provides hooks to observe the retrieval process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterFilter(candidates []*core.ToolRecord)
	AfterVectorSearch(neighbors []Neighbor)
	DiscardedByDistance(record *core.ToolRecord, distance float32)
	PersonaHit(record *core.ToolRecord)
	Finish(results []*core.RankedTool)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                                 {}
func (n *noopMonitor) AfterFilter(_ []*core.ToolRecord)               {}
func (n *noopMonitor) AfterVectorSearch(_ []Neighbor)                 {}
func (n *noopMonitor) DiscardedByDistance(_ *core.ToolRecord, _ float32) {}
func (n *noopMonitor) PersonaHit(_ *core.ToolRecord)                  {}
func (n *noopMonitor) Finish(_ []*core.RankedTool)                    {}
