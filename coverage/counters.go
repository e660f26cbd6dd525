package coverage

import (
	"github.com/wnxd/microfuzz/emulator"
	"github.com/wnxd/microfuzz/helper"
)

// CountersHelper zeroes every registered counter span before a run so
// the counts read afterwards belong to that run alone. It never touches
// the registry itself, only the memory the spans point at.
type CountersHelper struct {
	helper.NopHelper
	registry *Registry
}

// NewCountersHelper wires the helper to registry, or to the
// process-wide Counters registry when registry is nil.
func NewCountersHelper(registry *Registry) *CountersHelper {
	if registry == nil {
		registry = Counters
	}
	return &CountersHelper{registry: registry}
}

func (h *CountersHelper) HooksDoSideEffects() bool { return false }

func (h *CountersHelper) PreExec(exec emulator.Executor, input []byte) {
	for _, s := range h.registry.Spans() {
		clear(s.Bytes())
	}
}

// CountersObserver is a read-only fitness view over a counter registry.
type CountersObserver struct {
	name     string
	registry *Registry
}

func NewCountersObserver(name string, registry *Registry) *CountersObserver {
	if registry == nil {
		registry = Counters
	}
	return &CountersObserver{name: name, registry: registry}
}

func (o *CountersObserver) Name() string {
	return o.name
}

func (o *CountersObserver) Reset() {
	for _, s := range o.registry.Spans() {
		clear(s.Bytes())
	}
}

// HitCount reports how many counter cells were hit at least once.
func (o *CountersObserver) HitCount() int {
	var n int
	for _, s := range o.registry.Spans() {
		for _, v := range s.Bytes() {
			if v != 0 {
				n++
			}
		}
	}
	return n
}
