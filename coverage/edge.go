package coverage

import (
	"github.com/wnxd/microfuzz/emulator"
	"github.com/wnxd/microfuzz/helper"
	"github.com/wnxd/microfuzz/observer"
)

const (
	// MapSize is the edge bitmap size, a power of two so edge ids wrap
	// by masking.
	MapSize = 1 << 16

	// EdgeObserverName is the observer the edge bitmap is published to.
	EdgeObserverName = "edges"
)

// EdgeHelper collects edge coverage of the emulated target. It hooks
// every translated-block entry and counts (previous, current) block
// pairs in a fixed-size bitmap, scoped by its address and paging
// filters. The bitmap is cleared before each run and published to the
// EdgeObserverName map observer after it.
type EdgeHelper struct {
	helper.AddressFilterHolder
	helper.PagingFilterHolder
	bitmap []byte
	prev   emulator.GuestAddr
	hook   emulator.Hook
}

func NewEdgeHelper(filter helper.AddressFilter) *EdgeHelper {
	h := &EdgeHelper{bitmap: make([]byte, MapSize)}
	*h.AddressFilter() = filter
	return h
}

// HooksDoSideEffects reports false: the block hook only writes the
// helper's private bitmap, which the executor does not observe.
func (h *EdgeHelper) HooksDoSideEffects() bool { return false }

func (h *EdgeHelper) Init(exec emulator.Executor) {}

func (h *EdgeHelper) FirstExec(exec emulator.Executor) {
	if h.hook != nil {
		return
	}
	hook, err := exec.Hook(emulator.HOOK_TYPE_BLOCK, emulator.BlockCallback(h.onBlock), nil, 1, 0)
	if err == nil {
		h.hook = hook
	}
}

func (h *EdgeHelper) PreExec(exec emulator.Executor, input []byte) {
	clear(h.bitmap)
	h.prev = 0
}

func (h *EdgeHelper) PostExec(exec emulator.Executor, input []byte, observers *observer.Set, exit *helper.ExitKind) {
	if o, ok := observers.Find(EdgeObserverName); ok {
		if m, ok := o.(*observer.MapObserver); ok {
			m.Fill(h.bitmap)
		}
	}
}

// Bitmap exposes the raw edge counters of the last run.
func (h *EdgeHelper) Bitmap() []byte {
	return h.bitmap
}

func (h *EdgeHelper) onBlock(exec emulator.Executor, addr uint64, data any) {
	if !h.AddressFilter().Allowed(addr) {
		return
	}
	var pid *emulator.GuestPhysAddr
	if id, ok := exec.CurrentPagingID(); ok {
		pid = &id
	}
	if !h.PagingFilter().Allowed(pid) {
		return
	}
	idx := (Mix(h.prev) ^ Mix(addr)) & (MapSize - 1)
	h.bitmap[idx]++
	h.prev = addr
}
