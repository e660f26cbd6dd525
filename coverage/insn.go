package coverage

import (
	"github.com/wnxd/microfuzz/emulator"
	"github.com/wnxd/microfuzz/helper"
	"github.com/wnxd/microfuzz/observer"
)

// InstructionCountHelper counts the instructions a run executes inside
// its address filter. With a non-zero budget it reclassifies runs that
// reach the budget as timeouts, catching targets that spin without
// tripping the executor's own watchdog.
type InstructionCountHelper struct {
	helper.NopHelper
	helper.AddressFilterHolder
	budget uint64
	count  uint64
	hook   emulator.Hook
}

// NewInstructionCountHelper builds the helper; budget 0 only counts.
func NewInstructionCountHelper(budget uint64) *InstructionCountHelper {
	return &InstructionCountHelper{budget: budget}
}

func (h *InstructionCountHelper) HooksDoSideEffects() bool { return false }

func (h *InstructionCountHelper) FirstExec(exec emulator.Executor) {
	if h.hook != nil {
		return
	}
	hook, err := exec.Hook(emulator.HOOK_TYPE_CODE, emulator.CodeCallback(h.onInsn), nil, 1, 0)
	if err == nil {
		h.hook = hook
	}
}

func (h *InstructionCountHelper) PreExec(exec emulator.Executor, input []byte) {
	h.count = 0
}

func (h *InstructionCountHelper) PostExec(exec emulator.Executor, input []byte, observers *observer.Set, exit *helper.ExitKind) {
	if h.budget != 0 && h.count >= h.budget && *exit == helper.ExitOk {
		*exit = helper.ExitTimeout
	}
}

// Count reports the instructions counted during the last run.
func (h *InstructionCountHelper) Count() uint64 {
	return h.count
}

func (h *InstructionCountHelper) onInsn(exec emulator.Executor, addr, size uint64, data any) {
	if h.AddressFilter().Allowed(addr) {
		h.count++
	}
}
