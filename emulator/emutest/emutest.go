// Package emutest provides an in-memory Executor for tests.
package emutest

import (
	"slices"

	"github.com/wnxd/microfuzz/emulator"
)

type Hook struct {
	Typ        emulator.HookType
	Callback   any
	Data       any
	Begin, End uint64
	Closed     bool
}

func (h *Hook) Close() error {
	h.Closed = true
	return nil
}

func (h *Hook) Type() emulator.HookType {
	return h.Typ
}

// Executor fakes an emulated target: flat byte-map memory behind
// explicitly mapped regions, recorded hooks, a counter for JIT flushes
// and a pluggable Start behavior.
type Executor struct {
	ArchVal     emulator.Arch
	PageSizeVal uint64
	StartFunc   func(begin, until uint64) error
	PagingID    *emulator.GuestPhysAddr

	Flushes int
	Hooks   []*Hook
	Starts  [][2]uint64

	regions []emulator.MemRegion
	mem     map[uint64]byte
	regs    map[emulator.Reg]uint64
}

func New() *Executor {
	return &Executor{
		ArchVal:     emulator.ARCH_ARM64,
		PageSizeVal: 0x1000,
		mem:         make(map[uint64]byte),
		regs:        make(map[emulator.Reg]uint64),
	}
}

func (e *Executor) Close() error {
	return nil
}

func (e *Executor) Arch() emulator.Arch {
	return e.ArchVal
}

func (e *Executor) ByteOrder() emulator.ByteOrder {
	return emulator.BO_LITTLE_ENDIAN
}

func (e *Executor) PageSize() uint64 {
	return e.PageSizeVal
}

func (e *Executor) MemMap(addr, size uint64, prot emulator.MemProt) error {
	e.regions = append(e.regions, emulator.MemRegion{Addr: addr, Size: size, Prot: prot})
	return nil
}

func (e *Executor) MemUnmap(addr, size uint64) error {
	e.regions = slices.DeleteFunc(e.regions, func(r emulator.MemRegion) bool {
		return r.Addr == addr && r.Size == size
	})
	return nil
}

func (e *Executor) MemRegions() ([]emulator.MemRegion, error) {
	return slices.Clone(e.regions), nil
}

func (e *Executor) mapped(addr, size uint64) bool {
	if size == 0 {
		return true
	}
	for _, r := range e.regions {
		if addr >= r.Addr && addr+size <= r.Addr+r.Size {
			return true
		}
	}
	return false
}

func (e *Executor) MemRead(addr, size uint64) ([]byte, error) {
	if !e.mapped(addr, size) {
		return nil, emulator.ErrAddressInvalid
	}
	data := make([]byte, size)
	for i := range data {
		data[i] = e.mem[addr+uint64(i)]
	}
	return data, nil
}

func (e *Executor) MemWrite(addr uint64, data []byte) error {
	if !e.mapped(addr, uint64(len(data))) {
		return emulator.ErrAddressInvalid
	}
	for i, b := range data {
		e.mem[addr+uint64(i)] = b
	}
	return nil
}

func (e *Executor) RegRead(reg emulator.Reg) (uint64, error) {
	return e.regs[reg], nil
}

func (e *Executor) RegWrite(reg emulator.Reg, value uint64) error {
	e.regs[reg] = value
	return nil
}

func (e *Executor) Start(begin, until uint64) error {
	e.Starts = append(e.Starts, [2]uint64{begin, until})
	if e.StartFunc != nil {
		return e.StartFunc(begin, until)
	}
	return nil
}

func (e *Executor) Stop() error {
	return nil
}

func (e *Executor) Hook(typ emulator.HookType, callback any, data any, begin, end uint64) (emulator.Hook, error) {
	switch typ {
	case emulator.HOOK_TYPE_CODE:
		if _, ok := callback.(emulator.CodeCallback); !ok {
			return nil, emulator.ErrHookCallbackType
		}
	case emulator.HOOK_TYPE_BLOCK:
		if _, ok := callback.(emulator.BlockCallback); !ok {
			return nil, emulator.ErrHookCallbackType
		}
	}
	h := &Hook{Typ: typ, Callback: callback, Data: data, Begin: begin, End: end}
	e.Hooks = append(e.Hooks, h)
	return h, nil
}

func (e *Executor) FlushJIT() {
	e.Flushes++
}

func (e *Executor) CurrentPagingID() (emulator.GuestPhysAddr, bool) {
	if e.PagingID == nil {
		return 0, false
	}
	return *e.PagingID, true
}

// FireBlock invokes every installed block hook as if the target entered
// a translated block at addr.
func (e *Executor) FireBlock(addr uint64) {
	for _, h := range e.Hooks {
		if h.Closed || h.Typ != emulator.HOOK_TYPE_BLOCK {
			continue
		}
		if cb, ok := h.Callback.(emulator.BlockCallback); ok {
			cb(e, addr, h.Data)
		}
	}
}

// FireCode invokes every installed code hook as if the target executed
// one instruction of the given size at addr.
func (e *Executor) FireCode(addr, size uint64) {
	for _, h := range e.Hooks {
		if h.Closed || h.Typ != emulator.HOOK_TYPE_CODE {
			continue
		}
		if cb, ok := h.Callback.(emulator.CodeCallback); ok {
			cb(e, addr, size, h.Data)
		}
	}
}
