package emulator

import (
	"io"
)

// GuestAddr is a virtual address inside the emulated target.
type GuestAddr = uint64

// GuestPhysAddr identifies a paging context of the emulated target,
// typically the page-table base of the current address space.
type GuestPhysAddr = uint64

type Executor interface {
	io.Closer
	Arch() Arch
	ByteOrder() ByteOrder
	PageSize() uint64
	MemMap(addr, size uint64, prot MemProt) error
	MemUnmap(addr, size uint64) error
	MemRegions() ([]MemRegion, error)
	MemRead(addr, size uint64) ([]byte, error)
	MemWrite(addr uint64, data []byte) error
	RegisterContext
	Start(begin, until uint64) error
	Stop() error
	Hook(typ HookType, callback any, data any, begin, end uint64) (Hook, error)
	// FlushJIT invalidates every translated-code block. Instrumented
	// translations are rebuilt on next execution, so this must be called
	// whenever instrumentation scope changes.
	FlushJIT()
	// CurrentPagingID reports the paging identifier of the address space
	// the target is currently executing in. ok is false when the target
	// runs without paging or the identifier cannot be resolved.
	CurrentPagingID() (GuestPhysAddr, bool)
}
