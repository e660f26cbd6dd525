package emulator

import "io"

type HookType int

const (
	HOOK_TYPE_CODE HookType = 1 << iota
	HOOK_TYPE_BLOCK
)

// CodeCallback fires per translated instruction, BlockCallback per
// translated-block entry. addr is the guest program counter at the
// hooked location.
type CodeCallback = func(exec Executor, addr, size uint64, data any)
type BlockCallback = func(exec Executor, addr uint64, data any)

type Hook interface {
	io.Closer
	Type() HookType
}
