package emulator

type Pointer struct {
	exec Executor
	addr uint64
}

func ToPointer(exec Executor, addr uint64) Pointer {
	return Pointer{exec, addr}
}

func (p Pointer) Address() uint64 {
	return p.addr
}

func (p Pointer) Add(offset uint64) Pointer {
	return Pointer{p.exec, p.addr + offset}
}

func (p Pointer) MemRead(size uint64) ([]byte, error) {
	return p.exec.MemRead(p.addr, size)
}

func (p Pointer) MemWrite(data []byte) error {
	return p.exec.MemWrite(p.addr, data)
}
