package emulator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wnxd/microfuzz/emulator"
	"github.com/wnxd/microfuzz/emulator/emutest"
)

func TestPointerReadWrite(t *testing.T) {
	exec := emutest.New()
	require.NoError(t, exec.MemMap(0x4000, 0x1000, emulator.MEM_PROT_READ|emulator.MEM_PROT_WRITE))

	p := emulator.ToPointer(exec, 0x4000)
	assert.Equal(t, uint64(0x4000), p.Address())

	require.NoError(t, p.MemWrite([]byte{1, 2, 3, 4}))

	q := p.Add(2)
	assert.Equal(t, uint64(0x4002), q.Address())
	data, err := q.MemRead(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 4}, data)
}

func TestPointerUnmappedAccess(t *testing.T) {
	exec := emutest.New()

	p := emulator.ToPointer(exec, 0x9000)
	assert.ErrorIs(t, p.MemWrite([]byte{1}), emulator.ErrAddressInvalid)
	_, err := p.MemRead(1)
	assert.ErrorIs(t, err, emulator.ErrAddressInvalid)
}

func TestAlign(t *testing.T) {
	assert.Equal(t, uint64(0x1000), emulator.Align(uint64(1), uint64(0x1000)))
	assert.Equal(t, uint64(0x2000), emulator.Align(uint64(0x1001), uint64(0x1000)))
	assert.Equal(t, uint64(0x1000), emulator.PageOf(uint64(0x1fff), uint64(0x1000)))
}
