package emutest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wnxd/microfuzz/emulator"
	"github.com/wnxd/microfuzz/emulator/emutest"
)

func TestHookRejectsMismatchedCallback(t *testing.T) {
	exec := emutest.New()

	_, err := exec.Hook(emulator.HOOK_TYPE_CODE, emulator.BlockCallback(func(e emulator.Executor, addr uint64, data any) {}), nil, 1, 0)
	assert.ErrorIs(t, err, emulator.ErrHookCallbackType)

	_, err = exec.Hook(emulator.HOOK_TYPE_BLOCK, emulator.CodeCallback(func(e emulator.Executor, addr, size uint64, data any) {}), nil, 1, 0)
	assert.ErrorIs(t, err, emulator.ErrHookCallbackType)
}

func TestClosedHookNoLongerFires(t *testing.T) {
	exec := emutest.New()
	var hits int
	hook, err := exec.Hook(emulator.HOOK_TYPE_BLOCK, emulator.BlockCallback(func(e emulator.Executor, addr uint64, data any) {
		hits++
	}), nil, 1, 0)
	require.NoError(t, err)

	exec.FireBlock(0x1000)
	require.NoError(t, hook.Close())
	exec.FireBlock(0x1000)

	assert.Equal(t, 1, hits)
}

func TestMemUnmapInvalidatesRegion(t *testing.T) {
	exec := emutest.New()
	require.NoError(t, exec.MemMap(0x4000, 0x1000, emulator.MEM_PROT_READ))

	regions, err := exec.MemRegions()
	require.NoError(t, err)
	require.Len(t, regions, 1)

	require.NoError(t, exec.MemUnmap(0x4000, 0x1000))
	_, err = exec.MemRead(0x4000, 1)
	assert.ErrorIs(t, err, emulator.ErrAddressInvalid)
}
