package helper

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wnxd/microfuzz/emulator"
)

func TestAddressRangesHalfOpen(t *testing.T) {
	ranges := AddressRanges{{Begin: 10, End: 20}, {Begin: 30, End: 40}}

	assert.True(t, ranges.Allowed(10))
	assert.True(t, ranges.Allowed(15))
	assert.False(t, ranges.Allowed(20))
	assert.False(t, ranges.Allowed(25))
	assert.True(t, ranges.Allowed(30))
	assert.False(t, ranges.Allowed(40))
}

func TestFilterListVariants(t *testing.T) {
	ranges := AddressRanges{{Begin: 10, End: 20}}
	probes := []emulator.GuestAddr{0, 9, 10, 15, 19, 20, math.MaxUint64}

	allow := AllowList[emulator.GuestAddr](ranges)
	deny := DenyList[emulator.GuestAddr](ranges)
	none := Unrestricted[emulator.GuestAddr]()

	for _, p := range probes {
		assert.Equal(t, ranges.Allowed(p), allow.Allowed(p), "allow at %d", p)
		assert.Equal(t, !ranges.Allowed(p), deny.Allowed(p), "deny at %d", p)
		assert.True(t, none.Allowed(p), "unrestricted at %d", p)
	}
}

func TestFilterListZeroValueIsUnrestricted(t *testing.T) {
	var f AddressFilter
	assert.True(t, f.Allowed(0))
	assert.True(t, f.Allowed(math.MaxUint64))
}

func TestPagingSet(t *testing.T) {
	set := NewPagingSet(5, 7)

	five := emulator.GuestPhysAddr(5)
	six := emulator.GuestPhysAddr(6)
	seven := emulator.GuestPhysAddr(7)

	assert.True(t, set.Allowed(&five))
	assert.False(t, set.Allowed(&six))
	assert.True(t, set.Allowed(&seven))
	assert.False(t, set.Allowed(nil), "unresolved paging id must reject")
}

func TestPagingFilterListNilParameter(t *testing.T) {
	set := NewPagingSet(5)
	five := emulator.GuestPhysAddr(5)

	allow := AllowList[*emulator.GuestPhysAddr](set)
	assert.True(t, allow.Allowed(&five))
	assert.False(t, allow.Allowed(nil))

	deny := DenyList[*emulator.GuestPhysAddr](set)
	assert.False(t, deny.Allowed(&five))
	assert.True(t, deny.Allowed(nil))

	assert.True(t, Unrestricted[*emulator.GuestPhysAddr]().Allowed(nil))
}
