package helper

import "github.com/wnxd/microfuzz/emulator"

// AddressRange is the half-open interval [Begin, End).
type AddressRange struct {
	Begin, End emulator.GuestAddr
}

func (r AddressRange) Contains(addr emulator.GuestAddr) bool {
	return addr >= r.Begin && addr < r.End
}

// AddressRanges accepts an address contained in any of its ranges.
type AddressRanges []AddressRange

func (rs AddressRanges) Allowed(addr emulator.GuestAddr) bool {
	for _, r := range rs {
		if r.Contains(addr) {
			return true
		}
	}
	return false
}
