package helper

import "github.com/wnxd/microfuzz/emulator"

// Filter decides whether an instrumentation parameter (an address, a
// paging identifier) is in scope. Allowed must be pure: it may run on
// every translated block.
type Filter[P any] interface {
	Allowed(p P) bool
}

type filterMode int

const (
	modeUnrestricted filterMode = iota
	modeAllow
	modeDeny
)

// FilterList wraps a concrete filter as an allow-list, a deny-list, or
// no restriction at all. The zero value is unrestricted.
type FilterList[P any] struct {
	mode  filterMode
	inner Filter[P]
}

func AllowList[P any](f Filter[P]) FilterList[P] {
	return FilterList[P]{mode: modeAllow, inner: f}
}

func DenyList[P any](f Filter[P]) FilterList[P] {
	return FilterList[P]{mode: modeDeny, inner: f}
}

func Unrestricted[P any]() FilterList[P] {
	return FilterList[P]{}
}

func (l FilterList[P]) Allowed(p P) bool {
	switch l.mode {
	case modeAllow:
		return l.inner.Allowed(p)
	case modeDeny:
		return !l.inner.Allowed(p)
	default:
		return true
	}
}

// AddressFilter scopes instrumentation by guest virtual address.
type AddressFilter = FilterList[emulator.GuestAddr]

// PagingFilter scopes instrumentation by paging identifier. A nil
// parameter means the identifier could not be resolved and is never
// allowed.
type PagingFilter = FilterList[*emulator.GuestPhysAddr]
