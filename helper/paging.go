package helper

import "github.com/wnxd/microfuzz/emulator"

// PagingSet accepts a resolved paging identifier contained in the set.
type PagingSet map[emulator.GuestPhysAddr]struct{}

func NewPagingSet(ids ...emulator.GuestPhysAddr) PagingSet {
	s := make(PagingSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s PagingSet) Allowed(id *emulator.GuestPhysAddr) bool {
	if id == nil {
		return false
	}
	_, ok := s[*id]
	return ok
}
