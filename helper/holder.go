package helper

import "github.com/wnxd/microfuzz/emulator"

type HasAddressFilter interface {
	AddressFilter() *AddressFilter
	UpdateAddressFilter(f AddressFilter, exec emulator.Executor)
}

type HasPagingFilter interface {
	PagingFilter() *PagingFilter
	UpdatePagingFilter(f PagingFilter, exec emulator.Executor)
}

// AddressFilterHolder owns a helper's address filter. Embed it to gain
// HasAddressFilter. Replacing the filter flushes the executor's
// translated code, since existing translations were instrumented
// against the old scope.
type AddressFilterHolder struct {
	filter AddressFilter
}

func (h *AddressFilterHolder) AddressFilter() *AddressFilter {
	return &h.filter
}

func (h *AddressFilterHolder) UpdateAddressFilter(f AddressFilter, exec emulator.Executor) {
	h.filter = f
	exec.FlushJIT()
}

// PagingFilterHolder owns a helper's paging filter, for targets running
// with paging enabled.
type PagingFilterHolder struct {
	filter PagingFilter
}

func (h *PagingFilterHolder) PagingFilter() *PagingFilter {
	return &h.filter
}

func (h *PagingFilterHolder) UpdatePagingFilter(f PagingFilter, exec emulator.Executor) {
	h.filter = f
	exec.FlushJIT()
}
