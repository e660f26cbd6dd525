package helper

import (
	"github.com/modern-go/reflect2"

	"github.com/wnxd/microfuzz/emulator"
	"github.com/wnxd/microfuzz/observer"
)

// Chain dispatches lifecycle callbacks to every member in declared
// order, head first. A Chain is itself a Helper, so chains nest; nested
// members keep their depth-first position in the overall order. The
// empty chain is a no-op.
type Chain []Helper

func NewChain(helpers ...Helper) Chain {
	return Chain(helpers)
}

// HooksDoSideEffects of a chain is the OR over its members; the empty
// chain reports false.
func (c Chain) HooksDoSideEffects() bool {
	for _, h := range c {
		if h.HooksDoSideEffects() {
			return true
		}
	}
	return false
}

func (c Chain) Init(exec emulator.Executor) {
	for _, h := range c {
		h.Init(exec)
	}
}

func (c Chain) FirstExec(exec emulator.Executor) {
	for _, h := range c {
		h.FirstExec(exec)
	}
}

func (c Chain) PreExec(exec emulator.Executor, input []byte) {
	for _, h := range c {
		h.PreExec(exec, input)
	}
}

func (c Chain) PostExec(exec emulator.Executor, input []byte, observers *observer.Set, exit *ExitKind) {
	for _, h := range c {
		h.PostExec(exec, input, observers, exit)
	}
}

// Match returns the first member whose concrete type is T, descending
// into nested chains in dispatch order.
func Match[T Helper](c Chain) (T, bool) {
	var zero T
	want := reflect2.RTypeOf(zero)
	for _, h := range c {
		if sub, ok := h.(Chain); ok {
			if m, ok := Match[T](sub); ok {
				return m, true
			}
			continue
		}
		if reflect2.RTypeOf(h) == want {
			return h.(T), true
		}
	}
	return zero, false
}
