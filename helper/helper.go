package helper

import (
	"github.com/wnxd/microfuzz/emulator"
	"github.com/wnxd/microfuzz/observer"
)

// Helper is a pluggable instrumentation unit invoked by the executor at
// the execution lifecycle points of the emulated target. Init runs once
// per campaign before the executor is fully set up, FirstExec once
// before the first target run, PreExec and PostExec around every run.
//
// Callbacks return no error: a helper that hits an unrecoverable
// condition must signal it outside this layer.
type Helper interface {
	// HooksDoSideEffects declares whether the helper's installed hooks
	// mutate observable state. The executor may skip hook invocation on
	// fast paths when every helper reports false.
	HooksDoSideEffects() bool
	Init(exec emulator.Executor)
	FirstExec(exec emulator.Executor)
	PreExec(exec emulator.Executor, input []byte)
	PostExec(exec emulator.Executor, input []byte, observers *observer.Set, exit *ExitKind)
}

// NopHelper provides default no-op lifecycle callbacks for embedding.
type NopHelper struct{}

func (NopHelper) HooksDoSideEffects() bool { return true }

func (NopHelper) Init(exec emulator.Executor) {}

func (NopHelper) FirstExec(exec emulator.Executor) {}

func (NopHelper) PreExec(exec emulator.Executor, input []byte) {}

func (NopHelper) PostExec(exec emulator.Executor, input []byte, observers *observer.Set, exit *ExitKind) {
}
