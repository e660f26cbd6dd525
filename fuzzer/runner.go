package fuzzer

import (
	"errors"

	"go.uber.org/zap"

	"github.com/wnxd/microfuzz/emulator"
	"github.com/wnxd/microfuzz/helper"
	"github.com/wnxd/microfuzz/observer"
)

type Config struct {
	// Entry and Until bound one target run.
	Entry, Until uint64
	// InputAddr is where the default placement writes each input.
	InputAddr uint64
	// InputSize caps the bytes placed; longer inputs are truncated.
	InputSize uint64
	// PlaceInput overrides the default placement when set.
	PlaceInput func(exec emulator.Executor, input []byte) error
	Logger     *zap.Logger
}

// Runner drives one executor with one helper chain through the
// lifecycle contract: Init once at construction, FirstExec once before
// the first run, then PreExec / target run / PostExec per input. A
// runner owns all of its mutable state; independent workers use
// independent runners.
type Runner struct {
	exec      emulator.Executor
	helpers   helper.Chain
	observers *observer.Set
	config    Config
	log       *zap.Logger
	firstDone bool
	mapped    bool
}

func NewRunner(exec emulator.Executor, helpers helper.Chain, observers *observer.Set, config Config) *Runner {
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}
	r := &Runner{
		exec:      exec,
		helpers:   helpers,
		observers: observers,
		config:    config,
		log:       log,
	}
	r.helpers.Init(exec)
	log.Info("campaign initialized",
		zap.Int("helpers", len(helpers)),
		zap.Bool("side_effects", helpers.HooksDoSideEffects()))
	return r
}

func (r *Runner) Observers() *observer.Set {
	return r.observers
}

// Run executes one input. The returned error covers infrastructure
// failures only (input placement); target crashes and timeouts come
// back through the ExitKind.
func (r *Runner) Run(input []byte) (helper.ExitKind, error) {
	if !r.firstDone {
		r.helpers.FirstExec(r.exec)
		r.firstDone = true
	}
	r.helpers.PreExec(r.exec, input)
	if err := r.placeInput(input); err != nil {
		return helper.ExitOk, err
	}
	exit := helper.ExitOk
	err := r.exec.Start(r.config.Entry, r.config.Until)
	switch {
	case err == nil:
	case errors.Is(err, emulator.ErrExecutorStop):
		exit = helper.ExitTimeout
	default:
		exit = helper.ExitCrash
	}
	r.helpers.PostExec(r.exec, input, r.observers, &exit)
	if exit != helper.ExitOk {
		r.log.Debug("execution finished", zap.Stringer("exit", exit), zap.Int("input_len", len(input)))
	}
	return exit, nil
}

func (r *Runner) Close() error {
	return r.exec.Close()
}

func (r *Runner) placeInput(input []byte) error {
	if r.config.PlaceInput != nil {
		return r.config.PlaceInput(r.exec, input)
	}
	if max := r.config.InputSize; max != 0 && uint64(len(input)) > max {
		input = input[:max]
	}
	if !r.mapped {
		size := r.config.InputSize
		if size == 0 {
			size = uint64(len(input))
		}
		page := r.exec.PageSize()
		addr := emulator.PageOf(r.config.InputAddr, page)
		size = emulator.Align(r.config.InputAddr+size-addr, page)
		if err := r.exec.MemMap(addr, size, emulator.MEM_PROT_READ|emulator.MEM_PROT_WRITE); err != nil {
			return err
		}
		r.mapped = true
	}
	return emulator.ToPointer(r.exec, r.config.InputAddr).MemWrite(input)
}
