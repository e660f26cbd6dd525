package coverage

import (
	"slices"
	"sync"
	"unsafe"
)

// Span is one counter region contributed by an instrumented guest
// module. The memory belongs to that module; the registry only records
// where it is. Pointer validity is the contract of whoever compiled the
// instrumentation in, it is not checked here.
type Span struct {
	ptr *byte
	len int
}

func (s Span) Len() int {
	return s.len
}

func (s Span) Bytes() []byte {
	return unsafe.Slice(s.ptr, s.len)
}

// Registry is an append-only collection of counter spans. Registration
// happens while guest modules load, before the fuzzing loop starts;
// the mutex covers loaders that map modules from more than one
// goroutine.
type Registry struct {
	mu    sync.Mutex
	spans []Span
}

func NewRegistry() *Registry {
	return new(Registry)
}

func (r *Registry) Register(start, end unsafe.Pointer) {
	s := Span{ptr: (*byte)(start), len: int(uintptr(end) - uintptr(start))}
	r.mu.Lock()
	r.spans = append(r.spans, s)
	r.mu.Unlock()
}

// Spans returns the registered spans in registration order.
func (r *Registry) Spans() []Span {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.spans)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.spans)
}

// Counters is the process-wide registry populated through
// RegisterCounters.
var Counters = NewRegistry()

// RegisterCounters is the load-time entry point compiled into every
// instrumented guest translation unit. The signature is a stable ABI:
// start points at the first counter byte, end one past the last. Zero
// or more calls may arrive before the first input executes; the core
// never calls it itself.
func RegisterCounters(start, end unsafe.Pointer) {
	Counters.Register(start, end)
}
