package helper

// ExitKind classifies how a target run ended. PostExec hands every
// helper a mutable reference so a later helper may override the
// classification produced by an earlier one.
type ExitKind int

const (
	ExitOk ExitKind = iota
	ExitCrash
	ExitTimeout
	ExitOops
)

func (k ExitKind) String() string {
	switch k {
	case ExitOk:
		return "ok"
	case ExitCrash:
		return "crash"
	case ExitTimeout:
		return "timeout"
	case ExitOops:
		return "oops"
	}
	return "unknown"
}
