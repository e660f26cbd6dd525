package observer

// Observer is a fitness surface filled during post-execution and read by
// the fuzzing engine. Interpretation of its contents is the engine's
// concern; this package only carries them between helpers and the engine.
type Observer interface {
	Name() string
	Reset()
}

// Set is the ordered observer collection shared by every helper of a
// campaign. Helpers may both read observers added by earlier helpers and
// mutate their own within the same post-execution pass.
type Set struct {
	list []Observer
}

func NewSet(observers ...Observer) *Set {
	return &Set{list: observers}
}

func (s *Set) Add(o Observer) {
	s.list = append(s.list, o)
}

func (s *Set) Find(name string) (Observer, bool) {
	for _, o := range s.list {
		if o.Name() == name {
			return o, true
		}
	}
	return nil, false
}

func (s *Set) Len() int {
	return len(s.list)
}

func (s *Set) All(yield func(Observer) bool) {
	for _, o := range s.list {
		if !yield(o) {
			return
		}
	}
}

func (s *Set) Reset() {
	for _, o := range s.list {
		o.Reset()
	}
}
