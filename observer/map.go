package observer

// MapObserver exposes a byte map where each cell counts hits of one
// coverage point during the last execution.
type MapObserver struct {
	name string
	data []byte
}

func NewMapObserver(name string, size int) *MapObserver {
	return &MapObserver{name: name, data: make([]byte, size)}
}

func (o *MapObserver) Name() string {
	return o.name
}

func (o *MapObserver) Map() []byte {
	return o.data
}

func (o *MapObserver) Reset() {
	clear(o.data)
}

// Fill replaces the map contents with a copy of m.
func (o *MapObserver) Fill(m []byte) {
	if len(o.data) != len(m) {
		o.data = make([]byte, len(m))
	}
	copy(o.data, m)
}

// CountNonZero reports how many cells were hit at least once.
func (o *MapObserver) CountNonZero() int {
	var n int
	for _, v := range o.data {
		if v != 0 {
			n++
		}
	}
	return n
}
