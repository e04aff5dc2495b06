package card

import "strconv"

// Stat is an optional card statistic. The zero value is absent, which is
// different from a present value of 0.
type Stat struct {
	value int
	set   bool
}

// StatOf returns a present Stat holding v.
func StatOf(v int) Stat {
	return Stat{value: v, set: true}
}

// Get returns the value and whether it is present.
func (s Stat) Get() (int, bool) {
	return s.value, s.set
}

// IsSet reports whether the stat is present.
func (s Stat) IsSet() bool {
	return s.set
}

// Value returns the stat value, or 0 when absent.
func (s Stat) Value() int {
	return s.value
}

// Within reports whether the stat is present and min <= value <= max.
func (s Stat) Within(min, max int) bool {
	return s.set && min <= s.value && s.value <= max
}

func (s Stat) String() string {
	if !s.set {
		return "-"
	}
	return strconv.Itoa(s.value)
}
