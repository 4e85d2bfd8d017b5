// internal/utils/scripted.go
package utils

// ScriptedRandom replays fixed sequences, cycling when exhausted. Empty
// sequences yield Fallback for floats and 0 for ints.
type ScriptedRandom struct {
	Floats   []float64
	Ints     []int
	Fallback float64
	fi, ii   int
}

// Float64 returns the next scripted float.
func (s *ScriptedRandom) Float64() float64 {
	if len(s.Floats) == 0 {
		return s.Fallback
	}
	v := s.Floats[s.fi%len(s.Floats)]
	s.fi++
	return v
}

// Intn returns the next scripted int reduced modulo n.
func (s *ScriptedRandom) Intn(n int) int {
	if len(s.Ints) == 0 || n <= 0 {
		return 0
	}
	v := s.Ints[s.ii%len(s.Ints)] % n
	s.ii++
	return v
}

// Constant returns a source whose floats are always v.
func Constant(v float64) *ScriptedRandom {
	return &ScriptedRandom{Fallback: v}
}
