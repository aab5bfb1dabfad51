package services

import "fmt"

// SideEffect records a best-effort operation that failed after the primary
// operation committed. Callers decide whether to surface it; it never rolls
// the primary operation back.
type SideEffect struct {
	Name string
	Err  error
}

type SideEffects []SideEffect

func (s SideEffects) Failed() bool { return len(s) > 0 }

// Summary renders a short human-readable list of the failed side effects.
func (s SideEffects) Summary() string {
	if len(s) == 0 {
		return ""
	}
	out := ""
	for i, e := range s {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s: %v", e.Name, e.Err)
	}
	return out
}
