package aiparse

// ResultKind distinguishes a clean structured parse of a model response from a
// best-effort degraded interpretation, so callers can tell "the model gave us
// a clean answer" apart from "we guessed".
type ResultKind int

const (
	KindStructured ResultKind = iota
	KindDegraded
)

func (k ResultKind) String() string {
	if k == KindStructured {
		return "structured"
	}
	return "degraded"
}
