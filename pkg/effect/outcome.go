package effect

import "fmt"

type outcomeKind uint8

const (
	outcomeSuccess outcomeKind = iota
	outcomeFailure
	outcomeDefect
)

// Outcome is the tri-state result of running a Computation. Exactly one arm
// is populated: a success value, a typed failure, or a defect. Merging both
// failure modes into one value lets a single completion watcher dispatch to
// the right handler without losing the distinction between them.
type Outcome[E error, A any] struct {
	kind    outcomeKind
	value   A
	failure E
	defect  error
}

// Succeed constructs a successful Outcome carrying value.
func Succeed[E error, A any](value A) Outcome[E, A] {
	return Outcome[E, A]{kind: outcomeSuccess, value: value}
}

// FailWith constructs an Outcome carrying the typed failure err.
func FailWith[A any, E error](err E) Outcome[E, A] {
	return Outcome[E, A]{kind: outcomeFailure, failure: err}
}

// Die constructs an Outcome carrying the defect cause.
func Die[E error, A any](cause error) Outcome[E, A] {
	return Outcome[E, A]{kind: outcomeDefect, defect: cause}
}

// IsSuccess reports whether the success arm is populated.
func (o Outcome[E, A]) IsSuccess() bool { return o.kind == outcomeSuccess }

// IsFailure reports whether the typed-failure arm is populated.
func (o Outcome[E, A]) IsFailure() bool { return o.kind == outcomeFailure }

// IsDefect reports whether the defect arm is populated.
func (o Outcome[E, A]) IsDefect() bool { return o.kind == outcomeDefect }

// Value returns the success value and whether the success arm is populated.
func (o Outcome[E, A]) Value() (A, bool) { return o.value, o.kind == outcomeSuccess }

// Failure returns the typed failure and whether the failure arm is populated.
func (o Outcome[E, A]) Failure() (E, bool) { return o.failure, o.kind == outcomeFailure }

// Defect returns the defect cause and whether the defect arm is populated.
func (o Outcome[E, A]) Defect() (error, bool) { return o.defect, o.kind == outcomeDefect }

func (o Outcome[E, A]) String() string {
	switch o.kind {
	case outcomeFailure:
		return fmt.Sprintf("Failure(%v)", o.failure)
	case outcomeDefect:
		return fmt.Sprintf("Defect(%v)", o.defect)
	default:
		return fmt.Sprintf("Success(%v)", o.value)
	}
}
