// Package calcerr holds the error kinds returned by validators and calculators.
package calcerr

import "fmt"

type Kind int

const (
	KindValidation Kind = iota + 1
	KindInvalidCombination
	KindDivision
	KindGradeNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindInvalidCombination:
		return "invalid_combination"
	case KindDivision:
		return "division"
	case KindGradeNotFound:
		return "grade_not_found"
	default:
		return "unknown"
	}
}

// Error is a deterministic input failure. Field is empty when the failure is
// not tied to a single input.
type Error struct {
	Kind   Kind
	Field  string
	Reason string
}

func (e *Error) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Is matches on kind only, so the sentinels below work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Field == "" && t.Reason == ""
}

var (
	ErrValidation         = &Error{Kind: KindValidation}
	ErrInvalidCombination = &Error{Kind: KindInvalidCombination}
	ErrDivision           = &Error{Kind: KindDivision}
	ErrGradeNotFound      = &Error{Kind: KindGradeNotFound}
)

func Validation(field, format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Field: field, Reason: fmt.Sprintf(format, args...)}
}

func InvalidCombination(field, format string, args ...any) *Error {
	return &Error{Kind: KindInvalidCombination, Field: field, Reason: fmt.Sprintf(format, args...)}
}

func Division(field, format string, args ...any) *Error {
	return &Error{Kind: KindDivision, Field: field, Reason: fmt.Sprintf(format, args...)}
}

func GradeNotFound(grade string) *Error {
	return &Error{Kind: KindGradeNotFound, Field: "grade", Reason: fmt.Sprintf("grade %q not found", grade)}
}
