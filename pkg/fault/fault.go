package fault

import (
	"errors"
	"net/http"
	"strings"
)

type Kind string

const (
	KindValidation Kind = "validation"
	KindDependency Kind = "dependency"
	KindParse      Kind = "parse"
	KindRender     Kind = "render"
)

// Error is a stage failure tagged with the kind of fault that caused it.
type Error struct {
	Kind Kind
	Op   string

	// Problems lists every issue found when validating a request.
	Problems []string

	Err error
}

func (e *Error) Error() string {
	var message string

	switch {
	case e.Err != nil:
		message = e.Err.Error()

	case len(e.Problems) > 0:
		message = strings.Join(e.Problems, "; ")

	default:
		message = string(e.Kind) + " error"
	}

	if e.Op == "" {
		return message
	}

	return e.Op + ": " + message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(op string, problems ...string) error {
	return &Error{
		Kind: KindValidation,
		Op:   op,

		Problems: problems,
	}
}

func Dependency(op string, err error) error {
	return wrap(KindDependency, op, err)
}

func Parse(op string, err error) error {
	return wrap(KindParse, op, err)
}

func Render(op string, err error) error {
	return wrap(KindRender, op, err)
}

func wrap(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}

	var e *Error

	if errors.As(err, &e) {
		return err
	}

	return &Error{
		Kind: kind,
		Op:   op,

		Err: err,
	}
}

// KindOf reports the kind of the first tagged error in err's chain.
// Untagged errors count as dependency failures.
func KindOf(err error) Kind {
	var e *Error

	if errors.As(err, &e) {
		return e.Kind
	}

	return KindDependency
}

func Status(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if KindOf(err) == KindValidation {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
