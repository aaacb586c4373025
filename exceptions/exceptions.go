// Package exceptions shows how Go replaces try/catch/finally: errors are
// values returned alongside results, defer runs cleanup, and recover turns
// a panic back into an error at a function boundary.
package exceptions

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/marcodamonte/langtour/internal/catalog"
)

var (
	ErrDivideByZero = errors.New("attempted to divide by zero")
	ErrNilReference = errors.New("object reference not set to an instance")
)

// ArgumentError reports an invalid argument, carrying its name.
type ArgumentError struct {
	Param   string
	Message string
}

func (e *ArgumentError) Error() string { return e.Message }

func Demos() []catalog.Demo {
	return []catalog.Demo{
		{Name: "exceptions", Topic: "exceptions", Title: "Errors, panics and defer", Run: demoExceptions},
	}
}

// Divide returns ErrDivideByZero instead of letting the runtime panic.
func Divide(x, y int) (int, error) {
	if y == 0 {
		return 0, fmt.Errorf("divide %d by %d: %w", x, y, ErrDivideByZero)
	}
	return x / y, nil
}

// Recover runs fn and converts any panic into an error. Runtime errors
// from nil dereferences are mapped onto ErrNilReference.
func Recover(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		var re runtime.Error
		if e, ok := r.(error); ok && errors.As(e, &re) && strings.Contains(re.Error(), "nil pointer dereference") {
			err = fmt.Errorf("%w: %v", ErrNilReference, re)
			return
		}
		err = fmt.Errorf("recovered: %v", r)
	}()
	fn()
	return nil
}

// ValidateAge rejects ages below 18 with an *ArgumentError.
func ValidateAge(age int) error {
	if age < 18 {
		return &ArgumentError{Param: "age", Message: "Age must be at least 18."}
	}
	return nil
}

// Risky runs step with a deferred cleanup. The cleanup runs whether step
// fails, succeeds or panics; a panic is surfaced as an error.
func Risky(env *catalog.Env, step func() error) (err error) {
	defer env.Println("  Finally block always runs.")
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("risky: %v", r)
		}
	}()
	return step()
}

type person struct{ Name string }

func nameLen(p *person) int { return len(p.Name) }

func demoExceptions(_ context.Context, env *catalog.Env) error {
	// returned error instead of a thrown exception
	if _, err := Divide(10, 0); err != nil {
		env.Println("  Caught error:", err)
		env.Printf("  errors.Is(err, ErrDivideByZero): %v\n", errors.Is(err, ErrDivideByZero))
	}

	// runtime panic converted back into an error
	err := Recover(func() {
		var p *person
		env.Println("  name length:", nameLen(p))
	})
	switch {
	case errors.Is(err, ErrNilReference):
		env.Println("  Caught nil reference:", ErrNilReference)
	case err != nil:
		env.Println("  Caught general panic:", err)
	}

	// defer as finally
	_ = Risky(env, func() error {
		env.Println("  Trying something risky...")
		return nil
	})
	if err := Risky(env, func() error { panic("boom") }); err != nil {
		env.Println("  Something went wrong:", err)
	}

	// custom error type
	if err := ValidateAge(15); err != nil {
		var argErr *ArgumentError
		if errors.As(fmt.Errorf("register: %w", err), &argErr) {
			env.Printf("  Custom error (%s): %s\n", argErr.Param, argErr.Message)
		}
	}
	if ValidateAge(21) == nil {
		env.Println("  Age is valid.")
	}

	// several independent failures reported together
	joined := errors.Join(ValidateAge(3), func() error { _, err := Divide(1, 0); return err }())
	env.Println("  joined errors:")
	env.Println(indent(joined.Error()))
	env.Printf("  joined Is(ErrDivideByZero): %v\n", errors.Is(joined, ErrDivideByZero))
	return nil
}

func indent(s string) string {
	return "    " + strings.ReplaceAll(s, "\n", "\n    ")
}
