// Package guard gates access to protected views. It is a pure function of
// the session's current state and keeps no state of its own.
package guard

import "github.com/skillsync/skillsync/internal/client/routes"

// Decision tells the caller how to proceed with a requested view.
type Decision int

const (
	// Allow renders the requested view.
	Allow Decision = iota
	// Redirect sends the user to login; Result.From carries the path to
	// come back to afterwards.
	Redirect
	// Loading shows a placeholder while the session is still bootstrapping.
	Loading
)

// Result is the guard's verdict for one navigation.
type Result struct {
	Decision Decision
	From     string
}

// Session is the slice of session state the guard consults.
type Session interface {
	Loading() bool
	IsAuthenticated() bool
}

// Evaluate decides whether the view at path may render for the given
// session state. Public paths always render.
func Evaluate(s Session, path string) Result {
	if !routes.IsProtected(path) {
		return Result{Decision: Allow}
	}
	if s.Loading() {
		return Result{Decision: Loading}
	}
	if !s.IsAuthenticated() {
		return Result{Decision: Redirect, From: path}
	}
	return Result{Decision: Allow}
}
