package cli

import (
	"bufio"
	"context"
	"os"
	"strconv"

	"github.com/skillsync/skillsync/internal/client/guard"
)

// Root runs the interactive loop reading commands from stdin.
func (a *App) Root(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// getStatus renders the prompt suffix: the current user's email when
// authenticated, otherwise an anonymous marker.
func (a *App) getStatus() string {
	if a.session.Loading() {
		return "(...)"
	}
	if u := a.session.CurrentUser(); u != nil {
		return "(" + u.Email + ")"
	}
	return "(anonymous)"
}

// guarded runs view only if the route guard allows access to path.
// While the session is still restoring it asks the user to retry; when the
// guard redirects to the login page it runs the login flow and, on success,
// re-runs the originally requested view.
func (a *App) guarded(ctx context.Context, path string, view func(context.Context) error) error {
	switch res := guard.Evaluate(a.session, path); res.Decision {
	case guard.Loading:
		printlnFn("Session is still loading, try again in a moment")
		return nil
	case guard.Redirect:
		printlnFn("You need to log in first")
		if err := a.Login(ctx); err != nil {
			return err
		}
		if !a.session.IsAuthenticated() {
			return nil
		}
		return view(ctx)
	default:
		return view(ctx)
	}
}

func parsePage(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return n, nil
}
