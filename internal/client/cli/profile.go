package cli

import (
	"context"
	"strings"

	"github.com/skillsync/skillsync/internal/client/models"
	"github.com/skillsync/skillsync/internal/client/routes"
)

// Profile shows the user's profile. It fetches the latest copy from the
// backend and folds it into the cached session; if the fetch fails, the
// cached profile from the last successful run is shown instead.
func (a *App) Profile(ctx context.Context) error {
	return a.guarded(ctx, routes.Profile, func(ctx context.Context) error {
		fresh, err := a.client.CurrentUser(ctx)
		if err == nil && fresh != nil {
			if err := a.session.UpdateProfile(ctx, models.PatchFrom(fresh)); err != nil {
				printlnFn("Could not refresh profile:", err.Error())
			}
		}

		u := a.session.CurrentUser()
		if u == nil {
			printlnFn("No profile available")
			return nil
		}

		printlnFn("Name: ", u.Name)
		printlnFn("Email:", u.Email)
		printlnFn("Role: ", u.RoleName())
		if len(u.Skills) > 0 {
			printlnFn("Skills:", strings.Join(u.Skills, ", "))
		}
		if u.ResumeUploaded {
			printlnFn("Resume: uploaded")
		} else {
			printlnFn("Resume: not uploaded yet")
		}
		return nil
	})
}
