package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/skillsync/skillsync/internal/client/models"
	"github.com/skillsync/skillsync/internal/client/routes"
	"github.com/skillsync/skillsync/internal/client/upload"
)

const progressInterval = 200 * time.Millisecond

// Upload validates and uploads a resume file, reporting progress as it goes.
// After a successful upload the cached profile picks up the fields the
// backend recomputed (extracted skills, the resume flag).
func (a *App) Upload(ctx context.Context, path string) error {
	return a.guarded(ctx, routes.UploadResume, func(ctx context.Context) error {
		candidate, err := upload.CandidateFromFile(path)
		if err != nil {
			printlnFn("Cannot read file:", err.Error())
			return nil
		}
		if err := upload.Validate(candidate); err != nil {
			printlnFn("File rejected:", err.Error())
			return nil
		}

		f, err := os.Open(path)
		if err != nil {
			printlnFn("Cannot open file:", err.Error())
			return nil
		}
		defer f.Close()

		progress := upload.StartProgress(progressInterval, func(pct int) {
			fmt.Fprintf(a.out, "\rUploading... %3d%%", pct)
		})

		res, err := a.client.UploadResume(ctx, candidate.Name, candidate.ContentType, f)
		progress.Stop(err == nil)
		fmt.Fprintln(a.out)

		if err != nil {
			printlnFn("Upload failed:", err.Error())
			return nil
		}

		if res.User != nil {
			if err := a.session.UpdateProfile(ctx, models.PatchFrom(res.User)); err != nil {
				printlnFn("Could not refresh profile:", err.Error())
			}
		}
		printlnFn("Resume uploaded")
		return nil
	})
}
