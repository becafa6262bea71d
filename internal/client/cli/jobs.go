package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/skillsync/skillsync/internal/client/models"
	"github.com/skillsync/skillsync/internal/client/routes"
	"github.com/skillsync/skillsync/internal/pagex"
)

// Matches shows one page of matched jobs with a pagination bar underneath.
func (a *App) Matches(ctx context.Context, page int) error {
	return a.guarded(ctx, routes.JobMatches, func(ctx context.Context) error {
		result, err := a.client.MatchingJobs(ctx, page, a.config.PageSize)
		if err != nil {
			printlnFn("Could not load matches:", err.Error())
			return nil
		}
		if result.TotalJobs == 0 {
			printlnFn("No matching jobs yet. Upload a resume to get matched.")
			return nil
		}
		if page > result.TotalPages {
			page = result.TotalPages
		}

		for _, j := range result.Jobs {
			printlnFn(formatJobLine(&j))
		}
		printlnFn(pagex.FormatRange(page, a.config.PageSize, result.TotalJobs))
		printlnFn(formatPagination(page, result.TotalPages))
		return nil
	})
}

// JobDetails shows a single job.
func (a *App) JobDetails(ctx context.Context, id string) error {
	return a.guarded(ctx, routes.JobPath(id), func(ctx context.Context) error {
		job, err := a.client.Job(ctx, id)
		if err != nil {
			printlnFn("Could not load job:", err.Error())
			return nil
		}
		printlnFn(formatJobLine(job))
		if job.Salary != "" {
			printlnFn("Salary:", job.Salary)
		}
		if job.PostedDate != "" {
			printlnFn("Posted:", job.PostedDate)
		}
		if job.Description != "" {
			printlnFn(job.Description)
		}
		return nil
	})
}

// SaveJob bookmarks a job for later.
func (a *App) SaveJob(ctx context.Context, id string) error {
	return a.guarded(ctx, routes.JobMatches, func(ctx context.Context) error {
		if err := a.client.SaveJob(ctx, id); err != nil {
			printlnFn("Could not save job:", err.Error())
			return nil
		}
		printlnFn("Saved job", id)
		return nil
	})
}

// SavedJobs lists the user's bookmarked jobs.
func (a *App) SavedJobs(ctx context.Context) error {
	return a.guarded(ctx, routes.SavedJobs, func(ctx context.Context) error {
		jobs, err := a.client.SavedJobs(ctx)
		if err != nil {
			printlnFn("Could not load saved jobs:", err.Error())
			return nil
		}
		if len(jobs) == 0 {
			printlnFn("No saved jobs yet")
			return nil
		}
		for _, j := range jobs {
			printlnFn(formatJobLine(&j))
		}
		return nil
	})
}

func formatJobLine(j *models.Job) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s — %s", j.ID, j.Title, j.Company)
	if j.Location != "" {
		fmt.Fprintf(&b, " (%s", j.Location)
		if j.Type != "" {
			fmt.Fprintf(&b, ", %s", j.Type)
		}
		b.WriteString(")")
	}
	if j.MatchScore > 0 {
		fmt.Fprintf(&b, " — %.0f%% match", j.MatchScore)
	}
	return b.String()
}

// formatPagination renders the page window the same way the pagination bar
// does on screen: "1 2 [3] 4 5 ... 20".
func formatPagination(current, total int) string {
	items := pagex.Window(current, total, pagex.DefaultSiblings)
	parts := make([]string, 0, len(items))
	for _, it := range items {
		switch {
		case it == pagex.Ellipsis:
			parts = append(parts, "...")
		case it == current:
			parts = append(parts, fmt.Sprintf("[%d]", it))
		default:
			parts = append(parts, fmt.Sprintf("%d", it))
		}
	}
	return strings.Join(parts, " ")
}
