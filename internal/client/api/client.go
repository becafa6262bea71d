// Package api talks to the SkillSync backend: account signup/signin, profile
// and token checks, resume upload, and the job-matching endpoints. Failures
// are normalized so the UI can show a single message per operation.
package api

import (
	"context"
	"io"

	"github.com/skillsync/skillsync/internal/client/models"
)

// Credentials identify an existing account for sign-in.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NewUser is the signup payload.
type NewUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInResult is the token+user pair the backend returns on login.
type SignInResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// UploadResult acknowledges a stored resume. User, when present, is the
// refreshed profile (skills extracted, resume_uploaded set).
type UploadResult struct {
	User *models.User `json:"user,omitempty"`
}

// Client is the backend surface consumed by the session service and views.
type Client interface {
	// SignUp creates an account. It does not authenticate the caller;
	// a nil error only means the account now exists server-side.
	SignUp(ctx context.Context, u NewUser) error

	// SignIn exchanges credentials for a bearer token and the user record.
	SignIn(ctx context.Context, c Credentials) (*SignInResult, error)

	// CurrentUser fetches the profile of the token's owner.
	CurrentUser(ctx context.Context) (*models.User, error)

	// ValidateToken asks the backend whether the attached token is still good.
	ValidateToken(ctx context.Context) error

	// UploadResume streams a resume as multipart form data.
	UploadResume(ctx context.Context, filename, contentType string, r io.Reader) (*UploadResult, error)

	// MatchingJobs returns one page of jobs matched against the resume.
	MatchingJobs(ctx context.Context, page, size int) (*models.JobPage, error)

	// Job fetches a single opening by id.
	Job(ctx context.Context, jobID string) (*models.Job, error)

	// SaveJob bookmarks an opening for later.
	SaveJob(ctx context.Context, jobID string) error

	// SavedJobs lists bookmarked openings.
	SavedJobs(ctx context.Context) ([]models.Job, error)
}
