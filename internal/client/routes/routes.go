// Package routes defines the navigable surface of the client and which
// parts of it require an authenticated session.
package routes

import "strings"

const (
	Home         = "/"
	Login        = "/login"
	Signup       = "/signup"
	UploadResume = "/upload-resume"
	Profile      = "/profile"
	JobMatches   = "/job-matches"
	JobDetails   = "/job"
	SavedJobs    = "/saved-jobs"
)

var protected = map[string]struct{}{
	UploadResume: {},
	Profile:      {},
	JobMatches:   {},
	JobDetails:   {},
	SavedJobs:    {},
}

// IsProtected reports whether the path requires an authenticated session.
// Job detail paths carry an id segment ("/job/42") and match by prefix.
func IsProtected(path string) bool {
	if _, ok := protected[path]; ok {
		return true
	}
	return strings.HasPrefix(path, JobDetails+"/")
}

// JobPath builds the detail path for a single job.
func JobPath(id string) string {
	return JobDetails + "/" + id
}
