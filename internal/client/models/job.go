package models

// Job is a single opening returned by the matching backend.
type Job struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	Location    string  `json:"location"`
	Type        string  `json:"type"`
	Salary      string  `json:"salary"`
	PostedDate  string  `json:"posted_date"`
	Description string  `json:"description"`
	MatchScore  float64 `json:"match_score,omitempty"`
}

// JobPage is one page of matched jobs together with paging totals.
type JobPage struct {
	Jobs       []Job `json:"jobs"`
	TotalPages int   `json:"total_pages"`
	TotalJobs  int   `json:"total_jobs"`
}
