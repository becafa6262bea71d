package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/skillsync/skillsync/internal/client/models"
	"github.com/skillsync/skillsync/internal/logging"
)

// RESTClient implements Client over the backend's JSON API.
type RESTClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger

	// TokenSource yields the current bearer token, or "" when anonymous.
	// Wired to the session service after construction.
	TokenSource func() string
}

func NewRESTClient(baseURL string, httpClient *http.Client, log logging.Logger) *RESTClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &RESTClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		log:     log,
	}
}

// errBody is the error envelope the backend uses; Django-style handlers
// put the text in either "message" or "detail".
type errBody struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

func (c *RESTClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.TokenSource != nil {
		if tok := c.TokenSource(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}
	return req, nil
}

// do executes the request and decodes a 2xx body into out (when non-nil).
// Transport failures map to ErrUnavailable; non-2xx responses become an
// *Error with the body's message/detail or the given fallback.
func (c *RESTClient) do(req *http.Request, out any, fallback string) error {
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(req.Context(), "request failed", "method", req.Method, "path", req.URL.Path, "err", err)
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.normalizeError(resp, fallback)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", req.URL.Path, err)
	}
	return nil
}

func (c *RESTClient) normalizeError(resp *http.Response, fallback string) error {
	msg := fallback

	var eb errBody
	if err := json.NewDecoder(resp.Body).Decode(&eb); err == nil {
		switch {
		case eb.Message != "":
			msg = eb.Message
		case eb.Detail != "":
			msg = eb.Detail
		}
	}

	return &Error{Status: resp.StatusCode, Message: msg}
}

func (c *RESTClient) postJSON(ctx context.Context, path string, in, out any, fallback string) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", path, err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out, fallback)
}

func (c *RESTClient) getJSON(ctx context.Context, path string, out any, fallback string) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out, fallback)
}

func (c *RESTClient) SignUp(ctx context.Context, u NewUser) error {
	return c.postJSON(ctx, "/resume/auth/signup/", u, nil, "Registration failed")
}

func (c *RESTClient) SignIn(ctx context.Context, creds Credentials) (*SignInResult, error) {
	var res SignInResult
	if err := c.postJSON(ctx, "/resume/auth/signin/", creds, &res, "Login failed"); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *RESTClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.getJSON(ctx, "/resume/profile/", &u, "Failed to fetch user profile"); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *RESTClient) ValidateToken(ctx context.Context) error {
	return c.getJSON(ctx, "/resume/auth/validate-token/", nil, "Token validation failed")
}

func (c *RESTClient) UploadResume(ctx context.Context, filename, contentType string, r io.Reader) (*UploadResult, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="resume"; filename=%q`, filename))
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return nil, fmt.Errorf("create multipart: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("read resume: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close multipart: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/resume/upload/", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var res UploadResult
	if err := c.do(req, &res, "Resume upload failed"); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *RESTClient) MatchingJobs(ctx context.Context, page, size int) (*models.JobPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))

	var jp models.JobPage
	if err := c.getJSON(ctx, "/resume/match-jobs/?"+q.Encode(), &jp, "Failed to fetch matching jobs"); err != nil {
		return nil, err
	}
	return &jp, nil
}

func (c *RESTClient) Job(ctx context.Context, jobID string) (*models.Job, error) {
	var j models.Job
	if err := c.getJSON(ctx, "/resume/job/"+url.PathEscape(jobID)+"/", &j, "Failed to fetch job details"); err != nil {
		return nil, err
	}
	return &j, nil
}

func (c *RESTClient) SaveJob(ctx context.Context, jobID string) error {
	in := struct {
		JobID string `json:"job_id"`
	}{JobID: jobID}
	return c.postJSON(ctx, "/resume/save-job/", in, nil, "Failed to save job")
}

func (c *RESTClient) SavedJobs(ctx context.Context) ([]models.Job, error) {
	var res struct {
		Jobs []models.Job `json:"jobs"`
	}
	if err := c.getJSON(ctx, "/resume/saved-jobs/", &res, "Failed to fetch saved jobs"); err != nil {
		return nil, err
	}
	return res.Jobs, nil
}
