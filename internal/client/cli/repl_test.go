package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string
	pages []int
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Profile(ctx context.Context) error {
	f.calls = append(f.calls, "profile")
	return nil
}
func (f *fakeExec) Upload(ctx context.Context, path string) error {
	f.calls = append(f.calls, "upload")
	f.args = append(f.args, path)
	return nil
}
func (f *fakeExec) Matches(ctx context.Context, page int) error {
	f.calls = append(f.calls, "matches")
	f.pages = append(f.pages, page)
	return nil
}
func (f *fakeExec) JobDetails(ctx context.Context, id string) error {
	f.calls = append(f.calls, "job")
	f.args = append(f.args, id)
	return nil
}
func (f *fakeExec) SaveJob(ctx context.Context, id string) error {
	f.calls = append(f.calls, "save")
	f.args = append(f.args, id)
	return nil
}
func (f *fakeExec) SavedJobs(ctx context.Context) error {
	f.calls = append(f.calls, "saved")
	return nil
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"profile",
		"upload resume.pdf",
		"matches",
		"matches 3",
		"job 42",
		"save 42",
		"saved",
		"foobar",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	want := []string{"login", "profile", "upload", "matches", "matches", "job", "save", "saved", "logout"}
	require.Equal(t, want, exec.calls)
	assert.Equal(t, []string{"resume.pdf", "42", "42"}, exec.args)
	assert.Equal(t, []int{1, 3}, exec.pages)
}

func TestRunREPL_MissingArguments(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"upload",
		"job",
		"save",
		"matches abc",
		"quit",
	}, "\n"))

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	assert.Empty(t, exec.calls)
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("")))

	assert.Empty(t, exec.calls)
}

func TestRunREPL_SignupAlias(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{}
	input := strings.NewReader("signup\nexit\n")
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	assert.Equal(t, []string{"register"}, exec.calls)
}
