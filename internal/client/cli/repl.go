package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	Upload(ctx context.Context, path string) error
	Matches(ctx context.Context, page int) error
	JobDetails(ctx context.Context, id string) error
	SaveJob(ctx context.Context, id string) error
	SavedJobs(ctx context.Context) error
	isLoggedIn() bool
}

// runREPL starts a simple read–eval–print loop for the SkillSync CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - profile        — show your profile
//	  - upload <path>  — validate and upload a resume
//	  - matches [page] — list matched jobs page by page
//	  - job <id>       — show a single job
//	  - save <id>      — bookmark a job
//	  - saved          — list bookmarked jobs
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("sync> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: profile, upload <path>, (m)atches [page], job <id>, save <id>, saved, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register", "signup":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "upload":
			if len(args) == 0 {
				printlnFn("Usage: upload <path-to-resume>")
				continue
			}
			_ = a.Upload(ctx, args[0])

		case "m", "matches":
			page := 1
			if len(args) > 0 {
				if n, err := parsePage(args[0]); err == nil {
					page = n
				} else {
					printlnFn("Usage: matches [page]")
					continue
				}
			}
			_ = a.Matches(ctx, page)

		case "job":
			if len(args) == 0 {
				printlnFn("Usage: job <id>")
				continue
			}
			_ = a.JobDetails(ctx, args[0])

		case "save":
			if len(args) == 0 {
				printlnFn("Usage: save <id>")
				continue
			}
			_ = a.SaveJob(ctx, args[0])

		case "saved":
			_ = a.SavedJobs(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
