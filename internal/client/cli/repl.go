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
	isLoggedIn() bool
	SignUp(ctx context.Context) error
	Login(ctx context.Context) error
	Link(ctx context.Context, rawURL string) error
	Wizard(ctx context.Context) error
	Notifications(ctx context.Context) error
	Application(ctx context.Context, id string) error
	Subscription(ctx context.Context) error
	Overview(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the jobpilot CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("jp> %s ", statusFn()))
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
				printlnFn("Available commands: wizard, notifications, application <id>, subscription, overview, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, link <url>, exit")
			}

		case "signup":
			_ = a.SignUp(ctx)

		case "login":
			_ = a.Login(ctx)

		case "link":
			rawURL := ""
			if len(args) > 0 {
				rawURL = args[0]
			}
			_ = a.Link(ctx, rawURL)

		case "wizard":
			_ = a.Wizard(ctx)

		case "notifications":
			_ = a.Notifications(ctx)

		case "application":
			if len(args) == 0 {
				printlnFn("Usage: application <id>")
				continue
			}
			_ = a.Application(ctx, args[0])

		case "subscription":
			_ = a.Subscription(ctx)

		case "overview":
			_ = a.Overview(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
