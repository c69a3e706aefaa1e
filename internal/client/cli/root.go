package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if p := a.profile(); p != nil {
		name := p.Name
		if name == "" {
			name = p.Email
		}
		return fmt.Sprintf("(%s)", name)
	}
	return "(anonymous)"
}

// Root runs the interactive command loop. It reads a line, parses the first
// token as the command and dispatches to handlers. The loop exits on EOF or
// when the user types "exit" or "quit". Handlers log their own errors so a
// failed command never terminates the loop.
func (a *App) Root(ctx context.Context) {

	fmt.Println("Welcome to CivicWatch CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("cw %s> ", a.getStatus())
		if !scanner.Scan() {
			break
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
				fmt.Println("Available commands: list [missing|lost-found|safety|civic] [query], show <id>, report, status <id> <st>, delete <id>, messages, profile, logout, exit")
			} else {
				fmt.Println("Available commands: register, login, list, show <id>, exit")
			}

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "l", "list":
			a.list(ctx, args)
		case "show":
			a.show(ctx, args)
		case "report":
			if !a.isLoggedIn() {
				fmt.Println("Log in to submit a report")
				continue
			}
			_ = a.report(ctx)
		case "status":
			a.status(ctx, args)
		case "delete":
			a.delete(ctx, args)
		case "messages":
			if !a.isLoggedIn() {
				fmt.Println("Log in to use messages")
				continue
			}
			a.messages(ctx, args)
		case "profile":
			_ = a.profileCmd(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}
