package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus() string {
	return "(" + a.status.String() + ")"
}

// Root runs the command loop. The available commands depend on whether the
// session check (or a later login/logout) left the app authenticated.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the BrewClub CLI (type 'help' for commands)")

	for {
		fmt.Fprintf(a.out, "brew %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch cmd := parts[0]; cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(a.out, "Available commands: profile, avatar, setpic, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: login, signup, exit")
			}

		case "login":
			a.Login(ctx)

		case "signup":
			a.Signup(ctx)

		case "profile":
			a.Profile(ctx)

		case "avatar":
			a.Avatar(ctx)

		case "setpic":
			a.SetProfilePicture(ctx)

		case "logout":
			a.Logout(ctx)

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}
