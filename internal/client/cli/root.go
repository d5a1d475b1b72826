package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/SaraBabic/PayTrackApp/internal/client/services"
)

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.user.Username)
}

// Root runs the main command loop. On start it tries to restore a persisted
// session; every screen is reachable from here and returns here when done.
func (a *App) Root(ctx context.Context) {

	a.println("Welcome to PayTrack CLI (type 'help' for commands)")

	user, err := a.auth.Restore(ctx)
	if err == nil {
		a.user = user
		a.log.Info(ctx, "session restored", "user", user.Username)
	} else if !errors.Is(err, services.ErrNoSession) {
		a.log.Warn(ctx, "session restore failed", "err", err)
	}

	scanner := bufio.NewScanner(os.Stdin)

	for {
		a.printf("pt %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]

		switch cmd {
		case "help":
			a.println("Available commands: home, incomes, addincome, customers, currencies, profile, login, register, logout, exit")

		case "home":
			a.Overview(ctx)
		case "incomes":
			a.ManageIncomes(ctx)
		case "addincome":
			a.CreateIncome(ctx)
		case "customers":
			a.ManageCustomers(ctx)
		case "currencies":
			a.ManageCurrencies(ctx)
		case "profile":
			a.Profile(ctx)
		case "login":
			a.Login(ctx)
		case "register":
			a.Register(ctx)
		case "logout":
			a.Logout(ctx)
		case "exit", "quit":
			a.println("Bye!")
			return
		default:
			a.println("Unknown command:", cmd)
		}
	}
}
