package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/demomarket/internal/common"
)

var errNotLoggedIn = errors.New("please log in first")

// Signup prompts for a name, an email and a password and creates an
// account. It does not log the new user in.
//
// The password byte slice is wiped before returning. Any I/O or service
// error is returned unchanged.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.market.Identity.Signup(ctx, name, email, password)
	if err != nil {
		return err
	}

	a.printf("Account %s created, you can log in now\n", u.Email)
	return nil
}

// Login prompts for credentials and opens a session. A previous session,
// if any, is replaced.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.market.Identity.Login(ctx, email, password)
	if err != nil {
		return err
	}

	a.user = u
	a.printf("Welcome, %s!\n", u.Name)
	return nil
}

// Logout ends the session. The cart is kept.
func (a *App) Logout(ctx context.Context) error {
	if err := a.market.Identity.Logout(ctx); err != nil {
		return err
	}
	a.user = nil
	a.printf("Logged out\n")
	return nil
}

// WhoAmI re-reads the session and prints the user it points to.
func (a *App) WhoAmI(ctx context.Context) error {
	if err := a.refreshUser(ctx); err != nil {
		return err
	}
	if a.user == nil {
		return errNotLoggedIn
	}
	a.printf("%s <%s> id=%s since %s\n", a.user.Name, a.user.Email, a.user.ID, a.user.CreatedAt.Format("2006-01-02"))
	return nil
}

// requireUser returns the logged-in user or errNotLoggedIn.
func (a *App) requireUser() (string, error) {
	if a.user == nil {
		return "", errNotLoggedIn
	}
	return a.user.ID, nil
}
