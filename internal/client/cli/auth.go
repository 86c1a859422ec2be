package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for name, email and password and attempts to
// create a new account. On success the session is populated from the
// response; field-level validation failures are printed per field.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	env, err := a.api.Register(ctx, email, string(password), name)
	if err != nil {
		reportFailure(err)
		return err
	}
	if !env.Success {
		reportEnvelope(env.Message, env.Errors)
		return nil
	}

	a.session.SetUser(env.Data.User, env.Data.AccessToken)
	fmt.Println("Welcome,", env.Data.User.Name)
	return nil
}

// Login prompts the user for credentials and tries to authenticate.
// The underlying call resets the refresh coordinator first, so logging in
// always works even after a terminal session invalidation.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	env, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		reportFailure(err)
		return err
	}
	if !env.Success {
		reportEnvelope(env.Message, env.Errors)
		return nil
	}

	a.session.SetUser(env.Data.User, env.Data.AccessToken)
	log.Printf("Logged in as %s", env.Data.User.Email)
	a.syncSnapshots(ctx)
	return nil
}

// Logout ends the server-side session, clears the local identity and
// wipes cached snapshots.
func (a *App) Logout(ctx context.Context) error {
	if _, err := a.api.Logout(ctx); err != nil {
		reportFailure(err)
	}
	a.session.Clear()
	if err := a.cache.Clear(ctx); err != nil {
		log.Printf("error clearing snapshot cache: %v", err)
	}
	fmt.Println("Logged out.")
	return nil
}

// Me refreshes and prints the current identity.
func (a *App) Me(ctx context.Context) error {
	env, err := a.api.Me(ctx)
	if err != nil {
		reportFailure(err)
		return err
	}
	if !env.Success {
		reportEnvelope(env.Message, env.Errors)
		return nil
	}

	a.session.SetUser(env.Data.User, "")
	u := env.Data.User
	fmt.Printf("%s <%s> (since %s)\n", u.Name, u.Email, u.CreatedAt.Format("2006-01-02"))
	return nil
}
