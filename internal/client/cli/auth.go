package cli

import (
	"context"
	"fmt"
	"os"
	"time"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// SignUp prompts for an email and password and creates a new account. The
// user still has to login afterwards; account creation does not issue a
// token.
func (a *App) SignUp(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	if err := a.auth.SignUp(ctx, email, password); err != nil {
		printlnFn("Sign up failed:", err)
		return err
	}

	printlnFn("Account created. Use 'login' to sign in with a one-time code.")
	return nil
}

// Login runs the OTP flow: request a code for the given email, then prompt
// until the user enters a valid code, asks for a resend, or gives up with an
// empty line. Resending is rate-limited by the configured interval.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.RequestCode(ctx, email); err != nil {
		printlnFn("Could not send a code:", err)
		return err
	}
	a.resend.Arm()
	printlnFn("A one-time code was sent to", email)

	for {
		code, err := getSimpleText(a.reader, "Enter the code ('r' to resend, empty line to cancel)", os.Stdout)
		if err != nil {
			return err
		}

		switch code {
		case "":
			printlnFn("Login cancelled")
			return nil

		case "r":
			if !a.resend.CanResend() {
				printlnFn(fmt.Sprintf("Please wait %s before resending", a.resend.Remaining().Round(time.Second)))
				continue
			}
			if err := a.auth.RequestCode(ctx, email); err != nil {
				printlnFn("Could not resend the code:", err)
				continue
			}
			a.resend.Arm()
			printlnFn("A new code was sent to", email)

		default:
			s, err := a.auth.VerifyCode(ctx, email, code)
			if err != nil {
				printlnFn("Login failed:", err)
				continue
			}
			a.session = &s
			printlnFn("Logged in as", s.Email)
			return nil
		}
	}
}

// Link signs in with a pasted magic link. When the URL was not given as a
// command argument the user is prompted for it.
func (a *App) Link(ctx context.Context, rawURL string) error {
	if rawURL == "" {
		var err error
		rawURL, err = getSimpleText(a.reader, "Paste the magic link", os.Stdout)
		if err != nil {
			return err
		}
	}

	s, err := a.auth.RedeemMagicLink(ctx, rawURL)
	if err != nil {
		printlnFn("Login failed:", err)
		return err
	}
	a.session = &s
	printlnFn("Logged in as", s.Email)
	return nil
}

// Logout clears the cached session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		printlnFn("Logout failed:", err)
		return err
	}
	a.session = nil
	printlnFn("Logged out")
	return nil
}
