package cli

import (
	"context"
	"fmt"
)

// Notifications prints the notification feed, newest first as the server
// returns it.
func (a *App) Notifications(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	ns, err := a.account.Notifications(ctx)
	if err != nil {
		printlnFn("Error:", err)
		return err
	}
	if len(ns) == 0 {
		printlnFn("No notifications")
		return nil
	}

	for _, n := range ns {
		marker := " "
		if !n.Read {
			marker = "*"
		}
		printlnFn(fmt.Sprintf("%s %s  %s: %s", marker, n.CreatedAt.Format("2006-01-02 15:04"), n.Title, n.Body))
	}
	return nil
}

// Application prints the detail of one job application.
func (a *App) Application(ctx context.Context, id string) error {
	if !a.requireLogin() {
		return nil
	}

	app, err := a.account.Application(ctx, id)
	if err != nil {
		printlnFn("Error:", err)
		return err
	}

	printlnFn(fmt.Sprintf("%s at %s", app.JobTitle, app.Company))
	printlnFn("Status: ", app.Status)
	printlnFn("Applied:", app.AppliedAt.Format("2006-01-02"))
	if app.Notes != "" {
		printlnFn("Notes:  ", app.Notes)
	}
	return nil
}

// Subscription prints the current subscription tier.
func (a *App) Subscription(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	sub, err := a.account.Subscription(ctx)
	if err != nil {
		printlnFn("Error:", err)
		return err
	}
	a.printSubscription(sub.Tier, sub.Active, sub.RenewsAt.Format("2006-01-02"))
	return nil
}

// Overview prints the home-screen snapshot: unread notification count and
// the subscription state.
func (a *App) Overview(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	o, err := a.account.Overview(ctx)
	if err != nil {
		printlnFn("Error:", err)
		return err
	}

	unread := 0
	for _, n := range o.Notifications {
		if !n.Read {
			unread++
		}
	}
	printlnFn(fmt.Sprintf("Notifications: %d (%d unread)", len(o.Notifications), unread))
	a.printSubscription(o.Subscription.Tier, o.Subscription.Active, o.Subscription.RenewsAt.Format("2006-01-02"))
	return nil
}

func (a *App) printSubscription(tier string, active bool, renews string) {
	state := "inactive"
	if active {
		state = "active, renews " + renews
	}
	printlnFn(fmt.Sprintf("Subscription: %s (%s)", tier, state))
}

func (a *App) requireLogin() bool {
	if a.isLoggedIn() {
		return true
	}
	printlnFn("Please login first")
	return false
}
