package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/ananyev/jobpilot/internal/client/api"
	"github.com/ananyev/jobpilot/internal/client/models"
)

// AccountService exposes the read-side of a signed-in account.
type AccountService interface {
	Notifications(ctx context.Context) ([]models.Notification, error)
	Application(ctx context.Context, id string) (models.Application, error)
	Subscription(ctx context.Context) (models.Subscription, error)
	Overview(ctx context.Context) (Overview, error)
}

// Overview is the home-screen snapshot: unread notifications and the
// subscription state, fetched together.
type Overview struct {
	Notifications []models.Notification
	Subscription  models.Subscription
}

type accountService struct {
	client api.Client
}

func NewAccountService(client api.Client) AccountService {
	return &accountService{client: client}
}

func (a *accountService) Notifications(ctx context.Context) ([]models.Notification, error) {
	ns, err := a.client.ListNotifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return ns, nil
}

func (a *accountService) Application(ctx context.Context, id string) (models.Application, error) {
	app, err := a.client.GetApplication(ctx, id)
	if err != nil {
		return models.Application{}, fmt.Errorf("get application: %w", err)
	}
	return app, nil
}

func (a *accountService) Subscription(ctx context.Context) (models.Subscription, error) {
	sub, err := a.client.GetSubscription(ctx)
	if err != nil {
		return models.Subscription{}, fmt.Errorf("get subscription: %w", err)
	}
	return sub, nil
}

// Overview fetches notifications and subscription concurrently. The first
// failure wins; partial results are discarded.
func (a *accountService) Overview(ctx context.Context) (Overview, error) {
	var (
		wg     sync.WaitGroup
		o      Overview
		nsErr  error
		subErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		o.Notifications, nsErr = a.client.ListNotifications(ctx)
	}()
	go func() {
		defer wg.Done()
		o.Subscription, subErr = a.client.GetSubscription(ctx)
	}()
	wg.Wait()

	if nsErr != nil {
		return Overview{}, fmt.Errorf("list notifications: %w", nsErr)
	}
	if subErr != nil {
		return Overview{}, fmt.Errorf("get subscription: %w", subErr)
	}
	return o, nil
}
