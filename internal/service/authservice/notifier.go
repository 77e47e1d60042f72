package authservice

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

type AuthEventType string

const (
	LoggedIn  AuthEventType = "logged_in"
	LoggedOut AuthEventType = "logged_out"
)

type AuthEvent struct {
	Type           AuthEventType
	ProfessionalID string
	At             time.Time
}

const subscriberBuffer = 16

// Notifier fans auth-state transitions out to subscribers. Every subscriber
// sees events in the order they happened; a subscriber that stops draining
// loses events instead of blocking the rest.
type Notifier struct {
	mu   sync.Mutex
	subs []chan AuthEvent
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) Subscribe() <-chan AuthEvent {
	n.mu.Lock()
	defer n.mu.Unlock()
	ch := make(chan AuthEvent, subscriberBuffer)
	n.subs = append(n.subs, ch)
	return ch
}

func (n *Notifier) Notify(event AuthEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, ch := range n.subs {
		select {
		case ch <- event:
		default:
			zap.L().Error("auth event dropped, subscriber not draining",
				zap.String("type", string(event.Type)), zap.String("professional_id", event.ProfessionalID))
		}
	}
}
