package authservice

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotifierDeliversInOrder(t *testing.T) {
	notifier := NewNotifier()
	first := notifier.Subscribe()
	second := notifier.Subscribe()

	for i := 0; i < 3; i++ {
		notifier.Notify(AuthEvent{Type: LoggedIn, ProfessionalID: fmt.Sprintf("p-%d", i), At: time.Now()})
	}

	for _, events := range []<-chan AuthEvent{first, second} {
		for i := 0; i < 3; i++ {
			select {
			case event := <-events:
				assert.Equal(t, fmt.Sprintf("p-%d", i), event.ProfessionalID)
			default:
				t.Fatalf("missing event %d", i)
			}
		}
	}
}

func TestNotifierDropsWhenSubscriberIsFull(t *testing.T) {
	notifier := NewNotifier()
	events := notifier.Subscribe()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < subscriberBuffer+1; i++ {
			notifier.Notify(AuthEvent{Type: LoggedOut, ProfessionalID: "p-1", At: time.Now()})
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("notify blocked on a full subscriber")
	}
	assert.Len(t, events, subscriberBuffer)
}

func TestNotifierWithoutSubscribers(t *testing.T) {
	notifier := NewNotifier()
	assert.NotPanics(t, func() {
		notifier.Notify(AuthEvent{Type: LoggedIn, ProfessionalID: "p-1", At: time.Now()})
	})
}
