package events

import (
	"context"
	"sync"

	"github.com/marcodamonte/langtour/internal/catalog"
	"github.com/marcodamonte/langtour/internal/ui"
)

func Demos() []catalog.Demo {
	return []catalog.Demo{{
		Name:  "events",
		Topic: "events",
		Title: "Events — publisher/subscriber",
		Run:   demoEvents,
	}}
}

// Notifier owns an event. Outsiders can subscribe to OnNotify but only
// Notifier can raise it.
type Notifier struct {
	OnNotify *Event[string]
	notify   func(string)
}

func NewNotifier() *Notifier {
	ev, raise := New[string]()
	return &Notifier{OnNotify: ev, notify: raise}
}

func (n *Notifier) Trigger(env *catalog.Env) {
	env.Println("  Triggering event...")
	n.notify("Event has been triggered.")
}

func demoEvents(_ context.Context, env *catalog.Env) error {
	n := NewNotifier()

	subscriberA := func(msg string) { env.Println("  Event received:", msg) }
	listener := func(msg string) { env.Println("  Listener received:", msg) }

	n.OnNotify.Subscribe(subscriberA)
	unsubscribe := n.OnNotify.Subscribe(listener)

	n.Trigger(env)
	env.Println("  number of subscribers:", n.OnNotify.Len())

	ui.Sub(env.Out, "unsubscribe")
	unsubscribe()
	n.Trigger(env)
	env.Println("  number of subscribers:", n.OnNotify.Len())

	ui.Sub(env.Out, "no subscribers")
	quiet := NewNotifier()
	quiet.Trigger(env) // raising with nobody listening is fine
	env.Println("  nothing printed, len =", quiet.OnNotify.Len())

	ui.Sub(env.Out, "concurrent publishers")
	counter := NewNotifier()
	var (
		mu    sync.Mutex
		total int
		wg    sync.WaitGroup
	)
	counter.OnNotify.Subscribe(func(string) {
		mu.Lock()
		total++
		mu.Unlock()
	})
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			counter.notify("tick")
		}()
	}
	wg.Wait()
	env.Println("  received from 50 goroutines:", total)
	return nil
}
