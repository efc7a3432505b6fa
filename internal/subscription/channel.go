// Package subscription provides the background update channel the
// application registers at startup. It currently emits a single
// placeholder event and then stays idle until shutdown; real payloads
// (e.g. beat ticks once playback exists) would arrive here.
package subscription

import "context"

// Event carries no data yet.
type Event struct{}

// Run starts the placeholder subscription. The returned channel delivers
// one Event, then remains open without further traffic until the context
// is cancelled, at which point it is closed.
func Run(ctx context.Context) <-chan Event {
	events := make(chan Event, 1)

	go func() {
		defer close(events)

		select {
		case events <- Event{}:
		case <-ctx.Done():
			return
		}

		<-ctx.Done()
	}()

	return events
}
