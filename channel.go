package demodb

import (
	"sync"

	"github.com/gofrs/uuid"

	"github.com/vendaspro/demodb/pkg/dataset"
	"github.com/vendaspro/demodb/pkg/logger"
)

// ChannelEvent is the payload shape realtime handlers are declared
// against.
type ChannelEvent struct {
	Event  string
	Table  string
	Record dataset.Record
}

// ChannelHandler handles a realtime event.
type ChannelHandler func(ChannelEvent)

// Channel satisfies the hosted client's realtime surface. Handlers are
// registered and retained but never invoked: the demo backend emits no
// events, so realtime-driven UI (level-up celebrations and the like)
// stays inert in demo mode.
type Channel struct {
	id     string
	name   string
	logger logger.Logger

	mu         sync.Mutex
	handlers   map[string][]ChannelHandler
	subscribed bool
}

// Channel creates (and tracks) a named realtime channel.
func (c *Client) Channel(name string) *Channel {
	id := uuid.Must(uuid.NewV4()).String()
	ch := &Channel{
		id:       id,
		name:     name,
		logger:   c.logger,
		handlers: make(map[string][]ChannelHandler),
	}

	c.channelsLock.Lock()
	c.channels[id] = ch
	c.channelsLock.Unlock()

	return ch
}

// RemoveChannel unsubscribes a channel and forgets it. Unknown channels
// are ignored.
func (c *Client) RemoveChannel(ch *Channel) {
	if ch == nil {
		return
	}
	_ = ch.Unsubscribe()

	c.channelsLock.Lock()
	delete(c.channels, ch.id)
	c.channelsLock.Unlock()
}

// Name returns the name the channel was created with.
func (ch *Channel) Name() string {
	return ch.name
}

// On registers a handler for an event name and returns the channel for
// chaining.
func (ch *Channel) On(event string, fn ChannelHandler) *Channel {
	ch.mu.Lock()
	ch.handlers[event] = append(ch.handlers[event], fn)
	ch.mu.Unlock()
	return ch
}

// Subscribe marks the channel active. No events will ever be delivered.
func (ch *Channel) Subscribe() *Channel {
	ch.mu.Lock()
	ch.subscribed = true
	ch.mu.Unlock()
	ch.logger.Debug("channel subscribed", "channel", ch.name)
	return ch
}

// Unsubscribe marks the channel inactive. Always succeeds.
func (ch *Channel) Unsubscribe() error {
	ch.mu.Lock()
	ch.subscribed = false
	ch.mu.Unlock()
	return nil
}

// Subscribed reports whether Subscribe was called without a later
// Unsubscribe.
func (ch *Channel) Subscribed() bool {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return ch.subscribed
}
