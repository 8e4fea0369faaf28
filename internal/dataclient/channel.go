package dataclient

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// ChannelFilter scopes a subscription to one table, optionally narrowed by an
// equality predicate.
type ChannelFilter struct {
	Table string
	Field string
	Value any
}

// ChangePayload is delivered to a channel callback when the watched result
// set changes.
type ChangePayload struct {
	Event string   `json:"event"`
	Table string   `json:"table"`
	Rows  []Record `json:"rows"`
}

type binding struct {
	event    string
	filter   ChannelFilter
	callback func(ChangePayload)
	snapshot string
	primed   bool
}

// Channel emulates a subscription stream by periodically re-running the
// corresponding read and diffing against the last observed snapshot. There is
// no push transport underneath; staleness is bounded by the poll interval.
type Channel struct {
	name     string
	client   *Client
	interval time.Duration

	mu         sync.Mutex
	bindings   []*binding
	subscribed bool
	stop       chan struct{}
}

// Channel returns the named channel, creating it on first use.
func (c *Client) Channel(name string) *Channel {
	c.chanMu.Lock()
	defer c.chanMu.Unlock()
	if ch, ok := c.channels[name]; ok {
		return ch
	}
	ch := &Channel{name: name, client: c, interval: c.channelInterval}
	c.channels[name] = ch
	return ch
}

// RemoveChannel unsubscribes and forgets the channel. Safe to call with a
// channel that was already removed.
func (c *Client) RemoveChannel(ch *Channel) {
	if ch == nil {
		return
	}
	ch.Unsubscribe()
	c.chanMu.Lock()
	if c.channels[ch.name] == ch {
		delete(c.channels, ch.name)
	}
	c.chanMu.Unlock()
}

// On registers a change listener. Listeners added after Subscribe take effect
// on the next poll.
func (ch *Channel) On(event string, filter ChannelFilter, callback func(ChangePayload)) *Channel {
	ch.mu.Lock()
	ch.bindings = append(ch.bindings, &binding{event: event, filter: filter, callback: callback})
	ch.mu.Unlock()
	return ch
}

// Subscribe primes the baseline snapshots and starts the poll timer.
// Subscribing an already-subscribed channel is a no-op.
func (ch *Channel) Subscribe() *Channel {
	ch.mu.Lock()
	if ch.subscribed {
		ch.mu.Unlock()
		return ch
	}
	ch.subscribed = true
	ch.stop = make(chan struct{})
	stop := ch.stop
	ch.mu.Unlock()

	ch.tick(false)
	go ch.run(stop)
	return ch
}

// Unsubscribe stops the poll timer. Idempotent.
func (ch *Channel) Unsubscribe() {
	ch.mu.Lock()
	if ch.subscribed {
		ch.subscribed = false
		close(ch.stop)
	}
	ch.mu.Unlock()
}

func (ch *Channel) run(stop chan struct{}) {
	ticker := time.NewTicker(ch.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			ch.tick(true)
		}
	}
}

// tick re-reads every binding's result set and notifies on change. When fire
// is false the snapshots are only primed.
func (ch *Channel) tick(fire bool) {
	ctx, cancel := context.WithTimeout(context.Background(), ch.interval)
	defer cancel()

	ch.mu.Lock()
	bindings := make([]*binding, len(ch.bindings))
	copy(bindings, ch.bindings)
	ch.mu.Unlock()

	for _, b := range bindings {
		rows, snapshot, err := ch.fetch(ctx, b.filter)
		if err != nil {
			ch.client.logger.Warnf("channel %s: poll of %s failed: %v", ch.name, b.filter.Table, err)
			continue
		}
		ch.mu.Lock()
		changed := b.primed && b.snapshot != snapshot
		b.snapshot = snapshot
		b.primed = true
		callback := b.callback
		ch.mu.Unlock()
		if fire && changed && callback != nil {
			callback(ChangePayload{Event: b.event, Table: b.filter.Table, Rows: rows})
		}
	}
}

func (ch *Channel) fetch(ctx context.Context, filter ChannelFilter) ([]Record, string, error) {
	q := ch.client.Table(filter.Table).Select().Order("id", nil)
	if filter.Field != "" {
		q = q.Eq(filter.Field, filter.Value)
	}
	res := q.Exec(ctx)
	if res.Error != nil {
		return nil, "", res.Error
	}
	rows := res.Rows()
	raw, err := json.Marshal(rows)
	if err != nil {
		return nil, "", err
	}
	return rows, string(raw), nil
}
