package dataclient_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natnael-haile/hireflow/internal/dataclient"
)

func TestChannelIsKeyedByName(t *testing.T) {
	c := newTestClient(t)

	a := c.Channel("projects-feed")
	b := c.Channel("projects-feed")
	other := c.Channel("talent-feed")

	assert.Same(t, a, b)
	assert.NotSame(t, a, other)
}

func TestChannelNotifiesOnChange(t *testing.T) {
	c := newTestClient(t)

	mustInsert(t, c, "projects", dataclient.Record{"recruiterId": "r1", "code": "PRJ-AAAAAA"})

	var mu sync.Mutex
	var payloads []dataclient.ChangePayload
	ch := c.Channel("projects-feed").
		On("*", dataclient.ChannelFilter{Table: "projects", Field: "recruiterId", Value: "r1"}, func(p dataclient.ChangePayload) {
			mu.Lock()
			payloads = append(payloads, p)
			mu.Unlock()
		}).
		Subscribe()
	defer c.RemoveChannel(ch)

	// The subscribe tick primes the snapshot without firing.
	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	assert.Empty(t, payloads)
	mu.Unlock()

	mustInsert(t, c, "projects", dataclient.Record{"recruiterId": "r1", "code": "PRJ-BBBBBB"})

	ok := waitFor(t, 2*time.Second, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(payloads) > 0
	})
	require.True(t, ok, "change was never observed")

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "*", payloads[0].Event)
	assert.Equal(t, "projects", payloads[0].Table)
	assert.Len(t, payloads[0].Rows, 2)
}

func TestChannelFilterScopesNotifications(t *testing.T) {
	c := newTestClient(t)

	var mu sync.Mutex
	fired := 0
	ch := c.Channel("scoped").
		On("*", dataclient.ChannelFilter{Table: "projects", Field: "recruiterId", Value: "r1"}, func(dataclient.ChangePayload) {
			mu.Lock()
			fired++
			mu.Unlock()
		}).
		Subscribe()
	defer c.RemoveChannel(ch)

	// A row outside the filter must not wake the listener.
	mustInsert(t, c, "projects", dataclient.Record{"recruiterId": "r2", "code": "PRJ-CCCCCC"})
	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, fired)
}

func TestChannelUnsubscribeIdempotent(t *testing.T) {
	c := newTestClient(t)

	ch := c.Channel("once").Subscribe()
	ch.Unsubscribe()
	ch.Unsubscribe()

	// Remove after unsubscribe, then again with a stale handle.
	c.RemoveChannel(ch)
	c.RemoveChannel(ch)
	c.RemoveChannel(nil)
}

func TestChannelResubscribeAfterRemove(t *testing.T) {
	c := newTestClient(t)

	ch := c.Channel("loop").Subscribe()
	c.RemoveChannel(ch)

	again := c.Channel("loop")
	assert.NotSame(t, ch, again)
	again.Subscribe()
	c.RemoveChannel(again)
}
