package dataclient_test

import (
	"context"
	"testing"
	"time"

	"github.com/natnael-haile/hireflow/internal/dataclient"
	"github.com/natnael-haile/hireflow/internal/infrastructure/jwt"
	passwordservice "github.com/natnael-haile/hireflow/internal/infrastructure/password_service"
	"github.com/natnael-haile/hireflow/internal/infrastructure/repository/memory"
	"github.com/natnael-haile/hireflow/internal/infrastructure/store"
	"github.com/natnael-haile/hireflow/internal/infrastructure/uuidgen"
	"github.com/natnael-haile/hireflow/internal/infrastructure/validator"
)

// newTestClient wires a client over the in-memory datastore with short poll
// intervals so subscription tests finish quickly.
func newTestClient(t *testing.T) *dataclient.Client {
	t.Helper()
	return newTestClientWithStore(t, store.NewMemoryTokenStore())
}

// newTestClientWithStore keeps the token store handle visible so tests can
// mutate the slot the way a second process sharing it would.
func newTestClientWithStore(t *testing.T, tokenStore *store.MemoryTokenStore) *dataclient.Client {
	t.Helper()
	manager := jwt.NewJWTManager("test-secret", time.Hour)
	client := dataclient.New(memory.NewStore(), dataclient.DefaultRegistry(), dataclient.Options{
		TokenService:        jwt.NewTokenService(manager),
		TokenStore:          tokenStore,
		Hasher:              passwordservice.NewHasher(),
		UUIDGen:             uuidgen.NewGenerator(),
		Validator:           validator.NewValidator(),
		AuthPollInterval:    20 * time.Millisecond,
		ChannelPollInterval: 20 * time.Millisecond,
	})
	t.Cleanup(client.Close)
	return client
}

func mustInsert(t *testing.T, c *dataclient.Client, table string, recs ...dataclient.Record) []dataclient.Record {
	t.Helper()
	res := c.Table(table).Insert(recs...).Exec(context.Background())
	if res.Error != nil {
		t.Fatalf("insert into %s failed: %v", table, res.Error)
	}
	return res.Data.([]dataclient.Record)
}

// waitFor polls until the condition holds or the deadline passes.
func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return cond()
}
