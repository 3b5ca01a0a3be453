package changefeed

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"go-backoffice-console/internal/model"
	"go-backoffice-console/internal/repository"
	"go-backoffice-console/internal/store"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu      sync.Mutex
	changes []model.Change
}

func (r *recordingSink) Publish(c model.Change) {
	r.mu.Lock()
	r.changes = append(r.changes, c)
	r.mu.Unlock()
}

type fakeWriter struct {
	msgs chan kafka.Message
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	for _, m := range msgs {
		w.msgs <- m
	}
	return nil
}

type fakeChangeRepo struct {
	created chan *model.ChangeRecord
}

func (r *fakeChangeRepo) Create(rec *model.ChangeRecord) error {
	r.created <- rec
	return nil
}

func (r *fakeChangeRepo) FindRecent(int) ([]model.ChangeRecord, error) { return nil, nil }

func (r *fakeChangeRepo) GetActivity(time.Time, time.Time) ([]repository.ChangeActivity, error) {
	return nil, nil
}

type fakeHub struct {
	events []any
}

func (h *fakeHub) Publish(v any) error {
	h.events = append(h.events, v)
	return nil
}

func TestFeedMergesAndDispatches(t *testing.T) {
	seq := &store.Sequence{}
	suppliers := store.New[model.Supplier]("suppliers", nil, seq)
	customers := store.New[model.Customer]("customers", nil, seq)

	rec := &recordingSink{}
	hub := &fakeHub{}
	feed := New(rec, HubSink(hub))
	feed.Attach(suppliers, customers)

	suppliers.Replace([]model.Supplier{{ID: "SUP-001"}})
	customers.Upsert(model.Customer{ID: "CUST-001"})
	suppliers.Remove("SUP-001")

	all := feed.Since(0)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"suppliers", "customers", "suppliers"}, []string{all[0].Entity, all[1].Entity, all[2].Entity})
	assert.Len(t, feed.Since(2), 1)

	assert.Len(t, rec.changes, 3)
	require.Len(t, hub.events, 3)
	assert.Equal(t, "change", hub.events[0].(Event).Type)
}

func TestKafkaSink(t *testing.T) {
	w := &fakeWriter{msgs: make(chan kafka.Message, 1)}
	at := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	KafkaSink(w).Publish(model.Change{Seq: 7, Entity: "orders", Op: model.OpUpsert, IDs: []string{"SO-00001"}, At: at})

	select {
	case msg := <-w.msgs:
		assert.Equal(t, "orders", string(msg.Key))
		var ev Event
		require.NoError(t, json.Unmarshal(msg.Value, &ev))
		assert.Equal(t, uint64(7), ev.Change.Seq)
		assert.Equal(t, []string{"SO-00001"}, ev.Change.IDs)
	case <-time.After(2 * time.Second):
		t.Fatal("kafka message not written")
	}
}

func TestDBSink(t *testing.T) {
	repo := &fakeChangeRepo{created: make(chan *model.ChangeRecord, 1)}
	DBSink(repo).Publish(model.Change{Seq: 3, Entity: "products", Op: model.OpRemove, IDs: []string{"ID-001"}})

	select {
	case rec := <-repo.created:
		assert.Equal(t, uint64(3), rec.Seq)
		assert.Equal(t, "products", rec.Entity)
	case <-time.After(2 * time.Second):
		t.Fatal("change not persisted")
	}
}
