package service

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"go-backoffice-console/internal/client"
	"go-backoffice-console/internal/store"
	"go-backoffice-console/pkg/clock"
)

type reply struct {
	status int
	body   string
}

func ok(body string) reply { return reply{http.StatusOK, body} }

func fail(status int) reply { return reply{status, `{"error":"boom"}`} }

// fakeBackend answers "METHOD /path" routes and records every call.
type fakeBackend struct {
	mu     sync.Mutex
	routes map[string]reply
	calls  []string
	bodies map[string]string
}

func newBackend(t *testing.T, routes map[string]reply) (*fakeBackend, *client.JSONClient) {
	t.Helper()
	b := &fakeBackend{routes: routes, bodies: make(map[string]string)}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		body, _ := io.ReadAll(r.Body)
		b.mu.Lock()
		b.calls = append(b.calls, key)
		b.bodies[key] = string(body)
		rep, found := b.routes[key]
		b.mu.Unlock()
		if !found {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(rep.status)
		io.WriteString(w, rep.body)
	}))
	t.Cleanup(srv.Close)
	return b, client.NewJSONClient(srv.URL, 0)
}

func (b *fakeBackend) count(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, c := range b.calls {
		if c == key {
			n++
		}
	}
	return n
}

func (b *fakeBackend) body(key string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bodies[key]
}

func page(content string) string {
	return `{"content":` + content + `,"page":{"page":0,"size":20,"totalElements":0,"totalPages":1}}`
}

func newStore[T store.Keyed](entity string, clk clock.Clock) *store.Store[T] {
	return store.New[T](entity, clk, nil)
}

func ids[T store.Keyed](items []T) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Key())
	}
	return out
}
