package omdb

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// fakeOMDb serves ?s= from search and ?i= from details.
type fakeOMDb struct {
	search  map[string]any
	details map[string]any // imdbID -> record; missing id -> 500

	// delay per detail id, to shuffle completion order
	delay map[string]time.Duration

	mu       sync.Mutex
	queries  []map[string]string
	inFlight int32
	peak     int32
}

func (f *fakeOMDb) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f.mu.Lock()
	flat := map[string]string{}
	for k := range q {
		flat[k] = q.Get(k)
	}
	f.queries = append(f.queries, flat)
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	if q.Get("s") != "" {
		_ = json.NewEncoder(w).Encode(f.search)
		return
	}

	id := q.Get("i")
	n := atomic.AddInt32(&f.inFlight, 1)
	for {
		p := atomic.LoadInt32(&f.peak)
		if n <= p || atomic.CompareAndSwapInt32(&f.peak, p, n) {
			break
		}
	}
	defer atomic.AddInt32(&f.inFlight, -1)

	if d := f.delay[id]; d > 0 {
		time.Sleep(d)
	}

	rec, ok := f.details[id]
	if !ok {
		http.Error(w, "boom", http.StatusInternalServerError)
		return
	}
	if s, isRaw := rec.(string); isRaw {
		_, _ = w.Write([]byte(s))
		return
	}
	_ = json.NewEncoder(w).Encode(rec)
}

func (f *fakeOMDb) allQueries() []map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]string(nil), f.queries...)
}

func (f *fakeOMDb) detailQueries() []map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []map[string]string
	for _, q := range f.queries {
		if q["i"] != "" {
			out = append(out, q)
		}
	}
	return out
}

func newFakeServer(t *testing.T, f *fakeOMDb) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	c := New(srv.URL+"/", "test-key", 5*time.Second)
	return srv, c
}

func row(id, title, typ, year, poster string) map[string]string {
	return map[string]string{"imdbID": id, "Title": title, "Type": typ, "Year": year, "Poster": poster}
}
