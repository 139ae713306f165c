package finplan

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRemoteStoreRoundTrip(t *testing.T) {
	var stored []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			if ct := r.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", ct)
			}
			body, err := io.ReadAll(r.Body)
			if err != nil {
				t.Error(err)
			}
			stored = body
		case http.MethodGet:
			if stored == nil {
				http.NotFound(w, r)
				return
			}
			w.Write(stored)
		}
	}))
	defer server.Close()

	store := RemoteStore{URL: server.URL}

	// No document yet: the 404 reads as an empty plan.
	d, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if d.Currency != "USD" {
		t.Errorf("currency = %q, want USD", d.Currency)
	}

	subscriber(d, "A", seq(10), seq(0), flat(100, 1))
	if err := store.Save(d); err != nil {
		t.Fatal(err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if got := loaded.subscriptionOf("A").NewCustomers.Get(jan); got != 10 {
		t.Errorf("new customers = %v, want 10", got)
	}
}

func TestRemoteStoreSaveRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "read only", http.StatusForbidden)
	}))
	defer server.Close()

	if err := (RemoteStore{URL: server.URL}).Save(NewDocument()); err == nil {
		t.Fatal("Save against a rejecting endpoint returned nil")
	}
}
