package finplan

import (
	"bytes"
	"fmt"
	"net/http"
)

// Store abstracts where the plan document lives. The two backends, flat
// file and remote HTTP, are interchangeable behind Load/Save.
//
// Both backends read and write the whole document: two sessions saving
// concurrently clobber each other, last write wins. That is the accepted
// granularity of the plan, not a bug to lock around.
type Store interface {
	Load() (*Document, error)
	Save(*Document) error
}

// FileStore keeps the plan in a local JSON file.
type FileStore struct {
	Path string
}

func (s FileStore) Load() (*Document, error) { return Load(s.Path) }

func (s FileStore) Save(d *Document) error { return Save(s.Path, d) }

// RemoteStore keeps the plan behind an HTTP endpoint: GET returns the
// document, PUT replaces it. A 404 on GET reads as an empty plan, the
// remote twin of a missing file.
type RemoteStore struct {
	URL    string
	Client *http.Client
}

func (s RemoteStore) client() *http.Client {
	if s.Client != nil {
		return s.Client
	}
	return http.DefaultClient
}

func (s RemoteStore) Load() (*Document, error) {
	resp, err := s.client().Get(s.URL)
	if err != nil {
		return nil, fmt.Errorf("cannot http GET plan from %q: %w", s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return NewDocument(), nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot http GET plan from %q: %v", s.URL, resp.Status)
	}

	d, err := DecodeDocument(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cannot read remote plan from %q: %w", s.URL, err)
	}
	return d, nil
}

func (s RemoteStore) Save(d *Document) error {
	var buf bytes.Buffer
	if err := EncodeDocument(&buf, d); err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPut, s.URL, &buf)
	if err != nil {
		return fmt.Errorf("cannot build http PUT for %q: %w", s.URL, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client().Do(req)
	if err != nil {
		return fmt.Errorf("cannot http PUT plan to %q: %w", s.URL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("cannot http PUT plan to %q: %v", s.URL, resp.Status)
	}
	return nil
}
