// Package sync keeps the local cache store and the remote document service
// aligned: pull-on-init, coalesced best-effort push after every mutation.
package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"importafacil/internal/domain/entities"
)

// Remote is the whole-dataset GET/POST contract of the document service.
type Remote interface {
	Pull(ctx context.Context) (entities.Dataset, error)
	Push(ctx context.Context, ds entities.Dataset) error
}

// HTTPRemote talks to the single webhook endpoint. Pushes are best-effort:
// any 2xx settles the request and the response body is never interpreted.
type HTTPRemote struct {
	endpoint string
	client   *http.Client
}

var _ Remote = (*HTTPRemote)(nil)

func NewHTTPRemote(endpoint string) *HTTPRemote {
	return &HTTPRemote{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (r *HTTPRemote) Pull(ctx context.Context) (entities.Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.endpoint, nil)
	if err != nil {
		return entities.Dataset{}, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return entities.Dataset{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return entities.Dataset{}, fmt.Errorf("dataset pull: unexpected status %d", resp.StatusCode)
	}
	var ds entities.Dataset
	if err := json.NewDecoder(resp.Body).Decode(&ds); err != nil {
		return entities.Dataset{}, fmt.Errorf("dataset pull: decode: %w", err)
	}
	return ds, nil
}

func (r *HTTPRemote) Push(ctx context.Context, ds entities.Dataset) error {
	body, err := json.Marshal(ds)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	// Best-effort contract: drain and discard whatever envelope came back.
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("dataset push: unexpected status %d", resp.StatusCode)
	}
	return nil
}
