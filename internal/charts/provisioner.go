package charts

import (
	"context"
	"fmt"
	"maps"
)

// Embed is the result of ensuring a chart exists for some table content.
type Embed struct {
	ChartID string
	URL     string
	Cached  bool // true when no network call was made
}

// Provisioner creates, fills and publishes charts on demand, reusing any
// chart already recorded for the same canonical key.
type Provisioner struct {
	client    Client
	embedHost string
	entries   map[string]string
}

// NewProvisioner creates a Provisioner seeded with a loaded mapping.
// entries is copied; an empty embedHost selects DefaultEmbedHost.
func NewProvisioner(client Client, entries map[string]string, embedHost string) *Provisioner {
	if embedHost == "" {
		embedHost = DefaultEmbedHost
	}
	seeded := make(map[string]string, len(entries))
	maps.Copy(seeded, entries)
	return &Provisioner{client: client, embedHost: embedHost, entries: seeded}
}

// EmbedURL derives the public embed URL of a chart from its id.
func EmbedURL(host, chartID string) string {
	return fmt.Sprintf("https://%s/%s/1/", host, chartID)
}

// Ensure returns an embed reference for the table identified by key.
// On a cache miss it runs create, upload, publish in that order and records
// the new chart in memory. Errors from the client are returned wrapped and
// leave the mapping untouched.
func (p *Provisioner) Ensure(ctx context.Context, key string, csv []byte, title string) (Embed, error) {
	if id, ok := p.entries[key]; ok {
		return Embed{ChartID: id, URL: EmbedURL(p.embedHost, id), Cached: true}, nil
	}

	id, err := p.client.Create(ctx, title)
	if err != nil {
		return Embed{}, fmt.Errorf("creating chart %q: %w", title, err)
	}
	if err := p.client.Upload(ctx, id, csv); err != nil {
		return Embed{}, fmt.Errorf("uploading data to chart %s: %w", id, err)
	}
	embedURL, err := p.client.Publish(ctx, id)
	if err != nil {
		return Embed{}, fmt.Errorf("publishing chart %s: %w", id, err)
	}
	if embedURL == "" {
		embedURL = EmbedURL(p.embedHost, id)
	}

	p.entries[key] = id
	return Embed{ChartID: id, URL: embedURL}, nil
}

// Entries returns a copy of the current mapping, for persisting.
func (p *Provisioner) Entries() map[string]string {
	return maps.Clone(p.entries)
}
