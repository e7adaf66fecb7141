package charts

import "context"

// Client is the contract the provisioner needs from a charting service.
// Every call must succeed; a failure aborts the document run.
type Client interface {
	// Create creates an empty chart titled title and returns its id.
	Create(ctx context.Context, title string) (string, error)

	// Upload replaces the chart's data with a CSV payload.
	Upload(ctx context.Context, chartID string, csv []byte) error

	// Publish publishes the chart and returns its embed URL.
	// An empty URL means the service did not report one.
	Publish(ctx context.Context, chartID string) (string, error)
}
