package txstream

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/gabapcia/txhistory/internal/txstream"

// metrics records aggregator activity through the global meter provider.
// Instruments that fail to register fall back to no-ops.
type metrics struct {
	snapshots metric.Int64Counter
	records   metric.Int64Counter
}

func newMetrics() *metrics {
	meter := otel.Meter(meterName)

	snapshots, err := meter.Int64Counter("txstream.snapshots.published",
		metric.WithDescription("Snapshots published to consumers"),
	)
	if err != nil {
		otel.Handle(err)
	}

	records, err := meter.Int64Counter("txstream.records.received",
		metric.WithDescription("Records received from the record source"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		otel.Handle(err)
	}

	return &metrics{snapshots: snapshots, records: records}
}

func (m *metrics) snapshotPublished(ctx context.Context) {
	m.snapshots.Add(ctx, 1)
}

func (m *metrics) recordsReceived(ctx context.Context, n int) {
	m.records.Add(ctx, int64(n))
}
