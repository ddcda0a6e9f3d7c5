package metrics

import (
	"context"

	"github.com/jhoicas/ecommerce-backoffice/internal/application/usecase"
)

type countingPublisher struct {
	m    *Metrics
	next usecase.ChangePublisher
}

// CountChanges envuelve next y cuenta cada evento antes de reenviarlo.
func (m *Metrics) CountChanges(next usecase.ChangePublisher) usecase.ChangePublisher {
	if next == nil {
		next = usecase.NopPublisher{}
	}
	return &countingPublisher{m: m, next: next}
}

func (p *countingPublisher) Publish(ctx context.Context, change usecase.EntityChange) {
	p.m.RecordChange(change.Entity, string(change.Action))
	p.next.Publish(ctx, change)
}
