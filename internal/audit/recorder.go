package audit

import (
	"context"
	"time"

	"github.com/google/uuid"

	"marketplace/internal/domain"
)

// Sink receives a copy of every recorded entry (e.g. the Kafka
// publisher). May be nil.
type Sink interface {
	PublishAudit(ctx context.Context, e domain.AuditEntry)
}

// Recorder appends audit entries to the document inside a store update.
// The document itself is the ledger; the sink is a best-effort mirror.
type Recorder struct {
	sink Sink
}

func NewRecorder(sink Sink) *Recorder {
	return &Recorder{sink: sink}
}

func (r *Recorder) Record(ctx context.Context, doc *domain.Document, action, detail, by string) domain.AuditEntry {
	e := domain.AuditEntry{
		ID:     uuid.NewString(),
		Action: action,
		Detail: detail,
		By:     by,
		At:     time.Now().UTC(),
	}
	doc.AppendAudit(e)
	if r.sink != nil {
		r.sink.PublishAudit(ctx, e)
	}
	return e
}
