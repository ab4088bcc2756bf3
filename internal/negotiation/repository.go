package negotiation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mindi/internal/negotiation/model"
)

type NegotiationRepository interface {
	CreateNegotiation(ctx context.Context, n *model.Negotiation) error

	// Returns the negotiation with its messages ordered by sequence number.
	GetNegotiation(ctx context.Context, id uuid.UUID) (*model.Negotiation, error)

	// Atomically appends msg with the next sequence number, bumps the
	// version and recomputes current_offer from the stream, all guarded by
	// expectedVersion. Returns the committed snapshot.
	AppendMessage(ctx context.Context, negotiationID uuid.UUID, msg *model.Message, expectedVersion int64) (*model.Negotiation, error)

	// Compare-and-swap status transition (active -> finalized/cancelled/expired).
	UpdateStatus(ctx context.Context, negotiationID uuid.UUID, from, to model.Status, reason string, expectedVersion int64) (*model.Negotiation, error)

	// Active negotiations whose last activity predates cutoff; reaper input.
	ListIdleActive(ctx context.Context, cutoff time.Time, limit int) ([]*model.Negotiation, error)
}

// AttachmentStore resolves durable attachment ids into content locations.
// The core never touches raw bytes.
type AttachmentStore interface {
	Resolve(ctx context.Context, attachmentID string) (*ContentLocator, error)
}
