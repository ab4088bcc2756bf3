package negotiation

import (
	"context"

	"github.com/google/uuid"
)

type NegotiationUsecase interface {
	// Validates the deal proposal and opens an Active session with
	// currentOffer = proposedPrice and version 0.
	StartNegotiation(ctx context.Context, cmd StartNegotiationCommand) (*NegotiationDTO, error)

	GetNegotiation(ctx context.Context, negotiationID uuid.UUID) (*NegotiationDTO, error)

	// Appends a message while the session is active. expectedVersion is the
	// caller's last-known version; a stale value fails with a conflict after
	// one internal retry.
	SendMessage(ctx context.Context, negotiationID uuid.UUID, cmd SendMessageCommand, expectedVersion int64) (*NegotiationDTO, error)

	// Appends a price-tagged message and advances the current offer.
	// Triggers an advisory refresh off the mutation path.
	MakeCounterOffer(ctx context.Context, negotiationID uuid.UUID, price float64, senderID uuid.UUID, expectedVersion int64) (*NegotiationDTO, error)

	// Explicit cancellation by a participant, or by the reaper when the
	// session has idled past the configured timeout.
	Cancel(ctx context.Context, negotiationID uuid.UUID, actorID uuid.UUID, reason string) (*NegotiationDTO, error)

	// Returns a stream of committed updates plus a cancel handle.
	SubscribeToNegotiation(ctx context.Context, negotiationID uuid.UUID) (<-chan NegotiationUpdate, UnsubscribeFunc, error)

	// Resolves attachment metadata into a content locator via the external
	// store. Never part of the mutation path.
	ResolveAttachment(ctx context.Context, negotiationID uuid.UUID, attachmentID string) (*ContentLocator, error)
}
