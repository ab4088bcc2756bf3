package deal

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mindi/internal/deal/model"
	negmodel "mindi/internal/negotiation/model"
)

// Input command
type FinalizeCommand struct {
	DeliveryTerms string
	PaymentTerms  string
}

// Output DTO
type DealTermsDTO struct {
	NegotiationID uuid.UUID
	Commodity     string
	Quantity      float64
	Unit          string
	AgreedPrice   float64
	Quality       string
	DeliveryTerms string
	PaymentTerms  string
	FinalizedBy   uuid.UUID
	FinalizedAt   time.Time
}

func ToDealTermsDTO(t *model.DealTerms) *DealTermsDTO {
	return &DealTermsDTO{
		NegotiationID: t.NegotiationID,
		Commodity:     t.Commodity,
		Quantity:      t.Quantity,
		Unit:          t.Unit,
		AgreedPrice:   t.AgreedPrice,
		Quality:       t.Quality,
		DeliveryTerms: t.DeliveryTerms,
		PaymentTerms:  t.PaymentTerms,
		FinalizedBy:   t.FinalizedBy,
		FinalizedAt:   t.FinalizedAt,
	}
}

type FinalizationUsecase interface {
	// Freezes an active session into binding deal terms. Only buyer or
	// seller may finalize, plus the agent when the relationship carries the
	// canFinalize flag.
	FinalizeAgreement(ctx context.Context, negotiationID uuid.UUID, cmd FinalizeCommand, actorID uuid.UUID) (*DealTermsDTO, error)

	GetDealTerms(ctx context.Context, negotiationID uuid.UUID) (*DealTermsDTO, error)
}

type DealTermsRepository interface {
	// Flips the negotiation to finalized and inserts terms in one
	// transaction guarded by expectedVersion; a failed insert rolls the
	// status flip back. Fills in the frozen AgreedPrice and FinalizedAt
	// and returns the committed negotiation snapshot.
	FinalizeNegotiation(ctx context.Context, negotiationID uuid.UUID, terms *model.DealTerms, expectedVersion int64) (*negmodel.Negotiation, error)

	GetDealTermsByNegotiation(ctx context.Context, negotiationID uuid.UUID) (*model.DealTerms, error)
}

// ReputationAggregator consumes completed-transaction signals. Calls are
// fire-and-forget and must never block finalization.
type ReputationAggregator interface {
	RecordTransaction(ctx context.Context, event model.TransactionCompleted) error
}
