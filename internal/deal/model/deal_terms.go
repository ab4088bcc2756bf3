package model

import (
	"time"

	"github.com/google/uuid"
)

// DealTerms is the frozen output of a finalized negotiation.
type DealTerms struct {
	ID            uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`
	NegotiationID uuid.UUID `bun:",notnull,unique,type:uuid"`

	Commodity   string  `bun:",notnull"`
	Quantity    float64 `bun:",notnull"`
	Unit        string  `bun:",notnull"`
	AgreedPrice float64 `bun:",notnull"`
	Quality     string  `bun:",null"`

	DeliveryTerms string `bun:",null"`
	PaymentTerms  string `bun:",null"`

	FinalizedBy uuid.UUID `bun:",notnull,type:uuid"`
	FinalizedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// TransactionCompleted is the raw signal emitted for the external reputation
// aggregator. Trust tiers are computed there, not here.
type TransactionCompleted struct {
	ParticipantID          uuid.UUID
	CounterpartyID         uuid.UUID
	DealAmount             float64
	AverageResponseLatency time.Duration
	Commodity              string
	CompletedAt            time.Time
}
