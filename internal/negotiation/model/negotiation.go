package model

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusInitiated Status = "initiated"
	StatusActive    Status = "active"
	StatusFinalized Status = "finalized"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

// Terminal statuses make the record read-only.
func (s Status) Terminal() bool {
	return s == StatusFinalized || s == StatusCancelled || s == StatusExpired
}

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAgent  Role = "agent"
)

// DealProposal is the opening terms of a negotiation, embedded in the
// negotiation row under a proposal_ prefix.
type DealProposal struct {
	Commodity        string    `bun:",notnull"`
	Quantity         float64   `bun:",notnull"`
	Unit             string    `bun:",notnull"`
	Quality          string    `bun:",null"`
	DeliveryLocation string    `bun:",null"`
	DeliveryDate     time.Time `bun:",nullzero"`
	ProposedPrice    float64   `bun:",notnull"`
}

type Negotiation struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	// Participants
	BuyerID          uuid.UUID  `bun:",notnull,type:uuid"`
	SellerID         uuid.UUID  `bun:",notnull,type:uuid"`
	AgentID          *uuid.UUID `bun:",type:uuid"`
	AgentCanFinalize bool       `bun:",default:false"`

	Proposal DealProposal `bun:"embed:proposal_"`

	// CurrentOffer is denormalized from the message stream; it always
	// equals the price of the highest-sequence priced message.
	CurrentOffer float64 `bun:",notnull"`

	Status Status `bun:",notnull,default:'active'"`

	// Version guards every mutation (optimistic concurrency).
	Version int64 `bun:",notnull,default:0"`

	CancelReason string `bun:",null"`

	CreatedAt      time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt      time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	LastActivityAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`

	Messages []*Message `bun:"rel:has-many,join:id=negotiation_id"`
}

// RoleOf reports how actorID participates in this negotiation.
func (n *Negotiation) RoleOf(actorID uuid.UUID) (Role, bool) {
	switch {
	case actorID == n.BuyerID:
		return RoleBuyer, true
	case actorID == n.SellerID:
		return RoleSeller, true
	case n.AgentID != nil && actorID == *n.AgentID:
		return RoleAgent, true
	}
	return "", false
}

// Counterparty returns the participant on the other side of the table.
// The agent negotiates toward the buyer.
func (n *Negotiation) Counterparty(senderID uuid.UUID) uuid.UUID {
	if senderID == n.BuyerID {
		return n.SellerID
	}
	return n.BuyerID
}

// HasTurnFrom reports whether participantID has committed at least one message.
func (n *Negotiation) HasTurnFrom(participantID uuid.UUID) bool {
	for _, m := range n.Messages {
		if m.SenderID == participantID {
			return true
		}
	}
	return false
}
