package negotiation

import (
	"time"

	"github.com/google/uuid"

	"mindi/internal/negotiation/model"
)

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler
// Input commands
type StartNegotiationCommand struct {
	BuyerID          uuid.UUID
	SellerID         uuid.UUID
	AgentID          *uuid.UUID
	AgentCanFinalize bool
	InitiatorID      uuid.UUID
	Proposal         DealProposalCommand
}

type DealProposalCommand struct {
	Commodity        string
	Quantity         float64
	Unit             string
	Quality          string
	DeliveryLocation string
	DeliveryDate     time.Time
	ProposedPrice    float64
}

type SendMessageCommand struct {
	SenderID    uuid.UUID
	ReceiverID  uuid.UUID
	Text        string
	Language    string
	MessageType model.MessageType
	Attachments []model.Attachment
}

// Output DTOs
type NegotiationDTO struct {
	ID               uuid.UUID
	BuyerID          uuid.UUID
	SellerID         uuid.UUID
	AgentID          *uuid.UUID
	AgentCanFinalize bool
	Proposal         model.DealProposal
	CurrentOffer     float64
	Status           model.Status
	Version          int64
	CancelReason     string
	Messages         []MessageDTO
	CreatedAt        time.Time
	UpdatedAt        time.Time
	LastActivityAt   time.Time
}

type MessageDTO struct {
	ID             string
	SenderID       uuid.UUID
	ReceiverID     uuid.UUID
	Text           string
	Language       string
	MessageType    model.MessageType
	SequenceNumber int64
	ReadStatus     bool
	SentAt         time.Time
	Attachments    []model.Attachment
	PriceReference *model.PriceReference
}

// NegotiationUpdate is delivered to subscribers after every committed
// mutation, in commit order per subscriber.
type NegotiationUpdate struct {
	NegotiationID uuid.UUID
	Version       int64
	Status        model.Status
	Negotiation   *NegotiationDTO
	CommittedAt   time.Time
}

// UnsubscribeFunc stops further delivery; it never touches the session.
type UnsubscribeFunc func()

// ContentLocator points at attachment bytes held by the external store.
type ContentLocator struct {
	URL       string
	ExpiresAt time.Time
}

func ToNegotiationDTO(n *model.Negotiation) *NegotiationDTO {
	dto := &NegotiationDTO{
		ID:               n.ID,
		BuyerID:          n.BuyerID,
		SellerID:         n.SellerID,
		AgentID:          n.AgentID,
		AgentCanFinalize: n.AgentCanFinalize,
		Proposal:         n.Proposal,
		CurrentOffer:     n.CurrentOffer,
		Status:           n.Status,
		Version:          n.Version,
		CancelReason:     n.CancelReason,
		CreatedAt:        n.CreatedAt,
		UpdatedAt:        n.UpdatedAt,
		LastActivityAt:   n.LastActivityAt,
	}
	dto.Messages = make([]MessageDTO, 0, len(n.Messages))
	for _, m := range n.Messages {
		dto.Messages = append(dto.Messages, MessageDTO{
			ID:             m.ID,
			SenderID:       m.SenderID,
			ReceiverID:     m.ReceiverID,
			Text:           m.OriginalText,
			Language:       m.OriginalLanguage,
			MessageType:    m.MessageType,
			SequenceNumber: m.SequenceNumber,
			ReadStatus:     m.ReadStatus,
			SentAt:         m.SentAt,
			Attachments:    m.Attachments,
			PriceReference: m.PriceReference,
		})
	}
	return dto
}
