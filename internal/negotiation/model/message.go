package model

import (
	"time"

	"github.com/google/uuid"
)

type MessageType string

const (
	MessageTypeText     MessageType = "text"
	MessageTypeImage    MessageType = "image"
	MessageTypeDocument MessageType = "document"
	MessageTypeVoice    MessageType = "voice"
)

func (t MessageType) Valid() bool {
	switch t {
	case MessageTypeText, MessageTypeImage, MessageTypeDocument, MessageTypeVoice:
		return true
	}
	return false
}

// PriceReference tags a message as a counter-offer. Stored as jsonb.
type PriceReference struct {
	Commodity string    `json:"commodity"`
	Price     float64   `json:"price"`
	Unit      string    `json:"unit"`
	Quality   string    `json:"quality,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
}

// Message is one immutable entry in a negotiation's append-only log.
type Message struct {
	ID            string    `bun:",pk"` // ULID, lexically sortable
	NegotiationID uuid.UUID `bun:",notnull,type:uuid"`

	SenderID   uuid.UUID `bun:",notnull,type:uuid"`
	ReceiverID uuid.UUID `bun:",notnull,type:uuid"`

	OriginalText     string      `bun:",null"`
	OriginalLanguage string      `bun:",notnull,default:'en'"`
	MessageType      MessageType `bun:",notnull,default:'text'"`

	// SequenceNumber is server-assigned under the same compare-and-swap
	// that bumps the negotiation version; it is the only ordering tie-break.
	SequenceNumber int64 `bun:",notnull"`

	ReadStatus bool      `bun:",default:false"`
	SentAt     time.Time `bun:",nullzero,notnull,default:current_timestamp"`

	Attachments    []Attachment    `bun:"type:jsonb,nullzero"`
	PriceReference *PriceReference `bun:"type:jsonb,nullzero"`

	// Unique index in migration:
	// CREATE UNIQUE INDEX idx_message_seq ON messages(negotiation_id, sequence_number);
}
