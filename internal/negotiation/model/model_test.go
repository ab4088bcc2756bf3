package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newUUID(t *testing.T) uuid.UUID {
	t.Helper()
	return uuid.New()
}

func newTestNegotiation(t *testing.T) *Negotiation {
	t.Helper()
	agentID := uuid.New()
	return &Negotiation{
		ID:       uuid.New(),
		BuyerID:  uuid.New(),
		SellerID: uuid.New(),
		AgentID:  &agentID,
		Status:   StatusActive,
	}
}

func Test_StatusTerminal(t *testing.T) {
	assert.False(t, StatusInitiated.Terminal())
	assert.False(t, StatusActive.Terminal())
	assert.True(t, StatusFinalized.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.True(t, StatusExpired.Terminal())
}

func Test_HasTurnFrom(t *testing.T) {
	n := newTestNegotiation(t)
	assert.False(t, n.HasTurnFrom(n.BuyerID))

	n.Messages = append(n.Messages, &Message{SenderID: n.BuyerID, SequenceNumber: 1})
	assert.True(t, n.HasTurnFrom(n.BuyerID))
	assert.False(t, n.HasTurnFrom(n.SellerID))
}

func Test_Counterparty(t *testing.T) {
	n := newTestNegotiation(t)
	assert.Equal(t, n.SellerID, n.Counterparty(n.BuyerID))
	assert.Equal(t, n.BuyerID, n.Counterparty(n.SellerID))
	assert.Equal(t, n.BuyerID, n.Counterparty(*n.AgentID))
}
