package advisor

import (
	"context"

	"mindi/internal/negotiation/model"
)

// NegotiationSuggestion is the engine's advisory counter-offer for one side
// of the table.
type NegotiationSuggestion struct {
	SuggestedPrice float64 `json:"suggested_price"`
	Reasoning      string  `json:"reasoning"`
	Confidence     float64 `json:"confidence"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type MarketComparison struct {
	CurrentMarketPrice float64    `json:"current_market_price"`
	PriceRange         PriceRange `json:"price_range"`
	Trend              string     `json:"trend"` // rising, falling, stable
}

// SuggestionEngine is the external advisory collaborator. Calls always run
// off the mutation path with a bounded-timeout context; failures degrade the
// advisory display and never the message flow.
type SuggestionEngine interface {
	GetSuggestedCounterOffer(ctx context.Context, n *model.Negotiation, currentOffer float64, role model.Role) (*NegotiationSuggestion, error)
	GetMarketComparison(ctx context.Context, commodity string, currentOffer float64) (*MarketComparison, error)
}
