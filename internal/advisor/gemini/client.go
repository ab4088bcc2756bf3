package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"mindi/internal/advisor"
	"mindi/internal/negotiation/model"
)

const defaultModel = "gemini-2.0-flash-001"

// Client implements advisor.SuggestionEngine on top of the Gemini API.
type Client struct {
	model *genai.GenerativeModel
}

func NewClient(ctx context.Context, apiKey, modelName string) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	if modelName == "" {
		modelName = defaultModel
	}
	m := client.GenerativeModel(modelName)

	// Set response MIME type to JSON
	m.ResponseMIMEType = "application/json"

	return &Client{model: m}, nil
}

func (c *Client) GetSuggestedCounterOffer(ctx context.Context, n *model.Negotiation, currentOffer float64, role model.Role) (*advisor.NegotiationSuggestion, error) {
	historyText := ""
	for _, msg := range n.Messages {
		side := "Buyer"
		if msg.SenderID == n.SellerID {
			side = "Seller"
		}
		line := msg.OriginalText
		if msg.PriceReference != nil {
			line = fmt.Sprintf("offered %.2f per %s", msg.PriceReference.Price, msg.PriceReference.Unit)
		}
		historyText += fmt.Sprintf("- %s: %s\n", side, line)
	}

	promptText := fmt.Sprintf(`
You are a pricing advisor for agricultural commodity negotiations on an Indian mandi trading platform.
You advise the **%s** side. Do not roleplay the conversation; only produce pricing advice.

**Deal Context:**
- Commodity: %s
- Quantity: %.2f %s
- Quality grade: %s
- Delivery location: %s
- Opening price: %.2f per %s
- Current offer on the table: %.2f per %s

**Negotiation History:**
%s

**Instructions:**
1. Suggest the next counter-offer price for the %s side, realistic for mandi trade.
2. Explain the reasoning in one or two sentences.
3. Estimate your confidence between 0 and 1.

Respond in **JSON** only.

JSON Schema:
{
  "suggested_price": 0.0,
  "reasoning": "...",
  "confidence": 0.0
}
`, role, n.Proposal.Commodity, n.Proposal.Quantity, n.Proposal.Unit, n.Proposal.Quality,
		n.Proposal.DeliveryLocation, n.Proposal.ProposedPrice, n.Proposal.Unit,
		currentOffer, n.Proposal.Unit, historyText, role)

	var suggestion advisor.NegotiationSuggestion
	if err := c.generateJSON(ctx, promptText, &suggestion); err != nil {
		return nil, err
	}
	return &suggestion, nil
}

func (c *Client) GetMarketComparison(ctx context.Context, commodity string, currentOffer float64) (*advisor.MarketComparison, error) {
	promptText := fmt.Sprintf(`
You are a market data assistant for Indian agricultural mandi prices.

Estimate the current wholesale market price for **%s**, a plausible trading
range and the short-term trend, and relate it to an offer of %.2f currently
on the table.

Respond in **JSON** only.

JSON Schema:
{
  "current_market_price": 0.0,
  "price_range": {"min": 0.0, "max": 0.0},
  "trend": "rising" | "falling" | "stable"
}
`, commodity, currentOffer)

	var comparison advisor.MarketComparison
	if err := c.generateJSON(ctx, promptText, &comparison); err != nil {
		return nil, err
	}
	return &comparison, nil
}

func (c *Client) generateJSON(ctx context.Context, promptText string, out any) error {
	resp, err := c.model.GenerateContent(ctx, genai.Text(promptText))
	if err != nil {
		return err
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("empty response from Gemini")
	}

	part := resp.Candidates[0].Content.Parts[0]
	txt, ok := part.(genai.Text)
	if !ok {
		return fmt.Errorf("unexpected response type")
	}

	if err := json.Unmarshal([]byte(txt), out); err != nil {
		return fmt.Errorf("failed to parse JSON: %v", err)
	}
	return nil
}
