package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindi/config"
	"mindi/internal/advisor"
	advisormocks "mindi/internal/advisor/mocks"
	"mindi/internal/negotiation"
	"mindi/internal/negotiation/broker"
	"mindi/internal/negotiation/mocks"
	"mindi/internal/negotiation/model"
	"mindi/internal/negotiation/repository"
	appErrors "mindi/pkg/errors"
	"mindi/pkg/logger"
)

type fixture struct {
	uc       *NegotiationUsecase
	repo     *mocks.MockNegotiationRepository
	engine   *advisormocks.MockSuggestionEngine
	store    *mocks.MockAttachmentStore
	advisory *advisor.Cache
	broker   *broker.Broker
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	cfg := config.Config{}
	cfg.Negotiation.RetryBackoffMS = 1

	log, err := logger.NewLogger(&cfg)
	require.NoError(t, err)

	f := &fixture{
		repo:     mocks.NewMockNegotiationRepository(ctrl),
		engine:   advisormocks.NewMockSuggestionEngine(ctrl),
		store:    mocks.NewMockAttachmentStore(ctrl),
		advisory: advisor.NewCache(),
		broker:   broker.NewBroker(),
	}
	f.uc = NewNegotiationUsecase(f.repo, f.broker, f.engine, f.advisory, f.store, nil, *log, cfg)
	return f
}

func validProposal() negotiation.DealProposalCommand {
	return negotiation.DealProposalCommand{
		Commodity:        "Wheat",
		Quantity:         100,
		Unit:             "quintal",
		Quality:          "FAQ",
		DeliveryLocation: "Indore mandi",
		DeliveryDate:     time.Now().Add(14 * 24 * time.Hour),
		ProposedPrice:    2200,
	}
}

func activeNegotiation(buyerID, sellerID uuid.UUID) *model.Negotiation {
	return &model.Negotiation{
		ID:       uuid.New(),
		BuyerID:  buyerID,
		SellerID: sellerID,
		Proposal: model.DealProposal{
			Commodity:     "Wheat",
			Quantity:      100,
			Unit:          "quintal",
			Quality:       "FAQ",
			DeliveryDate:  time.Now().Add(14 * 24 * time.Hour),
			ProposedPrice: 2200,
		},
		CurrentOffer:   2200,
		Status:         model.StatusActive,
		Version:        0,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
		LastActivityAt: time.Now(),
	}
}

func Test_StartNegotiation(t *testing.T) {
	buyerID, sellerID := uuid.New(), uuid.New()

	t.Run("happy path - active with opening offer", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			CreateNegotiation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n *model.Negotiation) error {
				n.ID = uuid.New()
				n.CreatedAt = time.Now()
				n.UpdatedAt = n.CreatedAt
				n.LastActivityAt = n.CreatedAt
				return nil
			})

		dto, err := f.uc.StartNegotiation(context.Background(), negotiation.StartNegotiationCommand{
			BuyerID:     buyerID,
			SellerID:    sellerID,
			InitiatorID: buyerID,
			Proposal:    validProposal(),
		})
		require.NoError(t, err)
		assert.Equal(t, model.StatusActive, dto.Status)
		assert.Equal(t, 2200.0, dto.CurrentOffer)
		assert.Equal(t, int64(0), dto.Version)
		assert.Empty(t, dto.Messages)
	})

	t.Run("sad path - empty commodity", func(t *testing.T) {
		f := newFixture(t)
		cmd := negotiation.StartNegotiationCommand{BuyerID: buyerID, SellerID: sellerID, InitiatorID: buyerID, Proposal: validProposal()}
		cmd.Proposal.Commodity = ""

		_, err := f.uc.StartNegotiation(context.Background(), cmd)
		assert.ErrorIs(t, err, appErrors.ErrEmptyCommodity)
	})

	t.Run("sad path - zero quantity", func(t *testing.T) {
		f := newFixture(t)
		cmd := negotiation.StartNegotiationCommand{BuyerID: buyerID, SellerID: sellerID, InitiatorID: buyerID, Proposal: validProposal()}
		cmd.Proposal.Quantity = 0

		_, err := f.uc.StartNegotiation(context.Background(), cmd)
		assert.ErrorIs(t, err, appErrors.ErrInvalidQuantity)
	})

	t.Run("sad path - delivery date in the past", func(t *testing.T) {
		f := newFixture(t)
		cmd := negotiation.StartNegotiationCommand{BuyerID: buyerID, SellerID: sellerID, InitiatorID: buyerID, Proposal: validProposal()}
		cmd.Proposal.DeliveryDate = time.Now().Add(-time.Hour)

		_, err := f.uc.StartNegotiation(context.Background(), cmd)
		assert.ErrorIs(t, err, appErrors.ErrPastDeliveryDate)
	})

	t.Run("sad path - buyer equals seller", func(t *testing.T) {
		f := newFixture(t)
		cmd := negotiation.StartNegotiationCommand{BuyerID: buyerID, SellerID: buyerID, InitiatorID: buyerID, Proposal: validProposal()}

		_, err := f.uc.StartNegotiation(context.Background(), cmd)
		require.Error(t, err)
		assert.Equal(t, appErrors.CodeInvalidArgument, appErrors.CodeOf(err))
	})

	t.Run("sad path - initiator not a participant", func(t *testing.T) {
		f := newFixture(t)
		cmd := negotiation.StartNegotiationCommand{BuyerID: buyerID, SellerID: sellerID, InitiatorID: uuid.New(), Proposal: validProposal()}

		_, err := f.uc.StartNegotiation(context.Background(), cmd)
		assert.ErrorIs(t, err, appErrors.ErrNotParticipant)
	})

	t.Run("sad path - db down", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().CreateNegotiation(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		cmd := negotiation.StartNegotiationCommand{BuyerID: buyerID, SellerID: sellerID, InitiatorID: buyerID, Proposal: validProposal()}
		_, err := f.uc.StartNegotiation(context.Background(), cmd)
		require.Error(t, err)
		assert.Equal(t, appErrors.CodeInternal, appErrors.CodeOf(err))
	})
}

func Test_SendMessage(t *testing.T) {
	buyerID, sellerID := uuid.New(), uuid.New()

	t.Run("happy path - appends and bumps version", func(t *testing.T) {
		f := newFixture(t)
		n := activeNegotiation(buyerID, sellerID)

		f.repo.EXPECT().GetNegotiation(gomock.Any(), n.ID).Return(n, nil)
		f.repo.EXPECT().
			AppendMessage(gomock.Any(), n.ID, gomock.Any(), int64(0)).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, msg *model.Message, expected int64) (*model.Negotiation, error) {
				assert.Equal(t, buyerID, msg.SenderID)
				assert.Equal(t, sellerID, msg.ReceiverID, "receiver defaults to counterparty")
				assert.NotEmpty(t, msg.ID)

				committed := *n
				msg.SequenceNumber = expected + 1
				committed.Version = expected + 1
				committed.Messages = []*model.Message{msg}
				return &committed, nil
			})

		dto, err := f.uc.SendMessage(context.Background(), n.ID, negotiation.SendMessageCommand{
			SenderID: buyerID,
			Text:     "Is the wheat machine-cleaned?",
		}, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(1), dto.Version)
		require.Len(t, dto.Messages, 1)
		assert.Equal(t, int64(1), dto.Messages[0].SequenceNumber)
	})

	t.Run("sad path - empty message", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.SendMessage(context.Background(), uuid.New(), negotiation.SendMessageCommand{SenderID: buyerID}, 0)
		assert.ErrorIs(t, err, appErrors.ErrEmptyMessage)
	})

	t.Run("sad path - unknown negotiation", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.repo.EXPECT().GetNegotiation(gomock.Any(), id).Return(nil, repository.ErrNegotiationNotFound)

		_, err := f.uc.SendMessage(context.Background(), id, negotiation.SendMessageCommand{SenderID: buyerID, Text: "hi"}, 0)
		assert.ErrorIs(t, err, appErrors.ErrNegotiationNotFound)
	})

	t.Run("sad path - sender not a participant", func(t *testing.T) {
		f := newFixture(t)
		n := activeNegotiation(buyerID, sellerID)
		f.repo.EXPECT().GetNegotiation(gomock.Any(), n.ID).Return(n, nil)

		_, err := f.uc.SendMessage(context.Background(), n.ID, negotiation.SendMessageCommand{SenderID: uuid.New(), Text: "hi"}, 0)
		assert.ErrorIs(t, err, appErrors.ErrNotParticipant)
	})

	t.Run("sad path - terminal session", func(t *testing.T) {
		f := newFixture(t)
		n := activeNegotiation(buyerID, sellerID)
		f.repo.EXPECT().GetNegotiation(gomock.Any(), n.ID).Return(n, nil)
		f.repo.EXPECT().AppendMessage(gomock.Any(), n.ID, gomock.Any(), int64(0)).Return(nil, repository.ErrNotActive)

		_, err := f.uc.SendMessage(context.Background(), n.ID, negotiation.SendMessageCommand{SenderID: buyerID, Text: "hi"}, 0)
		assert.ErrorIs(t, err, appErrors.ErrNegotiationNotActive)
	})

	t.Run("sad path - stale version surfaces conflict after one retry", func(t *testing.T) {
		f := newFixture(t)
		n := activeNegotiation(buyerID, sellerID)
		f.repo.EXPECT().GetNegotiation(gomock.Any(), n.ID).Return(n, nil)
		f.repo.EXPECT().
			AppendMessage(gomock.Any(), n.ID, gomock.Any(), int64(0)).
			Return(nil, repository.ErrVersionConflict).
			Times(2)

		_, err := f.uc.SendMessage(context.Background(), n.ID, negotiation.SendMessageCommand{SenderID: buyerID, Text: "hi"}, 0)
		assert.ErrorIs(t, err, appErrors.ErrVersionConflict)
	})

	t.Run("transient conflict absorbed by the single retry", func(t *testing.T) {
		f := newFixture(t)
		n := activeNegotiation(buyerID, sellerID)
		f.repo.EXPECT().GetNegotiation(gomock.Any(), n.ID).Return(n, nil)

		committed := *n
		committed.Version = 1
		gomock.InOrder(
			f.repo.EXPECT().AppendMessage(gomock.Any(), n.ID, gomock.Any(), int64(0)).Return(nil, repository.ErrVersionConflict),
			f.repo.EXPECT().AppendMessage(gomock.Any(), n.ID, gomock.Any(), int64(0)).Return(&committed, nil),
		)

		dto, err := f.uc.SendMessage(context.Background(), n.ID, negotiation.SendMessageCommand{SenderID: buyerID, Text: "hi"}, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(1), dto.Version)
	})

	t.Run("sad path - invalid attachment", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.SendMessage(context.Background(), uuid.New(), negotiation.SendMessageCommand{
			SenderID:    buyerID,
			Attachments: []model.Attachment{{ID: "a", Type: model.AttachmentVoice, Filename: "v.ogg", Size: 12}},
		}, 0)
		require.Error(t, err)
		assert.Equal(t, appErrors.CodeInvalidArgument, appErrors.CodeOf(err))
	})
}

func Test_MakeCounterOffer(t *testing.T) {
	buyerID, sellerID := uuid.New(), uuid.New()

	t.Run("happy path - offer advances and advisory refreshes", func(t *testing.T) {
		f := newFixture(t)
		n := activeNegotiation(buyerID, sellerID)

		f.repo.EXPECT().GetNegotiation(gomock.Any(), n.ID).Return(n, nil)
		f.repo.EXPECT().
			AppendMessage(gomock.Any(), n.ID, gomock.Any(), int64(0)).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, msg *model.Message, expected int64) (*model.Negotiation, error) {
				require.NotNil(t, msg.PriceReference)
				assert.Equal(t, 2300.0, msg.PriceReference.Price)
				assert.Equal(t, "Wheat", msg.PriceReference.Commodity)

				committed := *n
				msg.SequenceNumber = expected + 1
				committed.Version = expected + 1
				committed.CurrentOffer = msg.PriceReference.Price
				committed.Messages = []*model.Message{msg}
				return &committed, nil
			})

		f.engine.EXPECT().
			GetSuggestedCounterOffer(gomock.Any(), gomock.Any(), 2300.0, model.RoleBuyer).
			Return(&advisor.NegotiationSuggestion{SuggestedPrice: 2250, Reasoning: "market is soft", Confidence: 0.8}, nil)
		f.engine.EXPECT().
			GetMarketComparison(gomock.Any(), "Wheat", 2300.0).
			Return(&advisor.MarketComparison{CurrentMarketPrice: 2280, Trend: "stable"}, nil)

		dto, err := f.uc.MakeCounterOffer(context.Background(), n.ID, 2300, sellerID, 0)
		require.NoError(t, err)
		assert.Equal(t, 2300.0, dto.CurrentOffer)
		assert.Equal(t, int64(1), dto.Version)

		require.Eventually(t, func() bool {
			adv, ok := f.advisory.Get(n.ID)
			return ok && !adv.Stale && adv.Suggestion != nil
		}, 2*time.Second, 10*time.Millisecond)

		adv, _ := f.advisory.Get(n.ID)
		assert.Equal(t, 2250.0, adv.Suggestion.SuggestedPrice)
		assert.Equal(t, int64(1), adv.Version)
		require.NotNil(t, adv.Market)
		assert.Equal(t, "stable", adv.Market.Trend)
	})

	t.Run("engine failure degrades advisory only", func(t *testing.T) {
		f := newFixture(t)
		n := activeNegotiation(buyerID, sellerID)

		f.repo.EXPECT().GetNegotiation(gomock.Any(), n.ID).Return(n, nil)
		f.repo.EXPECT().
			AppendMessage(gomock.Any(), n.ID, gomock.Any(), int64(0)).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, msg *model.Message, expected int64) (*model.Negotiation, error) {
				committed := *n
				committed.Version = expected + 1
				committed.CurrentOffer = msg.PriceReference.Price
				committed.Messages = []*model.Message{msg}
				return &committed, nil
			})
		f.engine.EXPECT().
			GetSuggestedCounterOffer(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("deadline exceeded"))

		dto, err := f.uc.MakeCounterOffer(context.Background(), n.ID, 2300, sellerID, 0)
		require.NoError(t, err, "advisory failure must not fail the offer")
		assert.Equal(t, 2300.0, dto.CurrentOffer)

		require.Eventually(t, func() bool {
			adv, ok := f.advisory.Get(n.ID)
			return ok && adv.Stale
		}, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("sad path - non-positive price", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.MakeCounterOffer(context.Background(), uuid.New(), 0, sellerID, 0)
		assert.ErrorIs(t, err, appErrors.ErrInvalidPrice)
	})

	t.Run("sad path - stale caller gets conflict", func(t *testing.T) {
		f := newFixture(t)
		n := activeNegotiation(buyerID, sellerID)
		f.repo.EXPECT().GetNegotiation(gomock.Any(), n.ID).Return(n, nil)
		f.repo.EXPECT().
			AppendMessage(gomock.Any(), n.ID, gomock.Any(), int64(0)).
			Return(nil, repository.ErrVersionConflict).
			Times(2)

		_, err := f.uc.MakeCounterOffer(context.Background(), n.ID, 2250, buyerID, 0)
		assert.ErrorIs(t, err, appErrors.ErrVersionConflict)
	})
}

func Test_Cancel(t *testing.T) {
	buyerID, sellerID := uuid.New(), uuid.New()

	t.Run("participant cancel", func(t *testing.T) {
		f := newFixture(t)
		n := activeNegotiation(buyerID, sellerID)

		f.repo.EXPECT().GetNegotiation(gomock.Any(), n.ID).Return(n, nil)
		f.repo.EXPECT().
			UpdateStatus(gomock.Any(), n.ID, model.StatusActive, model.StatusCancelled, "changed my mind", int64(0)).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _, to model.Status, reason string, expected int64) (*model.Negotiation, error) {
				committed := *n
				committed.Status = to
				committed.CancelReason = reason
				committed.Version = expected + 1
				return &committed, nil
			})

		dto, err := f.uc.Cancel(context.Background(), n.ID, buyerID, "changed my mind")
		require.NoError(t, err)
		assert.Equal(t, model.StatusCancelled, dto.Status)
		assert.Equal(t, int64(1), dto.Version)
	})

	t.Run("system cancel expires", func(t *testing.T) {
		f := newFixture(t)
		n := activeNegotiation(buyerID, sellerID)

		f.repo.EXPECT().GetNegotiation(gomock.Any(), n.ID).Return(n, nil)
		f.repo.EXPECT().
			UpdateStatus(gomock.Any(), n.ID, model.StatusActive, model.StatusExpired, "idle timeout", int64(0)).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _, to model.Status, reason string, expected int64) (*model.Negotiation, error) {
				committed := *n
				committed.Status = to
				committed.CancelReason = reason
				committed.Version = expected + 1
				return &committed, nil
			})

		dto, err := f.uc.Cancel(context.Background(), n.ID, uuid.Nil, "idle timeout")
		require.NoError(t, err)
		assert.Equal(t, model.StatusExpired, dto.Status)
	})

	t.Run("sad path - outsider cannot cancel", func(t *testing.T) {
		f := newFixture(t)
		n := activeNegotiation(buyerID, sellerID)
		f.repo.EXPECT().GetNegotiation(gomock.Any(), n.ID).Return(n, nil)

		_, err := f.uc.Cancel(context.Background(), n.ID, uuid.New(), "nope")
		assert.ErrorIs(t, err, appErrors.ErrNotParticipant)
	})

	t.Run("sad path - already terminal", func(t *testing.T) {
		f := newFixture(t)
		n := activeNegotiation(buyerID, sellerID)
		n.Status = model.StatusFinalized
		f.repo.EXPECT().GetNegotiation(gomock.Any(), n.ID).Return(n, nil)

		_, err := f.uc.Cancel(context.Background(), n.ID, buyerID, "too late")
		assert.ErrorIs(t, err, appErrors.ErrNegotiationNotActive)
	})
}

func Test_SubscribeToNegotiation(t *testing.T) {
	buyerID, sellerID := uuid.New(), uuid.New()

	t.Run("unknown id", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.repo.EXPECT().GetNegotiation(gomock.Any(), id).Return(nil, repository.ErrNegotiationNotFound)

		_, _, err := f.uc.SubscribeToNegotiation(context.Background(), id)
		assert.ErrorIs(t, err, appErrors.ErrNegotiationNotFound)
	})

	t.Run("mutation delivers one update per subscriber", func(t *testing.T) {
		f := newFixture(t)
		n := activeNegotiation(buyerID, sellerID)

		f.repo.EXPECT().GetNegotiation(gomock.Any(), n.ID).Return(n, nil).Times(3)
		f.repo.EXPECT().
			AppendMessage(gomock.Any(), n.ID, gomock.Any(), int64(0)).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, msg *model.Message, expected int64) (*model.Negotiation, error) {
				committed := *n
				committed.Version = expected + 1
				committed.Messages = []*model.Message{msg}
				return &committed, nil
			})

		ch1, cancel1, err := f.uc.SubscribeToNegotiation(context.Background(), n.ID)
		require.NoError(t, err)
		defer cancel1()
		ch2, cancel2, err := f.uc.SubscribeToNegotiation(context.Background(), n.ID)
		require.NoError(t, err)
		defer cancel2()

		_, err = f.uc.SendMessage(context.Background(), n.ID, negotiation.SendMessageCommand{SenderID: buyerID, Text: "hello"}, 0)
		require.NoError(t, err)

		for _, ch := range []<-chan negotiation.NegotiationUpdate{ch1, ch2} {
			select {
			case u := <-ch:
				assert.Equal(t, n.ID, u.NegotiationID)
				assert.Equal(t, int64(1), u.Version)
				require.NotNil(t, u.Negotiation)
				assert.Equal(t, int64(1), u.Negotiation.Version)
			case <-time.After(2 * time.Second):
				t.Fatal("timed out waiting for update")
			}
		}
	})
}

func Test_ResolveAttachment(t *testing.T) {
	buyerID, sellerID := uuid.New(), uuid.New()

	withAttachment := func() *model.Negotiation {
		n := activeNegotiation(buyerID, sellerID)
		n.Messages = []*model.Message{{
			ID:             "01J00000000000000000000000",
			SenderID:       buyerID,
			SequenceNumber: 1,
			Attachments: []model.Attachment{{
				ID: "att-1", Type: model.AttachmentImage, Filename: "sample.jpg", Size: 1024, MimeType: "image/jpeg",
			}},
		}}
		return n
	}

	t.Run("happy path", func(t *testing.T) {
		f := newFixture(t)
		n := withAttachment()
		f.repo.EXPECT().GetNegotiation(gomock.Any(), n.ID).Return(n, nil)
		f.store.EXPECT().
			Resolve(gomock.Any(), "att-1").
			Return(&negotiation.ContentLocator{URL: "https://cdn.example/att-1", ExpiresAt: time.Now().Add(time.Hour)}, nil)

		locator, err := f.uc.ResolveAttachment(context.Background(), n.ID, "att-1")
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example/att-1", locator.URL)
	})

	t.Run("sad path - attachment not on this negotiation", func(t *testing.T) {
		f := newFixture(t)
		n := withAttachment()
		f.repo.EXPECT().GetNegotiation(gomock.Any(), n.ID).Return(n, nil)

		_, err := f.uc.ResolveAttachment(context.Background(), n.ID, "att-unknown")
		assert.ErrorIs(t, err, appErrors.ErrAttachmentNotFound)
	})

	t.Run("sad path - store down degrades to unavailable", func(t *testing.T) {
		f := newFixture(t)
		n := withAttachment()
		f.repo.EXPECT().GetNegotiation(gomock.Any(), n.ID).Return(n, nil)
		f.store.EXPECT().Resolve(gomock.Any(), "att-1").Return(nil, errors.New("store down"))

		_, err := f.uc.ResolveAttachment(context.Background(), n.ID, "att-1")
		require.Error(t, err)
		assert.Equal(t, appErrors.CodeUnavailable, appErrors.CodeOf(err))
	})
}
