package usecase

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"

	"mindi/config"
	"mindi/internal/deal"
	dealmodel "mindi/internal/deal/model"
	dealrepo "mindi/internal/deal/repository"
	"mindi/internal/negotiation"
	"mindi/internal/negotiation/broker"
	"mindi/internal/negotiation/model"
	"mindi/internal/negotiation/repository"
	"mindi/pkg/errors"
	"mindi/pkg/logger"
	"mindi/pkg/utils"
)

// FinalizationService freezes an active negotiation into binding deal terms.
// It shares the per-session key lock with the session usecase so its status
// commit is fanned out in commit order with message appends.
type FinalizationService struct {
	negotiations negotiation.NegotiationRepository
	terms        deal.DealTermsRepository
	broker       *broker.Broker
	reputation   deal.ReputationAggregator
	sessions     *utils.KeyedMutex
	logger       logger.Logger
	config       config.Config
}

func NewFinalizationService(
	negotiations negotiation.NegotiationRepository,
	terms deal.DealTermsRepository,
	b *broker.Broker,
	reputation deal.ReputationAggregator,
	sessions *utils.KeyedMutex,
	logger logger.Logger,
	config config.Config,
) *FinalizationService {
	if sessions == nil {
		sessions = utils.NewKeyedMutex()
	}
	return &FinalizationService{
		negotiations: negotiations,
		terms:        terms,
		broker:       b,
		reputation:   reputation,
		sessions:     sessions,
		logger:       logger,
		config:       config,
	}
}

func (s *FinalizationService) FinalizeAgreement(ctx context.Context, negotiationID uuid.UUID, cmd deal.FinalizeCommand, actorID uuid.UUID) (*deal.DealTermsDTO, error) {
	s.sessions.Lock(negotiationID)
	defer s.sessions.Unlock(negotiationID)

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			time.Sleep(utils.JitteredBackoff(s.retryBackoff()))
		}

		n, err := s.negotiations.GetNegotiation(ctx, negotiationID)
		if err != nil {
			return nil, s.mapRepoError(err)
		}

		if err := s.validate(n, actorID); err != nil {
			return nil, err
		}

		terms := &dealmodel.DealTerms{
			Commodity:     n.Proposal.Commodity,
			Quantity:      n.Proposal.Quantity,
			Unit:          n.Proposal.Unit,
			Quality:       n.Proposal.Quality,
			DeliveryTerms: cmd.DeliveryTerms,
			PaymentTerms:  cmd.PaymentTerms,
			FinalizedBy:   actorID,
		}

		// Status flip and terms insert commit together; the repository
		// freezes AgreedPrice and FinalizedAt from the committed row.
		committed, err := s.terms.FinalizeNegotiation(ctx, negotiationID, terms, n.Version)
		if err != nil {
			lastErr = err
			if stderrors.Is(err, repository.ErrVersionConflict) {
				continue
			}
			return nil, s.mapRepoError(err)
		}

		s.publishCommitted(committed)
		s.emitTransactionCompleted(committed, terms)

		return deal.ToDealTermsDTO(terms), nil
	}
	return nil, s.mapRepoError(lastErr)
}

func (s *FinalizationService) GetDealTerms(ctx context.Context, negotiationID uuid.UUID) (*deal.DealTermsDTO, error) {
	terms, err := s.terms.GetDealTermsByNegotiation(ctx, negotiationID)
	if err != nil {
		if stderrors.Is(err, dealrepo.ErrDealTermsNotFound) {
			return nil, errors.NotFound("deal terms not found")
		}
		s.logger.Error("repository error", "err", err)
		return nil, errors.Internal("internal server error")
	}
	return deal.ToDealTermsDTO(terms), nil
}

func (s *FinalizationService) validate(n *model.Negotiation, actorID uuid.UUID) error {
	if n.Status != model.StatusActive {
		return errors.ErrNegotiationNotActive
	}
	// No zero-turn finalization.
	if !n.HasTurnFrom(n.BuyerID) || !n.HasTurnFrom(n.SellerID) {
		return errors.ErrNoTurnFromBothParties
	}
	role, ok := n.RoleOf(actorID)
	if !ok {
		return errors.ErrFinalizeNotAllowed
	}
	if role == model.RoleAgent && !n.AgentCanFinalize {
		return errors.ErrFinalizeNotAllowed
	}
	return nil
}

func (s *FinalizationService) publishCommitted(n *model.Negotiation) {
	s.broker.Publish(negotiation.NegotiationUpdate{
		NegotiationID: n.ID,
		Version:       n.Version,
		Status:        n.Status,
		Negotiation:   negotiation.ToNegotiationDTO(n),
		CommittedAt:   n.UpdatedAt,
	})
}

// emitTransactionCompleted sends one raw signal per party to the external
// reputation aggregator, detached so a slow aggregator never blocks
// finalization.
func (s *FinalizationService) emitTransactionCompleted(n *model.Negotiation, terms *dealmodel.DealTerms) {
	if s.reputation == nil {
		return
	}
	latency := AverageResponseLatency(n.Messages)

	events := []dealmodel.TransactionCompleted{
		{
			ParticipantID:          n.BuyerID,
			CounterpartyID:         n.SellerID,
			DealAmount:             terms.AgreedPrice * terms.Quantity,
			AverageResponseLatency: latency,
			Commodity:              terms.Commodity,
			CompletedAt:            terms.FinalizedAt,
		},
		{
			ParticipantID:          n.SellerID,
			CounterpartyID:         n.BuyerID,
			DealAmount:             terms.AgreedPrice * terms.Quantity,
			AverageResponseLatency: latency,
			Commodity:              terms.Commodity,
			CompletedAt:            terms.FinalizedAt,
		},
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.collaboratorTimeout())
		defer cancel()
		for _, ev := range events {
			if err := s.reputation.RecordTransaction(ctx, ev); err != nil {
				s.logger.Warn("reputation aggregator unavailable", "negotiation_id", n.ID, "participant_id", ev.ParticipantID, "err", err)
			}
		}
	}()
}

// AverageResponseLatency averages the gaps between consecutive messages from
// different senders, in sequence order. Zero when nobody ever replied.
func AverageResponseLatency(messages []*model.Message) time.Duration {
	var total time.Duration
	var count int64
	for i := 1; i < len(messages); i++ {
		prev, cur := messages[i-1], messages[i]
		if prev.SenderID == cur.SenderID {
			continue
		}
		gap := cur.SentAt.Sub(prev.SentAt)
		if gap < 0 {
			continue
		}
		total += gap
		count++
	}
	if count == 0 {
		return 0
	}
	return total / time.Duration(count)
}

func (s *FinalizationService) mapRepoError(err error) error {
	switch {
	case stderrors.Is(err, repository.ErrNegotiationNotFound):
		return errors.ErrNegotiationNotFound
	case stderrors.Is(err, repository.ErrNotActive):
		return errors.ErrNegotiationNotActive
	case stderrors.Is(err, repository.ErrVersionConflict):
		return errors.ErrVersionConflict
	}
	s.logger.Error("repository error", "err", err)
	return errors.Internal("internal server error")
}

func (s *FinalizationService) retryBackoff() time.Duration {
	if s.config.Negotiation.RetryBackoffMS > 0 {
		return time.Duration(s.config.Negotiation.RetryBackoffMS) * time.Millisecond
	}
	return 25 * time.Millisecond
}

func (s *FinalizationService) collaboratorTimeout() time.Duration {
	if s.config.Advisor.TimeoutSeconds > 0 {
		return time.Duration(s.config.Advisor.TimeoutSeconds) * time.Second
	}
	return 5 * time.Second
}
