package usecase

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"mindi/config"
	"mindi/internal/advisor"
	"mindi/internal/negotiation"
	"mindi/internal/negotiation/broker"
	"mindi/internal/negotiation/model"
	"mindi/internal/negotiation/repository"
	"mindi/pkg/errors"
	"mindi/pkg/logger"
	"mindi/pkg/utils"
)

// NegotiationUsecase is the session state machine. Every mutation is a
// compare-and-swap against the caller's expected version; commit and fan-out
// run under a per-session key lock so subscribers observe commit order.
type NegotiationUsecase struct {
	repo     negotiation.NegotiationRepository
	broker   *broker.Broker
	engine   advisor.SuggestionEngine
	advisory *advisor.Cache
	store    negotiation.AttachmentStore
	sessions *utils.KeyedMutex
	logger   logger.Logger
	config   config.Config
}

func NewNegotiationUsecase(
	repo negotiation.NegotiationRepository,
	b *broker.Broker,
	engine advisor.SuggestionEngine,
	advisory *advisor.Cache,
	store negotiation.AttachmentStore,
	sessions *utils.KeyedMutex,
	logger logger.Logger,
	config config.Config,
) *NegotiationUsecase {
	if sessions == nil {
		sessions = utils.NewKeyedMutex()
	}
	return &NegotiationUsecase{
		repo:     repo,
		broker:   b,
		engine:   engine,
		advisory: advisory,
		store:    store,
		sessions: sessions,
		logger:   logger,
		config:   config,
	}
}

func (uc *NegotiationUsecase) StartNegotiation(ctx context.Context, cmd negotiation.StartNegotiationCommand) (*negotiation.NegotiationDTO, error) {
	if err := validateProposal(cmd.Proposal); err != nil {
		return nil, err
	}
	if cmd.BuyerID == uuid.Nil || cmd.SellerID == uuid.Nil {
		return nil, errors.InvalidArg("buyer and seller are required")
	}
	if cmd.BuyerID == cmd.SellerID {
		return nil, errors.InvalidArg("buyer and seller must be different parties")
	}

	n := &model.Negotiation{
		BuyerID:          cmd.BuyerID,
		SellerID:         cmd.SellerID,
		AgentID:          cmd.AgentID,
		AgentCanFinalize: cmd.AgentCanFinalize,
		Proposal: model.DealProposal{
			Commodity:        cmd.Proposal.Commodity,
			Quantity:         cmd.Proposal.Quantity,
			Unit:             cmd.Proposal.Unit,
			Quality:          cmd.Proposal.Quality,
			DeliveryLocation: cmd.Proposal.DeliveryLocation,
			DeliveryDate:     cmd.Proposal.DeliveryDate,
			ProposedPrice:    cmd.Proposal.ProposedPrice,
		},
		CurrentOffer: cmd.Proposal.ProposedPrice,
		Status:       model.StatusActive,
		Version:      0,
	}
	if _, ok := n.RoleOf(cmd.InitiatorID); !ok {
		return nil, errors.ErrNotParticipant
	}

	if err := uc.repo.CreateNegotiation(ctx, n); err != nil {
		uc.logger.Error("error while creating negotiation", "err", err)
		return nil, errors.ErrStartFailed(err)
	}

	return negotiation.ToNegotiationDTO(n), nil
}

func (uc *NegotiationUsecase) GetNegotiation(ctx context.Context, negotiationID uuid.UUID) (*negotiation.NegotiationDTO, error) {
	n, err := uc.repo.GetNegotiation(ctx, negotiationID)
	if err != nil {
		return nil, uc.mapRepoError(err)
	}
	return negotiation.ToNegotiationDTO(n), nil
}

func (uc *NegotiationUsecase) SendMessage(ctx context.Context, negotiationID uuid.UUID, cmd negotiation.SendMessageCommand, expectedVersion int64) (*negotiation.NegotiationDTO, error) {
	if cmd.Text == "" && len(cmd.Attachments) == 0 {
		return nil, errors.ErrEmptyMessage
	}
	msgType := cmd.MessageType
	if msgType == "" {
		msgType = model.MessageTypeText
	}
	if !msgType.Valid() {
		return nil, errors.InvalidArg("unknown message type")
	}
	for _, att := range cmd.Attachments {
		if err := att.Validate(); err != nil {
			return nil, err
		}
	}

	n, err := uc.repo.GetNegotiation(ctx, negotiationID)
	if err != nil {
		return nil, uc.mapRepoError(err)
	}
	if _, ok := n.RoleOf(cmd.SenderID); !ok {
		return nil, errors.ErrNotParticipant
	}
	receiverID := cmd.ReceiverID
	if receiverID == uuid.Nil {
		receiverID = n.Counterparty(cmd.SenderID)
	} else if _, ok := n.RoleOf(receiverID); !ok {
		return nil, errors.ErrNotParticipant
	}

	language := cmd.Language
	if language == "" {
		language = "en"
	}

	msg := &model.Message{
		ID:               ulid.Make().String(),
		SenderID:         cmd.SenderID,
		ReceiverID:       receiverID,
		OriginalText:     cmd.Text,
		OriginalLanguage: language,
		MessageType:      msgType,
		Attachments:      cmd.Attachments,
	}

	committed, err := uc.appendWithRetry(ctx, negotiationID, msg, expectedVersion)
	if err != nil {
		return nil, err
	}
	return negotiation.ToNegotiationDTO(committed), nil
}

func (uc *NegotiationUsecase) MakeCounterOffer(ctx context.Context, negotiationID uuid.UUID, price float64, senderID uuid.UUID, expectedVersion int64) (*negotiation.NegotiationDTO, error) {
	if price <= 0 {
		return nil, errors.ErrInvalidPrice
	}

	n, err := uc.repo.GetNegotiation(ctx, negotiationID)
	if err != nil {
		return nil, uc.mapRepoError(err)
	}
	if _, ok := n.RoleOf(senderID); !ok {
		return nil, errors.ErrNotParticipant
	}

	msg := &model.Message{
		ID:               ulid.Make().String(),
		SenderID:         senderID,
		ReceiverID:       n.Counterparty(senderID),
		OriginalText:     fmt.Sprintf("Counter-offer: %.2f per %s", price, n.Proposal.Unit),
		OriginalLanguage: "en",
		MessageType:      model.MessageTypeText,
		PriceReference: &model.PriceReference{
			Commodity: n.Proposal.Commodity,
			Price:     price,
			Unit:      n.Proposal.Unit,
			Quality:   n.Proposal.Quality,
			Timestamp: time.Now(),
			Source:    "participant",
		},
	}

	committed, err := uc.appendWithRetry(ctx, negotiationID, msg, expectedVersion)
	if err != nil {
		return nil, err
	}

	uc.refreshAdvisory(committed, msg.ReceiverID)

	return negotiation.ToNegotiationDTO(committed), nil
}

// Cancel moves an active session to a terminal status. A zero actor id is
// the system (idle reaper) and yields Expired; a participant yields
// Cancelled. Unlike message appends the caller carries no version, so a
// conflicting commit is absorbed by one refetch+retry.
func (uc *NegotiationUsecase) Cancel(ctx context.Context, negotiationID uuid.UUID, actorID uuid.UUID, reason string) (*negotiation.NegotiationDTO, error) {
	target := model.StatusExpired
	if actorID != uuid.Nil {
		target = model.StatusCancelled
	}

	uc.sessions.Lock(negotiationID)
	defer uc.sessions.Unlock(negotiationID)

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			time.Sleep(utils.JitteredBackoff(uc.retryBackoff()))
		}

		n, err := uc.repo.GetNegotiation(ctx, negotiationID)
		if err != nil {
			return nil, uc.mapRepoError(err)
		}
		if actorID != uuid.Nil {
			if _, ok := n.RoleOf(actorID); !ok {
				return nil, errors.ErrNotParticipant
			}
		}
		if n.Status != model.StatusActive {
			return nil, errors.ErrNegotiationNotActive
		}

		committed, err := uc.repo.UpdateStatus(ctx, negotiationID, model.StatusActive, target, reason, n.Version)
		if err != nil {
			lastErr = err
			if stderrors.Is(err, repository.ErrVersionConflict) {
				continue
			}
			return nil, uc.mapRepoError(err)
		}

		uc.advisory.Drop(negotiationID)
		uc.publishCommitted(committed)
		return negotiation.ToNegotiationDTO(committed), nil
	}
	return nil, uc.mapRepoError(lastErr)
}

func (uc *NegotiationUsecase) SubscribeToNegotiation(ctx context.Context, negotiationID uuid.UUID) (<-chan negotiation.NegotiationUpdate, negotiation.UnsubscribeFunc, error) {
	if _, err := uc.repo.GetNegotiation(ctx, negotiationID); err != nil {
		return nil, nil, uc.mapRepoError(err)
	}
	ch, cancel := uc.broker.Subscribe(negotiationID)
	return ch, cancel, nil
}

func (uc *NegotiationUsecase) ResolveAttachment(ctx context.Context, negotiationID uuid.UUID, attachmentID string) (*negotiation.ContentLocator, error) {
	n, err := uc.repo.GetNegotiation(ctx, negotiationID)
	if err != nil {
		return nil, uc.mapRepoError(err)
	}

	found := false
	for _, m := range n.Messages {
		for _, att := range m.Attachments {
			if att.ID == attachmentID {
				found = true
				break
			}
		}
	}
	if !found {
		return nil, errors.ErrAttachmentNotFound
	}

	resolveCtx, cancel := context.WithTimeout(ctx, uc.collaboratorTimeout())
	defer cancel()

	locator, err := uc.store.Resolve(resolveCtx, attachmentID)
	if err != nil {
		uc.logger.Warn("attachment store unavailable", "attachment_id", attachmentID, "err", err)
		return nil, errors.ErrAttachmentResolveFailed(err)
	}
	return locator, nil
}

// Advisory returns the latest cached suggestion/market data, read off the
// critical path.
func (uc *NegotiationUsecase) Advisory(negotiationID uuid.UUID) (advisor.Advisory, bool) {
	return uc.advisory.Get(negotiationID)
}

// appendWithRetry commits the message under the session key lock and fans
// the snapshot out. A version conflict gets exactly one retry after a
// jittered pause; it only helps when the first attempt lost to a transaction
// that did not commit, so a genuinely stale caller still surfaces a conflict.
func (uc *NegotiationUsecase) appendWithRetry(ctx context.Context, negotiationID uuid.UUID, msg *model.Message, expectedVersion int64) (*model.Negotiation, error) {
	uc.sessions.Lock(negotiationID)
	defer uc.sessions.Unlock(negotiationID)

	committed, err := uc.repo.AppendMessage(ctx, negotiationID, msg, expectedVersion)
	if err != nil && stderrors.Is(err, repository.ErrVersionConflict) {
		time.Sleep(utils.JitteredBackoff(uc.retryBackoff()))
		committed, err = uc.repo.AppendMessage(ctx, negotiationID, msg, expectedVersion)
	}
	if err != nil {
		return nil, uc.mapRepoError(err)
	}

	uc.publishCommitted(committed)
	return committed, nil
}

func (uc *NegotiationUsecase) publishCommitted(n *model.Negotiation) {
	uc.broker.Publish(negotiation.NegotiationUpdate{
		NegotiationID: n.ID,
		Version:       n.Version,
		Status:        n.Status,
		Negotiation:   negotiation.ToNegotiationDTO(n),
		CommittedAt:   n.UpdatedAt,
	})
}

// refreshAdvisory asks the suggestion engine for fresh advice for the side
// that has to respond to the new offer. It runs detached from the mutation
// path on a bounded-timeout context; a failure only degrades the advisory
// display, and a slow response is dropped once the version has advanced.
func (uc *NegotiationUsecase) refreshAdvisory(n *model.Negotiation, respondentID uuid.UUID) {
	if uc.engine == nil || uc.advisory == nil {
		return
	}
	role, ok := n.RoleOf(respondentID)
	if !ok {
		role = model.RoleBuyer
	}
	version := n.Version
	offer := n.CurrentOffer

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), uc.collaboratorTimeout())
		defer cancel()

		suggestion, err := uc.engine.GetSuggestedCounterOffer(ctx, n, offer, role)
		if err != nil {
			uc.advisory.MarkStale(n.ID, version)
			uc.logger.Warn("suggestion engine unavailable", "negotiation_id", n.ID, "err", err)
			return
		}

		adv := advisor.Advisory{Suggestion: suggestion, Version: version}

		market, err := uc.engine.GetMarketComparison(ctx, n.Proposal.Commodity, offer)
		if err != nil {
			adv.Stale = true
			uc.logger.Warn("market comparison unavailable", "negotiation_id", n.ID, "err", err)
		} else {
			adv.Market = market
		}

		if !uc.advisory.Put(n.ID, adv) {
			uc.logger.Debug("dropped stale advisory refresh", "negotiation_id", n.ID, "version", version)
		}
	}()
}

func (uc *NegotiationUsecase) mapRepoError(err error) error {
	switch {
	case stderrors.Is(err, repository.ErrNegotiationNotFound):
		return errors.ErrNegotiationNotFound
	case stderrors.Is(err, repository.ErrNotActive):
		return errors.ErrNegotiationNotActive
	case stderrors.Is(err, repository.ErrVersionConflict):
		return errors.ErrVersionConflict
	}
	uc.logger.Error("repository error", "err", err)
	return errors.Internal("internal server error")
}

func (uc *NegotiationUsecase) retryBackoff() time.Duration {
	if uc.config.Negotiation.RetryBackoffMS > 0 {
		return time.Duration(uc.config.Negotiation.RetryBackoffMS) * time.Millisecond
	}
	return 25 * time.Millisecond
}

func (uc *NegotiationUsecase) collaboratorTimeout() time.Duration {
	if uc.config.Advisor.TimeoutSeconds > 0 {
		return time.Duration(uc.config.Advisor.TimeoutSeconds) * time.Second
	}
	return 5 * time.Second
}

func validateProposal(p negotiation.DealProposalCommand) error {
	if p.Commodity == "" {
		return errors.ErrEmptyCommodity
	}
	if p.Quantity <= 0 {
		return errors.ErrInvalidQuantity
	}
	if p.Unit == "" {
		return errors.ErrEmptyUnit
	}
	if !p.DeliveryDate.After(time.Now()) {
		return errors.ErrPastDeliveryDate
	}
	if p.ProposedPrice <= 0 {
		return errors.ErrInvalidPrice
	}
	return nil
}
