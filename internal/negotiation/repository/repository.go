package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"mindi/internal/negotiation/model"
	"mindi/pkg/logger"
)

type NegotiationRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var (
	ErrNegotiationNotFound = errors.New("negotiation not found")
	ErrVersionConflict     = errors.New("stale version, negotiation was modified concurrently")
	ErrNotActive           = errors.New("negotiation is not active")
)

func NewNegotiationRepository(db *bun.DB, logger logger.Logger) *NegotiationRepository {
	return &NegotiationRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *NegotiationRepository) CreateNegotiation(ctx context.Context, n *model.Negotiation) error {

	_, err := r.db.NewInsert().Model(n).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "negotiationRepo.CreateNegotiation.Insert: ")
	}
	return nil
}

func (r *NegotiationRepository) GetNegotiation(ctx context.Context, id uuid.UUID) (*model.Negotiation, error) {

	n := new(model.Negotiation)
	err := r.db.NewSelect().
		Model(n).
		Relation("Messages", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("sequence_number ASC")
		}).
		Where("negotiation.id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNegotiationNotFound
		}
		return nil, errors.Wrap(err, "negotiationRepo.GetNegotiation.Scan: ")
	}
	return n, nil
}

// AppendMessage commits one mutation: the version bump, the message insert
// and the current_offer recompute happen in a single transaction guarded by
// expectedVersion. The sequence number shares the version counter; both
// advance only under the same compare-and-swap, which keeps sequence numbers
// strictly monotonic per negotiation.
func (r *NegotiationRepository) AppendMessage(ctx context.Context, negotiationID uuid.UUID, msg *model.Message, expectedVersion int64) (*model.Negotiation, error) {

	var committed *model.Negotiation

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		now := time.Now()

		res, err := tx.NewUpdate().
			Model((*model.Negotiation)(nil)).
			Set("version = version + 1").
			Set("updated_at = ?", now).
			Set("last_activity_at = ?", now).
			Where("id = ? AND version = ? AND status = ?", negotiationID, expectedVersion, model.StatusActive).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "negotiationRepo.AppendMessage.CAS: ")
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			return r.classifyCASFailure(ctx, tx, negotiationID)
		}

		msg.NegotiationID = negotiationID
		msg.SequenceNumber = expectedVersion + 1
		if msg.SentAt.IsZero() {
			msg.SentAt = now
		}
		if _, err := tx.NewInsert().Model(msg).Exec(ctx); err != nil {
			return errors.Wrap(err, "negotiationRepo.AppendMessage.InsertMessage: ")
		}

		var stream []*model.Message
		err = tx.NewSelect().
			Model(&stream).
			Where("negotiation_id = ?", negotiationID).
			Order("sequence_number ASC").
			Scan(ctx)
		if err != nil {
			return errors.Wrap(err, "negotiationRepo.AppendMessage.LoadStream: ")
		}

		if price, ok := model.DeriveCurrentOffer(stream); ok {
			_, err = tx.NewUpdate().
				Model((*model.Negotiation)(nil)).
				Set("current_offer = ?", price).
				Where("id = ?", negotiationID).
				Exec(ctx)
			if err != nil {
				return errors.Wrap(err, "negotiationRepo.AppendMessage.UpdateOffer: ")
			}
		}

		n := new(model.Negotiation)
		err = tx.NewSelect().
			Model(n).
			Relation("Messages", func(q *bun.SelectQuery) *bun.SelectQuery {
				return q.Order("sequence_number ASC")
			}).
			Where("negotiation.id = ?", negotiationID).
			Scan(ctx)
		if err != nil {
			return errors.Wrap(err, "negotiationRepo.AppendMessage.Reload: ")
		}
		committed = n
		return nil
	})

	if err != nil {
		return nil, err
	}
	return committed, nil
}

func (r *NegotiationRepository) UpdateStatus(ctx context.Context, negotiationID uuid.UUID, from, to model.Status, reason string, expectedVersion int64) (*model.Negotiation, error) {

	var committed *model.Negotiation

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		now := time.Now()

		res, err := tx.NewUpdate().
			Model((*model.Negotiation)(nil)).
			Set("status = ?", to).
			Set("cancel_reason = ?", reason).
			Set("version = version + 1").
			Set("updated_at = ?", now).
			Where("id = ? AND version = ? AND status = ?", negotiationID, expectedVersion, from).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "negotiationRepo.UpdateStatus.CAS: ")
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			return r.classifyCASFailure(ctx, tx, negotiationID)
		}

		n := new(model.Negotiation)
		err = tx.NewSelect().
			Model(n).
			Relation("Messages", func(q *bun.SelectQuery) *bun.SelectQuery {
				return q.Order("sequence_number ASC")
			}).
			Where("negotiation.id = ?", negotiationID).
			Scan(ctx)
		if err != nil {
			return errors.Wrap(err, "negotiationRepo.UpdateStatus.Reload: ")
		}
		committed = n
		return nil
	})

	if err != nil {
		return nil, err
	}
	return committed, nil
}

func (r *NegotiationRepository) ListIdleActive(ctx context.Context, cutoff time.Time, limit int) ([]*model.Negotiation, error) {

	var idle []*model.Negotiation
	q := r.db.NewSelect().
		Model(&idle).
		Where("status = ?", model.StatusActive).
		Where("last_activity_at < ?", cutoff).
		Order("last_activity_at ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, errors.Wrap(err, "negotiationRepo.ListIdleActive.Scan: ")
	}
	return idle, nil
}

// classifyCASFailure tells the three zero-rows cases apart: unknown id,
// terminal/unexpected status, stale version.
func (r *NegotiationRepository) classifyCASFailure(ctx context.Context, tx bun.Tx, negotiationID uuid.UUID) error {
	n := new(model.Negotiation)
	err := tx.NewSelect().
		Model(n).
		Column("id", "status", "version").
		Where("id = ?", negotiationID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNegotiationNotFound
		}
		return errors.Wrap(err, "negotiationRepo.classifyCASFailure.Scan: ")
	}
	if n.Status != model.StatusActive {
		return ErrNotActive
	}
	return ErrVersionConflict
}
