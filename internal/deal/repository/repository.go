package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"mindi/internal/deal/model"
	negmodel "mindi/internal/negotiation/model"
	negrepo "mindi/internal/negotiation/repository"
	"mindi/pkg/logger"
)

type DealTermsRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var ErrDealTermsNotFound = errors.New("deal terms not found")

func NewDealTermsRepository(db *bun.DB, logger logger.Logger) *DealTermsRepository {
	return &DealTermsRepository{
		db:     db,
		logger: &logger,
	}
}

// FinalizeNegotiation flips an active negotiation to finalized and persists
// its deal terms in one transaction, guarded by expectedVersion. A failed
// terms insert rolls the status flip back, so the session is never finalized
// without a deal_terms row. The agreed price and finalization time are
// frozen from the committed negotiation row.
func (r *DealTermsRepository) FinalizeNegotiation(ctx context.Context, negotiationID uuid.UUID, terms *model.DealTerms, expectedVersion int64) (*negmodel.Negotiation, error) {

	var committed *negmodel.Negotiation

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		now := time.Now()

		res, err := tx.NewUpdate().
			Model((*negmodel.Negotiation)(nil)).
			Set("status = ?", negmodel.StatusFinalized).
			Set("version = version + 1").
			Set("updated_at = ?", now).
			Where("id = ? AND version = ? AND status = ?", negotiationID, expectedVersion, negmodel.StatusActive).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "dealRepo.FinalizeNegotiation.CAS: ")
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			return r.classifyCASFailure(ctx, tx, negotiationID)
		}

		n := new(negmodel.Negotiation)
		err = tx.NewSelect().
			Model(n).
			Relation("Messages", func(q *bun.SelectQuery) *bun.SelectQuery {
				return q.Order("sequence_number ASC")
			}).
			Where("negotiation.id = ?", negotiationID).
			Scan(ctx)
		if err != nil {
			return errors.Wrap(err, "dealRepo.FinalizeNegotiation.Reload: ")
		}

		terms.NegotiationID = n.ID
		terms.AgreedPrice = n.CurrentOffer
		terms.FinalizedAt = n.UpdatedAt
		if _, err := tx.NewInsert().Model(terms).Returning("*").Exec(ctx); err != nil {
			return errors.Wrap(err, "dealRepo.FinalizeNegotiation.InsertTerms: ")
		}

		committed = n
		return nil
	})

	if err != nil {
		return nil, err
	}
	return committed, nil
}

func (r *DealTermsRepository) GetDealTermsByNegotiation(ctx context.Context, negotiationID uuid.UUID) (*model.DealTerms, error) {

	terms := new(model.DealTerms)
	err := r.db.NewSelect().Model(terms).Where("negotiation_id = ?", negotiationID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDealTermsNotFound
		}
		return nil, errors.Wrap(err, "dealRepo.GetDealTermsByNegotiation.Scan: ")
	}
	return terms, nil
}

// classifyCASFailure tells the three zero-rows cases apart: unknown id,
// terminal/unexpected status, stale version.
func (r *DealTermsRepository) classifyCASFailure(ctx context.Context, tx bun.Tx, negotiationID uuid.UUID) error {
	n := new(negmodel.Negotiation)
	err := tx.NewSelect().
		Model(n).
		Column("id", "status", "version").
		Where("id = ?", negotiationID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return negrepo.ErrNegotiationNotFound
		}
		return errors.Wrap(err, "dealRepo.classifyCASFailure.Scan: ")
	}
	if n.Status != negmodel.StatusActive {
		return negrepo.ErrNotActive
	}
	return negrepo.ErrVersionConflict
}
