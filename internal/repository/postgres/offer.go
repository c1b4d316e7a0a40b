package postgres

import (
	"context"
	"database/sql"

	"github.com/coursebill/coursebill/internal/domain/offer"
	ierr "github.com/coursebill/coursebill/internal/errors"
	"github.com/coursebill/coursebill/internal/logger"
	"github.com/coursebill/coursebill/internal/postgres"
	"github.com/coursebill/coursebill/internal/types"
	"github.com/cockroachdb/errors"
)

type offerRepository struct {
	db     postgres.IClient
	logger *logger.Logger
}

func NewOfferRepository(db postgres.IClient, logger *logger.Logger) offer.Repository {
	return &offerRepository{db: db, logger: logger}
}

func (r *offerRepository) Create(ctx context.Context, o *offer.Offer) error {
	query := `
	INSERT INTO offers (
		id, tenant_id, name, category, type, sub_type, price, currency, code, location,
		status, created_at, updated_at, created_by, updated_by
	) VALUES (
		:id, :tenant_id, :name, :category, :type, :sub_type, :price, :currency, :code, :location,
		:status, :created_at, :updated_at, :created_by, :updated_by
	)`

	if _, err := r.db.NamedExecContext(ctx, query, o); err != nil {
		return ierr.WithError(err).
			WithHint("failed to create offer").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *offerRepository) GetByID(ctx context.Context, id string) (*offer.Offer, error) {
	query := `SELECT * FROM offers WHERE id = $1 AND tenant_id = $2 AND status != $3`

	var o offer.Offer
	err := r.db.GetQuerier(ctx).GetContext(ctx, &o, query, id, types.GetTenantID(ctx), types.StatusDeleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ierr.NewError("offer not found").
				WithHintf("offer %s does not exist", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("failed to get offer").
			Mark(ierr.ErrDatabase)
	}
	return &o, nil
}

func (r *offerRepository) List(ctx context.Context) ([]*offer.Offer, error) {
	query := `SELECT * FROM offers WHERE tenant_id = $1 AND status != $2 ORDER BY created_at DESC`

	offers := make([]*offer.Offer, 0)
	err := r.db.GetQuerier(ctx).SelectContext(ctx, &offers, query, types.GetTenantID(ctx), types.StatusDeleted)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to list offers").
			Mark(ierr.ErrDatabase)
	}
	return offers, nil
}

func (r *offerRepository) Update(ctx context.Context, o *offer.Offer) error {
	query := `
	UPDATE offers SET
		name = :name, category = :category, type = :type, sub_type = :sub_type,
		price = :price, currency = :currency, code = :code, location = :location,
		status = :status, updated_at = :updated_at, updated_by = :updated_by
	WHERE id = :id AND tenant_id = :tenant_id`

	if _, err := r.db.NamedExecContext(ctx, query, o); err != nil {
		return ierr.WithError(err).
			WithHint("failed to update offer").
			Mark(ierr.ErrDatabase)
	}
	return nil
}
