package accountrepo

import (
	"context"
	"errors"
	"strings"

	"deliveryapp/internal/adapters/out/postgres/pgerr"
	"deliveryapp/internal/core/domain/model/account"
	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB, tracker aggregateTracker) *GormAccountRepository {
	return &GormAccountRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new account. Registering an email that already exists violates
// the unique index and surfaces as a conflict.
func (r *GormAccountRepository) Add(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Wrap(err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an account by ID.
func (r *GormAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("Account",id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves an account by email. Lookup is case insensitive
// because aggregates store emails lowercased.
func (r *GormAccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("Account",email)
		}
		return nil, err
	}

	return toDomain(dto)
}
