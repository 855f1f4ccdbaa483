// Package accountrepo persists user accounts.
package accountrepo

import (
	"time"

	"deliveryapp/internal/core/domain/model/account"
	"deliveryapp/internal/core/domain/model/auth"
	"deliveryapp/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO represents the database structure for persisting user accounts.
// The password hash never leaves this package in raw form; the aggregate
// exposes only a verify operation.
type AccountDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"uniqueIndex"`
	PasswordHash string
	FullName     string
	Role         int
	CreatedAt    time.Time
}

// TableName specifies the database table name for account entities.
func (AccountDTO) TableName() string {
	return "accounts"
}

func fromDomain(aggregate *account.Account) AccountDTO {
	return AccountDTO{
		ID:           aggregate.ID().Bytes(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		FullName:     aggregate.FullName(),
		Role:         int(aggregate.Role()),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(id, dto.Email, dto.PasswordHash, dto.FullName,
		auth.Role(dto.Role), dto.CreatedAt)
}
