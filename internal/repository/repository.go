package repository

import (
	"context"
	"errors"
	"fmt"
	"paygate/internal/db"
)

var ErrRecordNotFound error = errors.New("verification record not found")

// ErrDuplicateRecord means another verification for the same hash won the
// insert race. The existing record is the authoritative outcome.
var ErrDuplicateRecord error = errors.New("verification record already exists")

type VerificationRepository struct {
	db Storage
}

func NewVerificationRepository(db Storage) *VerificationRepository {
	return &VerificationRepository{
		db: db,
	}
}

func (r *VerificationRepository) MigrateTables() error {
	err := r.db.MigrateTable(&VerificationRecord{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *VerificationRepository) GetRecord(ctx context.Context, txHash string) (VerificationRecord, error) {
	var record VerificationRecord

	err := r.db.GetOneBy(ctx, "tx_hash", txHash, &record)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return VerificationRecord{}, ErrRecordNotFound
		}
		return VerificationRecord{}, fmt.Errorf("get record by tx hash: %w", err)
	}

	return record, nil
}

// SaveRecord persists a record exactly once per tx hash. The uniqueness
// constraint on tx_hash is the only concurrency control; a losing concurrent
// insert gets ErrDuplicateRecord and should re-read instead.
func (r *VerificationRepository) SaveRecord(ctx context.Context, record VerificationRecord) error {
	inserted, err := r.db.InsertIfAbsent(ctx, "tx_hash", &record)
	if err != nil {
		return fmt.Errorf("insert verification record: %w", err)
	}
	if !inserted {
		return ErrDuplicateRecord
	}

	return nil
}
