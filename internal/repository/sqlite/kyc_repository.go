package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"kycboard/internal/domain"
	"kycboard/internal/repository"
)

const createKYCTable = `
CREATE TABLE IF NOT EXISTS kyc_records (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	document TEXT NOT NULL,
	object_key TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	FOREIGN KEY(user_id) REFERENCES users(id)
);
CREATE INDEX IF NOT EXISTS idx_kyc_records_user_id ON kyc_records(user_id);
`

type KYCRepository struct {
	db *sql.DB
}

func NewKYCRepository(db *sql.DB) repository.KYCRepository {
	return &KYCRepository{db: db}
}

func (r *KYCRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createKYCTable); err != nil {
		return fmt.Errorf("create kyc_records table: %w", err)
	}
	return nil
}

func (r *KYCRepository) Create(ctx context.Context, kyc *domain.KYC) error {
	kyc.CreatedAt = time.Now().UTC()

	if _, err := r.db.ExecContext(ctx, `
INSERT INTO kyc_records (id, user_id, document, object_key, created_at)
VALUES (?, ?, ?, ?, ?)`,
		kyc.ID,
		kyc.UserID,
		kyc.Document,
		kyc.ObjectKey,
		kyc.CreatedAt,
	); err != nil {
		return wrapExecErr("insert kyc", err)
	}
	return nil
}

func (r *KYCRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.KYC, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, user_id, document, object_key, created_at
FROM kyc_records
WHERE user_id = ?
ORDER BY rowid ASC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query kyc records: %w", err)
	}
	defer rows.Close()

	var records []domain.KYC
	for rows.Next() {
		var kyc domain.KYC
		if err := rows.Scan(&kyc.ID, &kyc.UserID, &kyc.Document, &kyc.ObjectKey, &kyc.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan kyc: %w", err)
		}
		records = append(records, kyc)
	}

	return records, rows.Err()
}

func (r *KYCRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM kyc_records WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete kyc: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete kyc rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("kyc %s: %w", id, repository.ErrNotFound)
	}
	return nil
}

func (r *KYCRepository) DeleteAllForOwner(ctx context.Context, ownerID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM kyc_records WHERE user_id = ?`, ownerID)
	if err != nil {
		return 0, fmt.Errorf("delete kyc records: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete kyc rows affected: %w", err)
	}
	return n, nil
}
