package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skillpassport/backend/internal/domain"
)

type CredentialRepo struct {
	pool *pgxpool.Pool
}

func NewCredentialRepo(pool *pgxpool.Pool) *CredentialRepo {
	return &CredentialRepo{pool: pool}
}

func (r *CredentialRepo) Create(ctx context.Context, cred *domain.Credential) error {
	query := `
		INSERT INTO credentials (id, user_id, type, name, issuer, issue_date, evidence_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		cred.ID, cred.UserID, cred.Type, cred.Name,
		cred.Issuer, cred.IssueDate, cred.EvidenceURL, cred.CreatedAt,
	)
	return err
}

func (r *CredentialRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Credential, error) {
	query := `
		SELECT id, user_id, type, name, issuer, issue_date, evidence_url, created_at
		FROM credentials
		WHERE id = $1`

	var c domain.Credential
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.UserID, &c.Type, &c.Name,
		&c.Issuer, &c.IssueDate, &c.EvidenceURL, &c.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return &c, err
}

func (r *CredentialRepo) ListByOwner(ctx context.Context, userID uuid.UUID) ([]domain.Credential, error) {
	query := `
		SELECT id, user_id, type, name, issuer, issue_date, evidence_url, created_at
		FROM credentials
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var creds []domain.Credential
	for rows.Next() {
		var c domain.Credential
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.Type, &c.Name,
			&c.Issuer, &c.IssueDate, &c.EvidenceURL, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		creds = append(creds, c)
	}
	return creds, rows.Err()
}

func (r *CredentialRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM credentials WHERE id = $1`, id)
	return err
}

func (r *CredentialRepo) CountByOwner(ctx context.Context, userID uuid.UUID) (int, int, error) {
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE evidence_url IS NOT NULL AND evidence_url <> '')
		FROM credentials
		WHERE user_id = $1`

	var total, verified int
	err := r.pool.QueryRow(ctx, query, userID).Scan(&total, &verified)
	return total, verified, err
}
