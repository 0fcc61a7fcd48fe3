package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skillpassport/backend/internal/domain"
)

type ProfileRepo struct {
	pool *pgxpool.Pool
}

func NewProfileRepo(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

func (r *ProfileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (id, name, email, avatar_url, linkedin_url, github_url, theme, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		profile.ID, profile.Name, profile.Email, profile.AvatarURL,
		profile.LinkedInURL, profile.GitHubURL, profile.Theme, profile.CreatedAt,
	)
	return err
}

func (r *ProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	query := `
		SELECT id, name, email, avatar_url, linkedin_url, github_url, theme, created_at
		FROM profiles
		WHERE id = $1`

	var p domain.Profile
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Email, &p.AvatarURL,
		&p.LinkedInURL, &p.GitHubURL, &p.Theme, &p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return &p, err
}

// Update applies a partial merge: COALESCE keeps the stored value for any
// field the update leaves nil, and returns the merged row.
func (r *ProfileRepo) Update(ctx context.Context, id uuid.UUID, update domain.ProfileUpdate) (*domain.Profile, error) {
	query := `
		UPDATE profiles SET
			name = COALESCE($2, name),
			avatar_url = COALESCE($3, avatar_url),
			linkedin_url = COALESCE($4, linkedin_url),
			github_url = COALESCE($5, github_url),
			theme = COALESCE($6, theme)
		WHERE id = $1
		RETURNING id, name, email, avatar_url, linkedin_url, github_url, theme, created_at`

	var p domain.Profile
	err := r.pool.QueryRow(ctx, query, id,
		update.Name, update.AvatarURL, update.LinkedInURL, update.GitHubURL, update.Theme,
	).Scan(
		&p.ID, &p.Name, &p.Email, &p.AvatarURL,
		&p.LinkedInURL, &p.GitHubURL, &p.Theme, &p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return &p, err
}
