package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skillpassport/backend/internal/domain"
	"github.com/skillpassport/backend/internal/repository"
)

type ConnectionRepo struct {
	pool *pgxpool.Pool
}

func NewConnectionRepo(pool *pgxpool.Pool) *ConnectionRepo {
	return &ConnectionRepo{pool: pool}
}

func (r *ConnectionRepo) Create(ctx context.Context, conn *domain.Connection) error {
	query := `
		INSERT INTO connections (id, user_id, connection_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query,
		conn.ID, conn.UserID, conn.ConnectionID, conn.Status, conn.CreatedAt,
	)

	// 23505 = unique_violation on the live-pair partial index.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return repository.ErrDuplicateEdge
	}
	return err
}

func (r *ConnectionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Connection, error) {
	query := `
		SELECT id, user_id, connection_id, status, created_at
		FROM connections
		WHERE id = $1`

	var c domain.Connection
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.UserID, &c.ConnectionID, &c.Status, &c.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return &c, err
}

func (r *ConnectionRepo) GetLiveBetween(ctx context.Context, userA, userB uuid.UUID) (*domain.Connection, error) {
	query := `
		SELECT id, user_id, connection_id, status, created_at
		FROM connections
		WHERE ((user_id = $1 AND connection_id = $2) OR (user_id = $2 AND connection_id = $1))
			AND status IN ('pending', 'accepted')
		LIMIT 1`

	var c domain.Connection
	err := r.pool.QueryRow(ctx, query, userA, userB).Scan(
		&c.ID, &c.UserID, &c.ConnectionID, &c.Status, &c.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return &c, err
}

func (r *ConnectionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := r.pool.Exec(ctx, `UPDATE connections SET status = $2 WHERE id = $1`, id, status)
	return err
}

func (r *ConnectionRepo) DeleteBetween(ctx context.Context, userA, userB uuid.UUID) error {
	query := `
		DELETE FROM connections
		WHERE (user_id = $1 AND connection_id = $2) OR (user_id = $2 AND connection_id = $1)`

	_, err := r.pool.Exec(ctx, query, userA, userB)
	return err
}

// ListAccepted returns accepted edges touching the user in either
// direction, with the peer's profile joined from the user's point of view.
func (r *ConnectionRepo) ListAccepted(ctx context.Context, userID uuid.UUID) ([]domain.Connection, error) {
	query := `
		SELECT c.id, c.user_id, c.connection_id, c.status, c.created_at,
			p.id, p.name, p.email, p.avatar_url
		FROM connections c
		JOIN profiles p ON p.id = CASE WHEN c.user_id = $1 THEN c.connection_id ELSE c.user_id END
		WHERE (c.user_id = $1 OR c.connection_id = $1) AND c.status = 'accepted'
		ORDER BY c.created_at DESC`

	return r.listConnections(ctx, query, userID)
}

func (r *ConnectionRepo) ListRequestsReceived(ctx context.Context, userID uuid.UUID) ([]domain.Connection, error) {
	query := `
		SELECT c.id, c.user_id, c.connection_id, c.status, c.created_at,
			p.id, p.name, p.email, p.avatar_url
		FROM connections c
		JOIN profiles p ON p.id = c.user_id
		WHERE c.connection_id = $1 AND c.status = 'pending'
		ORDER BY c.created_at DESC`

	return r.listConnections(ctx, query, userID)
}

func (r *ConnectionRepo) ListRequestsSent(ctx context.Context, userID uuid.UUID) ([]domain.Connection, error) {
	query := `
		SELECT c.id, c.user_id, c.connection_id, c.status, c.created_at,
			p.id, p.name, p.email, p.avatar_url
		FROM connections c
		JOIN profiles p ON p.id = c.connection_id
		WHERE c.user_id = $1 AND c.status = 'pending'
		ORDER BY c.created_at DESC`

	return r.listConnections(ctx, query, userID)
}

// ListDiscoverable returns every other profile that has no pending or
// accepted edge with the user in either direction. Rejected edges do not
// hide a profile.
func (r *ConnectionRepo) ListDiscoverable(ctx context.Context, userID uuid.UUID) ([]domain.Profile, error) {
	query := `
		SELECT p.id, p.name, p.email, p.avatar_url, p.linkedin_url, p.github_url, p.theme, p.created_at
		FROM profiles p
		WHERE p.id <> $1
			AND NOT EXISTS (
				SELECT 1 FROM connections c
				WHERE ((c.user_id = $1 AND c.connection_id = p.id) OR (c.user_id = p.id AND c.connection_id = $1))
					AND c.status IN ('pending', 'accepted')
			)
		ORDER BY p.created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		var p domain.Profile
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Email, &p.AvatarURL,
			&p.LinkedInURL, &p.GitHubURL, &p.Theme, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *ConnectionRepo) CountAccepted(ctx context.Context, userID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM connections
		WHERE (user_id = $1 OR connection_id = $1) AND status = 'accepted'`

	var count int
	err := r.pool.QueryRow(ctx, query, userID).Scan(&count)
	return count, err
}

func (r *ConnectionRepo) listConnections(ctx context.Context, query string, userID uuid.UUID) ([]domain.Connection, error) {
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var conns []domain.Connection
	for rows.Next() {
		var c domain.Connection
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.ConnectionID, &c.Status, &c.CreatedAt,
			&c.PeerID, &c.PeerName, &c.PeerEmail, &c.PeerAvatarURL,
		); err != nil {
			return nil, err
		}
		conns = append(conns, c)
	}
	return conns, rows.Err()
}
