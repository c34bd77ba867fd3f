package repo

import (
	"context"
	"errors"

	"github.com/example/order-alert-service/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresProfileRepo backs both the admin directory and the notification
// profile store.
type PostgresProfileRepo struct {
	Pool *pgxpool.Pool
}

func NewPostgresProfileRepo(pool *pgxpool.Pool) *PostgresProfileRepo {
	return &PostgresProfileRepo{Pool: pool}
}

func (r *PostgresProfileRepo) ResolveEmail(ctx context.Context, email string) (string, error) {
	var id string
	err := r.Pool.QueryRow(ctx, `SELECT id FROM admin_users WHERE email = $1`, email).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *PostgresProfileRepo) Find(ctx context.Context, userID string) (domain.NotificationProfile, error) {
	p := domain.NotificationProfile{UserID: userID}
	err := r.Pool.QueryRow(ctx,
		`SELECT notifications_enabled, tokens FROM notification_profiles WHERE user_id = $1`,
		userID).Scan(&p.Enabled, &p.Tokens)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NotificationProfile{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.NotificationProfile{}, err
	}
	return p, nil
}

func (r *PostgresProfileRepo) AddToken(ctx context.Context, userID, token string) error {
	_, err := r.Pool.Exec(ctx, `
INSERT INTO notification_profiles(user_id, notifications_enabled, tokens)
VALUES ($1, true, ARRAY[$2]::text[])
ON CONFLICT (user_id) DO UPDATE SET
  notifications_enabled = true,
  tokens = CASE WHEN $2 = ANY(notification_profiles.tokens)
                THEN notification_profiles.tokens
                ELSE array_append(notification_profiles.tokens, $2) END`,
		userID, token)
	return err
}

// RemoveTokens subtracts the given tokens from the stored set in one UPDATE.
// The difference is computed against the row's current value, so two prunes
// racing on the same profile interleave safely.
func (r *PostgresProfileRepo) RemoveTokens(ctx context.Context, userID string, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}
	_, err := r.Pool.Exec(ctx, `
UPDATE notification_profiles
SET tokens = (SELECT coalesce(array_agg(t), '{}') FROM unnest(tokens) AS t WHERE t <> ALL($2::text[]))
WHERE user_id = $1`,
		userID, tokens)
	return err
}

var (
	_ domain.AdminDirectory    = (*PostgresProfileRepo)(nil)
	_ domain.ProfileRepository = (*PostgresProfileRepo)(nil)
)

// EnsureAdminAccount makes sure the configured administrator exists in the
// directory, assigning a fresh id on first boot.
func EnsureAdminAccount(ctx context.Context, pool *pgxpool.Pool, email string) error {
	_, err := pool.Exec(ctx,
		`INSERT INTO admin_users(id, email) VALUES ($1, $2) ON CONFLICT (email) DO NOTHING`,
		uuid.NewString(), email)
	return err
}
