package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	model "github.com/Arnesh-pal/random-ranking/internal/models"
)

// Code d'erreur Postgres pour une violation de contrainte UNIQUE
const uniqueViolationCode = "23505"

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) CreateUser(ctx context.Context, name string) (*model.User, error) {
	var user model.User
	err := s.pool.QueryRow(ctx,
		`INSERT INTO users(id, name) VALUES($1, $2)
		 RETURNING id, name, total_points, created_at`,
		uuid.NewString(), name,
	).Scan(&user.ID, &user.Name, &user.TotalPoints, &user.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("could not create user: %w", err)
	}

	return &user, nil
}

func (s *PostgresStore) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, total_points, created_at FROM users`)
	if err != nil {
		return nil, fmt.Errorf("could not query users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.TotalPoints, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("could not scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not read user rows: %w", err)
	}

	return users, nil
}

func (s *PostgresStore) GetUser(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, total_points, created_at FROM users WHERE id=$1`,
		id,
	).Scan(&user.ID, &user.Name, &user.TotalPoints, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("could not get user: %w", err)
	}

	return &user, nil
}

// AddPoints incrémente le score en une seule requête atomique : deux claims
// simultanés sur le même utilisateur sont sérialisés par la ligne elle-même
func (s *PostgresStore) AddPoints(ctx context.Context, id string, points int) (*model.User, error) {
	var user model.User
	err := s.pool.QueryRow(ctx,
		`UPDATE users SET total_points = total_points + $1 WHERE id=$2
		 RETURNING id, name, total_points, created_at`,
		points, id,
	).Scan(&user.ID, &user.Name, &user.TotalPoints, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("could not add points: %w", err)
	}

	return &user, nil
}

func (s *PostgresStore) InsertClaim(ctx context.Context, userID string, points int) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO claim_history(id, user_id, points_claimed) VALUES($1, $2, $3)`,
		uuid.NewString(), userID, points,
	)
	if err != nil {
		return fmt.Errorf("could not insert claim: %w", err)
	}
	return nil
}

func (s *PostgresStore) CountUsers(ctx context.Context) (int, error) {
	var count int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("could not count users: %w", err)
	}
	return count, nil
}

// SeedUsers insère les utilisateurs initiaux en un seul aller-retour
func (s *PostgresStore) SeedUsers(ctx context.Context, names []string) error {
	batch := &pgx.Batch{}
	for _, name := range names {
		batch.Queue(`INSERT INTO users(id, name) VALUES($1, $2)`, uuid.NewString(), name)
	}

	results := s.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range names {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("could not seed users: %w", err)
		}
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
