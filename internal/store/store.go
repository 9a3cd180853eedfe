package store

import (
	"context"
	"errors"

	model "github.com/Arnesh-pal/random-ranking/internal/models"
)

var (
	// ErrDuplicateName est renvoyée quand le nom d'utilisateur existe déjà
	ErrDuplicateName = errors.New("user name already taken")
	// ErrNotFound est renvoyée quand l'utilisateur demandé n'existe pas
	ErrNotFound = errors.New("user not found")
)

// Store regroupe les accès à la persistance. Les handlers ne connaissent
// que cette interface, ce qui permet de les tester avec un faux store.
type Store interface {
	CreateUser(ctx context.Context, name string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	AddPoints(ctx context.Context, id string, points int) (*model.User, error)
	InsertClaim(ctx context.Context, userID string, points int) error
	CountUsers(ctx context.Context) (int, error)
	SeedUsers(ctx context.Context, names []string) error
}
