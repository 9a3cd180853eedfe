package leaderboard

import (
	"context"
	"sort"

	model "github.com/Arnesh-pal/random-ranking/internal/models"
)

// UserLister est la seule partie du store dont le projecteur a besoin
type UserLister interface {
	ListUsers(ctx context.Context) ([]model.User, error)
}

// Rank trie les utilisateurs par points décroissants et attribue les rangs
// 1..N sans trou, même en cas d'égalité. Les égalités sont départagées par
// nom croissant pour garder un ordre déterministe.
func Rank(users []model.User) []model.LeaderboardEntry {
	sorted := make([]model.User, len(users))
	copy(sorted, users)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].TotalPoints != sorted[j].TotalPoints {
			return sorted[i].TotalPoints > sorted[j].TotalPoints
		}
		return sorted[i].Name < sorted[j].Name
	})

	entries := make([]model.LeaderboardEntry, len(sorted))
	for i, u := range sorted {
		entries[i] = model.LeaderboardEntry{
			Rank:        i + 1,
			Name:        u.Name,
			TotalPoints: u.TotalPoints,
			ID:          u.ID,
		}
	}

	return entries
}

// Snapshot lit l'ensemble des utilisateurs et calcule le classement complet
func Snapshot(ctx context.Context, s UserLister) ([]model.LeaderboardEntry, error) {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return Rank(users), nil
}
