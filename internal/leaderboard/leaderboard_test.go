package leaderboard_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arnesh-pal/random-ranking/internal/leaderboard"
	model "github.com/Arnesh-pal/random-ranking/internal/models"
)

func TestRankSortsByPointsDescending(t *testing.T) {
	users := []model.User{
		{ID: "u1", Name: "Rahul", TotalPoints: 3},
		{ID: "u2", Name: "Kamal", TotalPoints: 10},
		{ID: "u3", Name: "Priya", TotalPoints: 7},
	}

	entries := leaderboard.Rank(users)

	require.Len(t, entries, 3)
	assert.Equal(t, model.LeaderboardEntry{Rank: 1, Name: "Kamal", TotalPoints: 10, ID: "u2"}, entries[0])
	assert.Equal(t, model.LeaderboardEntry{Rank: 2, Name: "Priya", TotalPoints: 7, ID: "u3"}, entries[1])
	assert.Equal(t, model.LeaderboardEntry{Rank: 3, Name: "Rahul", TotalPoints: 3, ID: "u1"}, entries[2])
}

func TestRankAssignsDenseRanksAcrossTies(t *testing.T) {
	users := []model.User{
		{ID: "u1", Name: "Sunita", TotalPoints: 5},
		{ID: "u2", Name: "Amit", TotalPoints: 5},
		{ID: "u3", Name: "Vikram", TotalPoints: 5},
	}

	entries := leaderboard.Rank(users)

	require.Len(t, entries, 3)
	for i, e := range entries {
		assert.Equal(t, i+1, e.Rank, "ranks must be 1..N with no gaps")
	}
	// Égalité départagée par nom croissant
	assert.Equal(t, "Amit", entries[0].Name)
	assert.Equal(t, "Sunita", entries[1].Name)
	assert.Equal(t, "Vikram", entries[2].Name)
}

func TestRankIsDeterministic(t *testing.T) {
	users := []model.User{
		{ID: "u1", Name: "Deepak", TotalPoints: 2},
		{ID: "u2", Name: "Meera", TotalPoints: 2},
		{ID: "u3", Name: "Anjali", TotalPoints: 8},
	}

	first := leaderboard.Rank(users)
	second := leaderboard.Rank(users)

	assert.Equal(t, first, second)
}

func TestRankDoesNotMutateInput(t *testing.T) {
	users := []model.User{
		{ID: "u1", Name: "Rahul", TotalPoints: 1},
		{ID: "u2", Name: "Kamal", TotalPoints: 9},
	}

	leaderboard.Rank(users)

	assert.Equal(t, "Rahul", users[0].Name)
	assert.Equal(t, "Kamal", users[1].Name)
}

func TestRankEmpty(t *testing.T) {
	entries := leaderboard.Rank(nil)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

type stubLister struct {
	users []model.User
	err   error
}

func (s stubLister) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users, s.err
}

func TestSnapshotPropagatesStoreError(t *testing.T) {
	boom := errors.New("db down")

	_, err := leaderboard.Snapshot(context.Background(), stubLister{err: boom})

	assert.ErrorIs(t, err, boom)
}

func TestSnapshotRanksStoredUsers(t *testing.T) {
	lister := stubLister{users: []model.User{
		{ID: "u1", Name: "Priya", TotalPoints: 4},
		{ID: "u2", Name: "Amit", TotalPoints: 6},
	}}

	entries, err := leaderboard.Snapshot(context.Background(), lister)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Amit", entries[0].Name)
	assert.Equal(t, 1, entries[0].Rank)
}
