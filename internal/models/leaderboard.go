package model

type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	Name        string `json:"name"`
	TotalPoints int    `json:"totalPoints"`
	ID          string `json:"id"`
}
