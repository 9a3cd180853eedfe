package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arnesh-pal/random-ranking/internal/api"
	"github.com/Arnesh-pal/random-ranking/internal/handler"
	"github.com/Arnesh-pal/random-ranking/internal/leaderboard"
	model "github.com/Arnesh-pal/random-ranking/internal/models"
	"github.com/Arnesh-pal/random-ranking/internal/ws"
)

// memStore est le strict minimum de store.Store pour monter le routeur
type memStore struct {
	users []model.User
}

func (m *memStore) CreateUser(ctx context.Context, name string) (*model.User, error) {
	user := model.User{ID: name, Name: name}
	m.users = append(m.users, user)
	return &user, nil
}

func (m *memStore) ListUsers(ctx context.Context) ([]model.User, error) {
	return m.users, nil
}

func (m *memStore) GetUser(ctx context.Context, id string) (*model.User, error) {
	return nil, nil
}

func (m *memStore) AddPoints(ctx context.Context, id string, points int) (*model.User, error) {
	return nil, nil
}

func (m *memStore) InsertClaim(ctx context.Context, userID string, points int) error {
	return nil
}

func (m *memStore) CountUsers(ctx context.Context) (int, error) {
	return len(m.users), nil
}

func (m *memStore) SeedUsers(ctx context.Context, names []string) error {
	return nil
}

func newHub(st *memStore) *ws.Hub {
	return ws.NewHub(func(ctx context.Context) ([]model.LeaderboardEntry, error) {
		return leaderboard.Snapshot(ctx, st)
	}, func(r *http.Request) bool { return true })
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	st := &memStore{users: []model.User{{ID: "u1", Name: "Rahul", TotalPoints: 5}}}
	hub := newHub(st)
	router := api.SetupRouter(handler.New(st, hub), hub)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func TestRouterServesHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
}

func TestRouterUnknownRoute(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/nope")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouterMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/health", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

// L'upgrade websocket doit traverser le middleware de log (passthrough Hijack)
func TestRouterWebsocketUpgrade(t *testing.T) {
	srv := newTestServer(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var ev struct {
		Event string                   `json:"event"`
		Data  []model.LeaderboardEntry `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&ev))
	assert.Equal(t, "leaderboardUpdate", ev.Event)
	require.Len(t, ev.Data, 1)
	assert.Equal(t, "Rahul", ev.Data[0].Name)
}
