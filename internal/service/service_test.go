package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/dongi/internal/rpc"
	"github.com/mmynk/dongi/internal/storage/sqlite"
)

type testClients struct {
	projects    *rpc.ProjectServiceClient
	expenses    *rpc.ExpenseServiceClient
	settlements *rpc.SettlementServiceClient
}

// setupTestServer serves all three services over httptest against a fresh SQLite database.
func setupTestServer(t *testing.T) testClients {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "failed to create store")

	mux := http.NewServeMux()
	mux.Handle(rpc.NewProjectServiceHandler(NewProjectService(store, "IRR")))
	mux.Handle(rpc.NewExpenseServiceHandler(NewExpenseService(store)))
	mux.Handle(rpc.NewSettlementServiceHandler(NewSettlementService(store)))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return testClients{
		projects:    rpc.NewProjectServiceClient(http.DefaultClient, server.URL),
		expenses:    rpc.NewExpenseServiceClient(http.DefaultClient, server.URL),
		settlements: rpc.NewSettlementServiceClient(http.DefaultClient, server.URL),
	}
}

// createProject makes a project with the named participants and returns their IDs by name.
func createProject(t *testing.T, c testClients, participants ...rpc.NewParticipant) (string, map[string]string) {
	t.Helper()

	resp, err := c.projects.CreateProject(context.Background(), &rpc.CreateProjectRequest{
		Name:         "سفر شمال",
		Participants: participants,
	})
	require.NoError(t, err, "CreateProject failed")

	ids := make(map[string]string, len(resp.Participants))
	for _, p := range resp.Participants {
		ids[p.Name] = p.ID
	}
	return resp.Project.ID, ids
}

func named(names ...string) []rpc.NewParticipant {
	out := make([]rpc.NewParticipant, len(names))
	for i, n := range names {
		out[i] = rpc.NewParticipant{Name: n}
	}
	return out
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()

	var connectErr *connect.Error
	if assert.True(t, errors.As(err, &connectErr), "expected connect error, got %v", err) {
		assert.Equal(t, want, connectErr.Code(), "error: %v", err)
	}
}

func balancesByID(bs []*rpc.Balance) map[string]*rpc.Balance {
	out := make(map[string]*rpc.Balance, len(bs))
	for _, b := range bs {
		out[b.ParticipantID] = b
	}
	return out
}
