package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/dongi/internal/models"
	"github.com/mmynk/dongi/internal/rpc"
)

func TestCreateProject(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	pct := 60.0
	resp, err := c.projects.CreateProject(ctx, &rpc.CreateProjectRequest{
		Name:        "Building 12",
		Description: "monthly charges",
		Participants: []rpc.NewParticipant{
			{Name: "Ali"},
			{Name: "Bahar", Weight: 3, Percentage: &pct},
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Project.ID)
	assert.Equal(t, "Building 12", resp.Project.Name)
	assert.Equal(t, "IRR", resp.Project.Currency, "default currency")
	assert.NotZero(t, resp.Project.CreatedAt)

	require.Len(t, resp.Participants, 2)
	assert.Equal(t, models.DefaultWeight, resp.Participants[0].Weight)
	assert.Nil(t, resp.Participants[0].Percentage)
	assert.Equal(t, 3.0, resp.Participants[1].Weight)
	require.NotNil(t, resp.Participants[1].Percentage)
	assert.Equal(t, 60.0, *resp.Participants[1].Percentage)
}

func TestCreateProjectCurrency(t *testing.T) {
	c := setupTestServer(t)

	resp, err := c.projects.CreateProject(context.Background(), &rpc.CreateProjectRequest{Name: "Trip", Currency: " usd "})
	require.NoError(t, err)
	assert.Equal(t, "USD", resp.Project.Currency)
}

func TestCreateProjectValidation(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	bad := 120.0

	tests := []struct {
		name string
		req  *rpc.CreateProjectRequest
	}{
		{"empty name", &rpc.CreateProjectRequest{Name: "  "}},
		{"empty participant name", &rpc.CreateProjectRequest{Name: "x", Participants: named("Ali", "")}},
		{"negative weight", &rpc.CreateProjectRequest{Name: "x", Participants: []rpc.NewParticipant{{Name: "Ali", Weight: -1}}}},
		{"percentage above 100", &rpc.CreateProjectRequest{Name: "x", Participants: []rpc.NewParticipant{{Name: "Ali", Percentage: &bad}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.projects.CreateProject(ctx, tt.req)
			assertCode(t, err, connect.CodeInvalidArgument)
		})
	}

	list, err := c.projects.ListProjects(ctx, &rpc.ListProjectsRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.Projects, "rejected requests must not write anything")
}

func TestGetProject(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	projectID, ids := createProject(t, c, named("Ali", "Bahar", "Cyrus")...)

	resp, err := c.projects.GetProject(ctx, &rpc.GetProjectRequest{ProjectID: projectID})
	require.NoError(t, err)
	assert.Equal(t, "سفر شمال", resp.Project.Name)
	require.Len(t, resp.Participants, 3)
	assert.Equal(t, ids["Ali"], resp.Participants[0].ID)
	assert.Equal(t, ids["Cyrus"], resp.Participants[2].ID)

	_, err = c.projects.GetProject(ctx, &rpc.GetProjectRequest{ProjectID: "missing"})
	assertCode(t, err, connect.CodeNotFound)

	_, err = c.projects.GetProject(ctx, &rpc.GetProjectRequest{})
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestListAndDeleteProjects(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	first, _ := createProject(t, c, named("Ali")...)
	createProject(t, c, named("Bahar")...)

	list, err := c.projects.ListProjects(ctx, &rpc.ListProjectsRequest{})
	require.NoError(t, err)
	assert.Len(t, list.Projects, 2)

	_, err = c.projects.DeleteProject(ctx, &rpc.DeleteProjectRequest{ProjectID: first})
	require.NoError(t, err)

	_, err = c.projects.DeleteProject(ctx, &rpc.DeleteProjectRequest{ProjectID: first})
	assertCode(t, err, connect.CodeNotFound)

	list, err = c.projects.ListProjects(ctx, &rpc.ListProjectsRequest{})
	require.NoError(t, err)
	assert.Len(t, list.Projects, 1)
}

func TestAddParticipant(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	projectID, _ := createProject(t, c, named("Ali")...)

	resp, err := c.projects.AddParticipant(ctx, &rpc.AddParticipantRequest{
		ProjectID:   projectID,
		Participant: rpc.NewParticipant{Name: "Dara", Weight: 2},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Participant.ID)
	assert.Equal(t, projectID, resp.Participant.ProjectID)
	assert.Equal(t, 2.0, resp.Participant.Weight)

	_, err = c.projects.AddParticipant(ctx, &rpc.AddParticipantRequest{
		ProjectID:   "missing",
		Participant: rpc.NewParticipant{Name: "Dara"},
	})
	assertCode(t, err, connect.CodeNotFound)
}

func TestUpdateParticipant(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	_, ids := createProject(t, c, named("Ali")...)
	weight, pct := 4.0, 25.0

	resp, err := c.projects.UpdateParticipant(ctx, &rpc.UpdateParticipantRequest{
		ParticipantID: ids["Ali"],
		Name:          "علی",
		Weight:        &weight,
		Percentage:    &pct,
	})
	require.NoError(t, err)
	assert.Equal(t, "علی", resp.Participant.Name)
	assert.Equal(t, 4.0, resp.Participant.Weight)
	require.NotNil(t, resp.Participant.Percentage)
	assert.Equal(t, 25.0, *resp.Participant.Percentage)

	t.Run("ClearPercentage", func(t *testing.T) {
		resp, err := c.projects.UpdateParticipant(ctx, &rpc.UpdateParticipantRequest{
			ParticipantID:   ids["Ali"],
			ClearPercentage: true,
		})
		require.NoError(t, err)
		assert.Nil(t, resp.Participant.Percentage)
		assert.Equal(t, 4.0, resp.Participant.Weight, "unset fields are kept")
	})

	t.Run("zero weight rejected", func(t *testing.T) {
		zero := 0.0
		_, err := c.projects.UpdateParticipant(ctx, &rpc.UpdateParticipantRequest{ParticipantID: ids["Ali"], Weight: &zero})
		assertCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("unknown participant", func(t *testing.T) {
		_, err := c.projects.UpdateParticipant(ctx, &rpc.UpdateParticipantRequest{ParticipantID: "missing"})
		assertCode(t, err, connect.CodeNotFound)
	})
}
