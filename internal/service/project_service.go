package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/dongi/internal/models"
	"github.com/mmynk/dongi/internal/rpc"
	"github.com/mmynk/dongi/internal/storage"
)

// ProjectService implements the Connect ProjectService
type ProjectService struct {
	store           storage.Store
	defaultCurrency string
}

var _ rpc.ProjectServiceHandler = (*ProjectService)(nil)

// NewProjectService creates a new ProjectService with the given storage backend.
// Projects created without a currency get defaultCurrency.
func NewProjectService(store storage.Store, defaultCurrency string) *ProjectService {
	return &ProjectService{store: store, defaultCurrency: defaultCurrency}
}

// validateWeights checks a participant's weight and optional percentage.
func validateWeights(weight float64, percentage *float64) error {
	if weight <= 0 {
		return invalidArgument("weight must be positive, got %v", weight)
	}
	if percentage != nil && (*percentage < 0 || *percentage > 100) {
		return invalidArgument("percentage must be between 0 and 100, got %v", *percentage)
	}
	return nil
}

// newParticipant validates the request and builds the model.
func newParticipant(projectID string, p rpc.NewParticipant) (*models.Participant, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, invalidArgument("participant name required")
	}
	weight := p.Weight
	if weight == 0 {
		weight = models.DefaultWeight
	}
	if err := validateWeights(weight, p.Percentage); err != nil {
		return nil, err
	}
	return &models.Participant{
		ProjectID:  projectID,
		Name:       name,
		Weight:     weight,
		Percentage: p.Percentage,
	}, nil
}

// CreateProject creates a project and its initial participants.
func (s *ProjectService) CreateProject(ctx context.Context, req *connect.Request[rpc.CreateProjectRequest]) (*connect.Response[rpc.CreateProjectResponse], error) {
	slog.Info("CreateProject request received",
		"name", req.Msg.Name,
		"participants_count", len(req.Msg.Participants),
	)

	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, invalidArgument("project name required")
	}
	currency := strings.ToUpper(strings.TrimSpace(req.Msg.Currency))
	if currency == "" {
		currency = s.defaultCurrency
	}

	// Validate everything before writing anything
	participants := make([]*models.Participant, len(req.Msg.Participants))
	for i, p := range req.Msg.Participants {
		participant, err := newParticipant("", p)
		if err != nil {
			return nil, err
		}
		participants[i] = participant
	}

	project := &models.Project{
		Name:        name,
		Description: req.Msg.Description,
		Currency:    currency,
	}
	if err := s.store.CreateProjectWithParticipants(ctx, project, participants); err != nil {
		slog.Error("CreateProject failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Project created", "project_id", project.ID)

	return connect.NewResponse(&rpc.CreateProjectResponse{
		Project:      toRPCProject(project),
		Participants: toRPCParticipants(participants),
	}), nil
}

// GetProject retrieves a project with its participants.
func (s *ProjectService) GetProject(ctx context.Context, req *connect.Request[rpc.GetProjectRequest]) (*connect.Response[rpc.GetProjectResponse], error) {
	projectID := req.Msg.ProjectID
	if projectID == "" {
		return nil, invalidArgument("project_id required")
	}

	project, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		slog.Error("GetProject failed", "project_id", projectID, "error", err)
		return nil, toConnectError(err)
	}

	participants, err := s.store.ListParticipants(ctx, projectID)
	if err != nil {
		slog.Error("GetProject: failed to list participants", "project_id", projectID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&rpc.GetProjectResponse{
		Project:      toRPCProject(project),
		Participants: toRPCParticipants(participants),
	}), nil
}

// ListProjects retrieves all projects.
func (s *ProjectService) ListProjects(ctx context.Context, req *connect.Request[rpc.ListProjectsRequest]) (*connect.Response[rpc.ListProjectsResponse], error) {
	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		slog.Error("ListProjects failed", "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*rpc.Project, len(projects))
	for i, p := range projects {
		out[i] = toRPCProject(p)
	}

	slog.Debug("ListProjects successful", "count", len(projects))

	return connect.NewResponse(&rpc.ListProjectsResponse{Projects: out}), nil
}

// DeleteProject removes a project with all its records.
func (s *ProjectService) DeleteProject(ctx context.Context, req *connect.Request[rpc.DeleteProjectRequest]) (*connect.Response[rpc.DeleteProjectResponse], error) {
	slog.Info("DeleteProject request received", "project_id", req.Msg.ProjectID)

	if req.Msg.ProjectID == "" {
		return nil, invalidArgument("project_id required")
	}
	if err := s.store.DeleteProject(ctx, req.Msg.ProjectID); err != nil {
		slog.Error("DeleteProject failed", "project_id", req.Msg.ProjectID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Project deleted", "project_id", req.Msg.ProjectID)

	return connect.NewResponse(&rpc.DeleteProjectResponse{}), nil
}

// AddParticipant adds a member to an existing project.
func (s *ProjectService) AddParticipant(ctx context.Context, req *connect.Request[rpc.AddParticipantRequest]) (*connect.Response[rpc.AddParticipantResponse], error) {
	projectID := req.Msg.ProjectID
	if projectID == "" {
		return nil, invalidArgument("project_id required")
	}

	participant, err := newParticipant(projectID, req.Msg.Participant)
	if err != nil {
		return nil, err
	}

	if _, err := s.store.GetProject(ctx, projectID); err != nil {
		return nil, toConnectError(err)
	}
	if err := s.store.AddParticipant(ctx, participant); err != nil {
		slog.Error("AddParticipant failed", "project_id", projectID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Participant added", "project_id", projectID, "participant_id", participant.ID)

	return connect.NewResponse(&rpc.AddParticipantResponse{Participant: toRPCParticipant(participant)}), nil
}

// UpdateParticipant changes a participant's name, weight or percentage.
// Shares of existing expenses are snapshots and stay as they were.
func (s *ProjectService) UpdateParticipant(ctx context.Context, req *connect.Request[rpc.UpdateParticipantRequest]) (*connect.Response[rpc.UpdateParticipantResponse], error) {
	msg := req.Msg
	if msg.ParticipantID == "" {
		return nil, invalidArgument("participant_id required")
	}

	participant, err := s.store.GetParticipant(ctx, msg.ParticipantID)
	if err != nil {
		return nil, toConnectError(err)
	}

	if name := strings.TrimSpace(msg.Name); name != "" {
		participant.Name = name
	}
	if msg.Weight != nil {
		participant.Weight = *msg.Weight
	}
	switch {
	case msg.ClearPercentage:
		participant.Percentage = nil
	case msg.Percentage != nil:
		participant.Percentage = msg.Percentage
	}
	if err := validateWeights(participant.Weight, participant.Percentage); err != nil {
		return nil, err
	}

	if err := s.store.UpdateParticipant(ctx, participant); err != nil {
		slog.Error("UpdateParticipant failed", "participant_id", msg.ParticipantID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Participant updated", "participant_id", participant.ID, "weight", participant.Weight)

	return connect.NewResponse(&rpc.UpdateParticipantResponse{Participant: toRPCParticipant(participant)}), nil
}
