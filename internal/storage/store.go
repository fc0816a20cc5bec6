// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/dongi/internal/models"
)

// ErrNotFound is returned (wrapped) when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for project storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL)
// without changing the service layer.
type Store interface {
	// CreateProject persists a new project.
	// The project.ID and CreatedAt fields will be populated by the store.
	CreateProject(ctx context.Context, project *models.Project) error
	// CreateProjectWithParticipants persists a project and its initial participants
	// atomically. Each participant's ProjectID is set to the new project's ID.
	CreateProjectWithParticipants(ctx context.Context, project *models.Project, participants []*models.Participant) error
	GetProject(ctx context.Context, projectID string) (*models.Project, error)
	ListProjects(ctx context.Context) ([]*models.Project, error)
	// DeleteProject removes a project with all its participants, expenses and settlements.
	DeleteProject(ctx context.Context, projectID string) error

	// AddParticipant persists a new participant of participant.ProjectID.
	AddParticipant(ctx context.Context, participant *models.Participant) error
	GetParticipant(ctx context.Context, participantID string) (*models.Participant, error)
	// UpdateParticipant changes name, weight and percentage. Recorded shares are not touched.
	UpdateParticipant(ctx context.Context, participant *models.Participant) error
	// ListParticipants returns participants in the order they joined.
	ListParticipants(ctx context.Context, projectID string) ([]*models.Participant, error)

	// CreateExpense persists an expense and its shares atomically.
	CreateExpense(ctx context.Context, expense *models.Expense) error
	GetExpense(ctx context.Context, expenseID string) (*models.Expense, error)
	// ListExpensesByProject returns expenses with their shares, newest first.
	ListExpensesByProject(ctx context.Context, projectID string) ([]*models.Expense, error)
	DeleteExpense(ctx context.Context, expenseID string) error

	CreateSettlement(ctx context.Context, settlement *models.Settlement) error
	// CreateSettlements persists several settlements in one transaction.
	CreateSettlements(ctx context.Context, settlements []*models.Settlement) error
	GetSettlement(ctx context.Context, settlementID string) (*models.Settlement, error)
	ListSettlementsByProject(ctx context.Context, projectID string) ([]*models.Settlement, error)
	DeleteSettlement(ctx context.Context, settlementID string) error

	// Close releases any resources held by the store.
	Close() error
}
