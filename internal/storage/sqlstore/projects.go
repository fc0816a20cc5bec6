package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/dongi/internal/models"
)

// CreateProject persists a new project to the database.
func (s *Store) CreateProject(ctx context.Context, project *models.Project) error {
	return s.insertProject(ctx, s.db, project)
}

// CreateProjectWithParticipants persists a project and its first participants
// in one transaction. Participants keep the order given.
func (s *Store) CreateProjectWithParticipants(ctx context.Context, project *models.Project, participants []*models.Participant) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if err := s.insertProject(ctx, tx, project); err != nil {
			return err
		}
		for i, participant := range participants {
			participant.ProjectID = project.ID
			if err := s.insertParticipant(ctx, tx, participant, i+1); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) insertProject(ctx context.Context, q queryer, project *models.Project) error {
	if project.ID == "" {
		project.ID = uuid.New().String()
	}
	if project.CreatedAt == 0 {
		project.CreatedAt = time.Now().Unix()
	}

	_, err := q.ExecContext(ctx,
		s.rebind("INSERT INTO projects (id, name, description, currency, created_at) VALUES (?, ?, ?, ?, ?)"),
		project.ID, project.Name, project.Description, project.Currency, project.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert project: %w", err)
	}
	return nil
}

// GetProject retrieves a project by ID.
func (s *Store) GetProject(ctx context.Context, projectID string) (*models.Project, error) {
	project := &models.Project{}
	err := s.db.QueryRowContext(ctx,
		s.rebind("SELECT id, name, description, currency, created_at FROM projects WHERE id = ?"),
		projectID,
	).Scan(&project.ID, &project.Name, &project.Description, &project.Currency, &project.CreatedAt)
	if err != nil {
		return nil, notFound(err, "project", projectID)
	}
	return project, nil
}

// ListProjects retrieves all projects, newest first.
func (s *Store) ListProjects(ctx context.Context) ([]*models.Project, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, description, currency, created_at FROM projects ORDER BY created_at DESC, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		project := &models.Project{}
		if err := rows.Scan(&project.ID, &project.Name, &project.Description, &project.Currency, &project.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}
	return projects, nil
}

// DeleteProject removes a project. Participants, expenses and settlements cascade.
func (s *Store) DeleteProject(ctx context.Context, projectID string) error {
	return s.deleteByID(ctx, "projects", "project", projectID)
}
