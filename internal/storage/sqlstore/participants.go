package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/dongi/internal/models"
	"github.com/mmynk/dongi/internal/storage"
)

const participantColumns = "id, project_id, name, weight, percentage, created_at"

// seqAttempts bounds retries when concurrent adds pick the same position.
const seqAttempts = 5

// AddParticipant persists a new participant at the end of its project's member list.
func (s *Store) AddParticipant(ctx context.Context, participant *models.Participant) error {
	var err error
	for attempt := 0; attempt < seqAttempts; attempt++ {
		err = s.inTx(ctx, func(tx *sql.Tx) error {
			var seq int
			err := tx.QueryRowContext(ctx,
				s.rebind("SELECT COALESCE(MAX(seq), 0) + 1 FROM participants WHERE project_id = ?"),
				participant.ProjectID,
			).Scan(&seq)
			if err != nil {
				return fmt.Errorf("failed to allocate participant position: %w", err)
			}
			return s.insertParticipant(ctx, tx, participant, seq)
		})
		if !isUniqueViolation(err) {
			return err
		}
	}
	return err
}

func (s *Store) insertParticipant(ctx context.Context, q queryer, participant *models.Participant, seq int) error {
	if participant.ID == "" {
		participant.ID = uuid.New().String()
	}
	if participant.CreatedAt == 0 {
		participant.CreatedAt = time.Now().Unix()
	}
	if participant.Weight == 0 {
		participant.Weight = models.DefaultWeight
	}

	_, err := q.ExecContext(ctx,
		s.rebind(`INSERT INTO participants (id, project_id, seq, name, weight, percentage, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`),
		participant.ID, participant.ProjectID, seq, participant.Name,
		participant.Weight, nullFloat(participant.Percentage), participant.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert participant: %w", err)
	}
	return nil
}

// GetParticipant retrieves a participant by ID.
func (s *Store) GetParticipant(ctx context.Context, participantID string) (*models.Participant, error) {
	row := s.db.QueryRowContext(ctx,
		s.rebind("SELECT "+participantColumns+" FROM participants WHERE id = ?"),
		participantID,
	)
	participant, err := scanParticipant(row)
	if err != nil {
		return nil, notFound(err, "participant", participantID)
	}
	return participant, nil
}

// UpdateParticipant updates name, weight and percentage of an existing participant.
func (s *Store) UpdateParticipant(ctx context.Context, participant *models.Participant) error {
	res, err := s.db.ExecContext(ctx,
		s.rebind("UPDATE participants SET name = ?, weight = ?, percentage = ? WHERE id = ?"),
		participant.Name, participant.Weight, nullFloat(participant.Percentage), participant.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update participant: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update participant: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("participant %s: %w", participant.ID, storage.ErrNotFound)
	}
	return nil
}

// ListParticipants retrieves all participants of a project in join order.
func (s *Store) ListParticipants(ctx context.Context, projectID string) ([]*models.Participant, error) {
	rows, err := s.db.QueryContext(ctx,
		s.rebind("SELECT "+participantColumns+" FROM participants WHERE project_id = ? ORDER BY seq, created_at, id"),
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	var participants []*models.Participant
	for rows.Next() {
		participant, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, participant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}
	return participants, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanParticipant(row scanner) (*models.Participant, error) {
	participant := &models.Participant{}
	var percentage sql.NullFloat64
	if err := row.Scan(&participant.ID, &participant.ProjectID, &participant.Name,
		&participant.Weight, &percentage, &participant.CreatedAt); err != nil {
		return nil, err
	}
	participant.Percentage = floatPtr(percentage)
	return participant, nil
}
