package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/dongi/internal/models"
)

const settlementColumns = "id, project_id, from_id, to_id, amount, created_at, note"

// CreateSettlement persists a new settlement to the database.
func (s *Store) CreateSettlement(ctx context.Context, settlement *models.Settlement) error {
	return s.insertSettlement(ctx, s.db, settlement)
}

// CreateSettlements persists all settlements or none of them.
func (s *Store) CreateSettlements(ctx context.Context, settlements []*models.Settlement) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		for _, settlement := range settlements {
			if err := s.insertSettlement(ctx, tx, settlement); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) insertSettlement(ctx context.Context, q queryer, settlement *models.Settlement) error {
	if settlement.ID == "" {
		settlement.ID = uuid.New().String()
	}
	if settlement.CreatedAt == 0 {
		settlement.CreatedAt = time.Now().Unix()
	}

	var note any
	if settlement.Note != "" {
		note = settlement.Note
	}

	_, err := q.ExecContext(ctx,
		s.rebind(`INSERT INTO settlements (id, project_id, from_id, to_id, amount, created_at, note)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`),
		settlement.ID, settlement.ProjectID, settlement.FromID, settlement.ToID,
		settlement.Amount, settlement.CreatedAt, note,
	)
	if err != nil {
		return fmt.Errorf("failed to insert settlement: %w", err)
	}
	return nil
}

// GetSettlement retrieves a settlement by ID.
func (s *Store) GetSettlement(ctx context.Context, settlementID string) (*models.Settlement, error) {
	row := s.db.QueryRowContext(ctx,
		s.rebind("SELECT "+settlementColumns+" FROM settlements WHERE id = ?"),
		settlementID,
	)
	settlement, err := scanSettlement(row)
	if err != nil {
		return nil, notFound(err, "settlement", settlementID)
	}
	return settlement, nil
}

// ListSettlementsByProject retrieves all settlements for a project, newest first.
func (s *Store) ListSettlementsByProject(ctx context.Context, projectID string) ([]*models.Settlement, error) {
	rows, err := s.db.QueryContext(ctx,
		s.rebind("SELECT "+settlementColumns+" FROM settlements WHERE project_id = ? ORDER BY created_at DESC, id"),
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements by project: %w", err)
	}
	defer rows.Close()

	var settlements []*models.Settlement
	for rows.Next() {
		settlement, err := scanSettlement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}
		settlements = append(settlements, settlement)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settlements: %w", err)
	}
	return settlements, nil
}

// DeleteSettlement removes a settlement by ID.
func (s *Store) DeleteSettlement(ctx context.Context, settlementID string) error {
	return s.deleteByID(ctx, "settlements", "settlement", settlementID)
}

func scanSettlement(row scanner) (*models.Settlement, error) {
	settlement := &models.Settlement{}
	var note sql.NullString
	if err := row.Scan(&settlement.ID, &settlement.ProjectID, &settlement.FromID, &settlement.ToID,
		&settlement.Amount, &settlement.CreatedAt, &note); err != nil {
		return nil, err
	}
	if note.Valid {
		settlement.Note = note.String
	}
	return settlement, nil
}
