package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/dongi/internal/models"
)

const expenseColumns = "id, project_id, title, amount, payer_id, split_type, created_at"

// CreateExpense persists a new expense and its share snapshots in one transaction.
func (s *Store) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	return s.inTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			s.rebind(`INSERT INTO expenses (id, project_id, title, amount, payer_id, split_type, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`),
			expense.ID, expense.ProjectID, expense.Title, expense.Amount,
			expense.PayerID, expense.SplitType, expense.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense: %w", err)
		}

		for i, share := range expense.Shares {
			_, err = tx.ExecContext(ctx,
				s.rebind(`INSERT INTO expense_shares (expense_id, participant_id, position, amount, weight)
				 VALUES (?, ?, ?, ?, ?)`),
				expense.ID, share.ParticipantID, i, share.Amount, share.Weight,
			)
			if err != nil {
				return fmt.Errorf("failed to insert share: %w", err)
			}
		}
		return nil
	})
}

// GetExpense retrieves an expense by ID, including its shares.
func (s *Store) GetExpense(ctx context.Context, expenseID string) (*models.Expense, error) {
	row := s.db.QueryRowContext(ctx,
		s.rebind("SELECT "+expenseColumns+" FROM expenses WHERE id = ?"),
		expenseID,
	)
	expense, err := scanExpense(row)
	if err != nil {
		return nil, notFound(err, "expense", expenseID)
	}

	shares, err := s.loadShares(ctx,
		"SELECT expense_id, participant_id, amount, weight FROM expense_shares WHERE expense_id = ? ORDER BY position",
		expenseID,
	)
	if err != nil {
		return nil, err
	}
	expense.Shares = shares[expense.ID]
	return expense, nil
}

// ListExpensesByProject retrieves all expenses of a project with their shares, newest first.
func (s *Store) ListExpensesByProject(ctx context.Context, projectID string) ([]*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		s.rebind("SELECT "+expenseColumns+" FROM expenses WHERE project_id = ? ORDER BY created_at DESC, id"),
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	if len(expenses) == 0 {
		return expenses, nil
	}

	shares, err := s.loadShares(ctx,
		`SELECT s.expense_id, s.participant_id, s.amount, s.weight
		 FROM expense_shares s JOIN expenses e ON e.id = s.expense_id
		 WHERE e.project_id = ? ORDER BY s.expense_id, s.position`,
		projectID,
	)
	if err != nil {
		return nil, err
	}
	for _, expense := range expenses {
		expense.Shares = shares[expense.ID]
	}
	return expenses, nil
}

// DeleteExpense removes an expense and its shares.
func (s *Store) DeleteExpense(ctx context.Context, expenseID string) error {
	return s.deleteByID(ctx, "expenses", "expense", expenseID)
}

// loadShares runs query and groups the resulting shares by expense ID.
func (s *Store) loadShares(ctx context.Context, query string, args ...any) (map[string][]models.Share, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get shares: %w", err)
	}
	defer rows.Close()

	shares := make(map[string][]models.Share)
	for rows.Next() {
		var expenseID string
		var share models.Share
		if err := rows.Scan(&expenseID, &share.ParticipantID, &share.Amount, &share.Weight); err != nil {
			return nil, fmt.Errorf("failed to scan share: %w", err)
		}
		shares[expenseID] = append(shares[expenseID], share)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shares: %w", err)
	}
	return shares, nil
}

func scanExpense(row scanner) (*models.Expense, error) {
	expense := &models.Expense{}
	if err := row.Scan(&expense.ID, &expense.ProjectID, &expense.Title, &expense.Amount,
		&expense.PayerID, &expense.SplitType, &expense.CreatedAt); err != nil {
		return nil, err
	}
	return expense, nil
}
