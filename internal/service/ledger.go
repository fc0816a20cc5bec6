package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/dongi/internal/calculator"
	"github.com/mmynk/dongi/internal/models"
	"github.com/mmynk/dongi/internal/storage"
)

// loadProjectInput reads everything the calculator needs for one project.
func loadProjectInput(ctx context.Context, store storage.Store, projectID string) (calculator.ProjectInput, error) {
	project, err := store.GetProject(ctx, projectID)
	if err != nil {
		return calculator.ProjectInput{}, err
	}
	participants, err := store.ListParticipants(ctx, projectID)
	if err != nil {
		return calculator.ProjectInput{}, fmt.Errorf("failed to load participants: %w", err)
	}
	expenses, err := store.ListExpensesByProject(ctx, projectID)
	if err != nil {
		return calculator.ProjectInput{}, fmt.Errorf("failed to load expenses: %w", err)
	}
	settlements, err := store.ListSettlementsByProject(ctx, projectID)
	if err != nil {
		return calculator.ProjectInput{}, fmt.Errorf("failed to load settlements: %w", err)
	}

	in := calculator.ProjectInput{
		ProjectID:    project.ID,
		ProjectName:  project.Name,
		Currency:     project.Currency,
		Participants: make([]calculator.ParticipantRef, len(participants)),
		Expenses:     make([]calculator.ExpenseForBalance, len(expenses)),
		Settlements:  make([]calculator.SettlementForBalance, len(settlements)),
	}
	for i, p := range participants {
		in.Participants[i] = calculator.ParticipantRef{ID: p.ID, Name: p.Name}
	}
	for i, e := range expenses {
		in.Expenses[i] = expenseForBalance(e)
	}
	for i, s := range settlements {
		in.Settlements[i] = calculator.SettlementForBalance{ID: s.ID, Amount: s.Amount, FromID: s.FromID, ToID: s.ToID}
	}

	if unknown := calculator.UnknownParticipants(in.Expenses, in.Participants, in.Settlements); len(unknown) > 0 {
		slog.Warn("Records reference participants outside the project; they are ignored in balances",
			"project_id", projectID,
			"participant_ids", unknown,
		)
	}

	return in, nil
}

func expenseForBalance(e *models.Expense) calculator.ExpenseForBalance {
	shares := make([]calculator.ShareForBalance, len(e.Shares))
	for i, s := range e.Shares {
		shares[i] = calculator.ShareForBalance{ParticipantID: s.ParticipantID, Amount: s.Amount}
	}
	return calculator.ExpenseForBalance{
		ID:      e.ID,
		Amount:  float64(e.Amount),
		PayerID: e.PayerID,
		Shares:  shares,
	}
}
