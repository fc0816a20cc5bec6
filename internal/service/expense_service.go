package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/dongi/internal/calculator"
	"github.com/mmynk/dongi/internal/models"
	"github.com/mmynk/dongi/internal/rpc"
	"github.com/mmynk/dongi/internal/storage"
)

// ExpenseService implements the Connect ExpenseService
type ExpenseService struct {
	store storage.Store
}

var _ rpc.ExpenseServiceHandler = (*ExpenseService)(nil)

// NewExpenseService creates a new ExpenseService with the given storage backend.
func NewExpenseService(store storage.Store) *ExpenseService {
	return &ExpenseService{store: store}
}

// split resolves the participants of a project and runs the split calculator.
func (s *ExpenseService) split(ctx context.Context, projectID string, amount int64, in rpc.SplitInput) (calculator.SplitType, []calculator.SplitResult, error) {
	if projectID == "" {
		return "", nil, invalidArgument("project_id required")
	}
	if amount <= 0 {
		return "", nil, invalidArgument("amount must be positive, got %d", amount)
	}

	participants, err := s.store.ListParticipants(ctx, projectID)
	if err != nil {
		return "", nil, err
	}
	if len(participants) == 0 {
		if _, err := s.store.GetProject(ctx, projectID); err != nil {
			return "", nil, err
		}
	}
	byID := make(map[string]*models.Participant, len(participants))
	for _, p := range participants {
		byID[p.ID] = p
	}

	splitType := calculator.ParseSplitType(strings.ToUpper(strings.TrimSpace(in.SplitType)))

	// Empty ParticipantIDs selects the whole project
	selected := participants
	if len(in.ParticipantIDs) > 0 {
		seen := make(map[string]bool, len(in.ParticipantIDs))
		selected = make([]*models.Participant, 0, len(in.ParticipantIDs))
		for _, id := range in.ParticipantIDs {
			p, ok := byID[id]
			if !ok {
				return "", nil, invalidArgument("participant %s is not in project %s", id, projectID)
			}
			if seen[id] {
				return "", nil, invalidArgument("participant %s listed twice", id)
			}
			seen[id] = true
			selected = append(selected, p)
		}
	}

	splitParticipants := make([]calculator.SplitParticipant, len(selected))
	for i, p := range selected {
		splitParticipants[i] = calculator.SplitParticipant{ID: p.ID, Weight: p.Weight, Percentage: p.Percentage}
	}

	var manual []calculator.ManualShare
	if splitType == calculator.SplitManual {
		seen := make(map[string]bool, len(in.ManualShares))
		manual = make([]calculator.ManualShare, len(in.ManualShares))
		for i, ms := range in.ManualShares {
			if _, ok := byID[ms.ParticipantID]; !ok {
				return "", nil, invalidArgument("participant %s is not in project %s", ms.ParticipantID, projectID)
			}
			if seen[ms.ParticipantID] {
				return "", nil, invalidArgument("participant %s has more than one manual share", ms.ParticipantID)
			}
			if ms.Amount < 0 {
				return "", nil, invalidArgument("manual share for %s must not be negative", ms.ParticipantID)
			}
			seen[ms.ParticipantID] = true
			manual[i] = calculator.ManualShare{ParticipantID: ms.ParticipantID, Amount: ms.Amount}
		}
	}

	results, err := calculator.CalculateSplit(float64(amount), splitParticipants, splitType, manual)
	if err != nil {
		return "", nil, err
	}
	return splitType, results, nil
}

// PreviewSplit computes shares without saving anything.
func (s *ExpenseService) PreviewSplit(ctx context.Context, req *connect.Request[rpc.PreviewSplitRequest]) (*connect.Response[rpc.PreviewSplitResponse], error) {
	splitType, results, err := s.split(ctx, req.Msg.ProjectID, req.Msg.Amount, req.Msg.Split)
	if err != nil {
		slog.Debug("PreviewSplit rejected", "project_id", req.Msg.ProjectID, "error", err)
		return nil, toConnectError(err)
	}

	valid := calculator.ValidateSplit(float64(req.Msg.Amount), results)

	slog.Debug("PreviewSplit calculated",
		"project_id", req.Msg.ProjectID,
		"split_type", splitType,
		"shares_count", len(results),
		"valid", valid,
	)

	return connect.NewResponse(&rpc.PreviewSplitResponse{
		SplitType: string(splitType),
		Shares:    toRPCShares(toModelShares(results)),
		Valid:     valid,
	}), nil
}

// CreateExpense splits and stores an expense. Shares that do not add up to
// the amount are rejected.
func (s *ExpenseService) CreateExpense(ctx context.Context, req *connect.Request[rpc.CreateExpenseRequest]) (*connect.Response[rpc.CreateExpenseResponse], error) {
	msg := req.Msg
	slog.Info("CreateExpense request received",
		"project_id", msg.ProjectID,
		"title", msg.Title,
		"amount", msg.Amount,
		"split_type", msg.Split.SplitType,
	)

	title := strings.TrimSpace(msg.Title)
	if title == "" {
		return nil, invalidArgument("title required")
	}
	if msg.PayerID == "" {
		return nil, invalidArgument("payer_id required")
	}

	splitType, results, err := s.split(ctx, msg.ProjectID, msg.Amount, msg.Split)
	if err != nil {
		slog.Warn("CreateExpense: split failed", "project_id", msg.ProjectID, "error", err)
		return nil, toConnectError(err)
	}
	if !calculator.ValidateSplit(float64(msg.Amount), results) {
		return nil, invalidArgument("shares do not add up to %d", msg.Amount)
	}

	payer, err := s.store.GetParticipant(ctx, msg.PayerID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, toConnectError(err)
	}
	if payer == nil || payer.ProjectID != msg.ProjectID {
		return nil, invalidArgument("payer %s is not in project %s", msg.PayerID, msg.ProjectID)
	}

	expense := &models.Expense{
		ProjectID: msg.ProjectID,
		Title:     title,
		Amount:    msg.Amount,
		PayerID:   msg.PayerID,
		SplitType: string(splitType),
		Shares:    toModelShares(results),
	}
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Error("CreateExpense failed", "project_id", msg.ProjectID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Expense created",
		"expense_id", expense.ID,
		"project_id", expense.ProjectID,
		"shares_count", len(expense.Shares),
	)

	return connect.NewResponse(&rpc.CreateExpenseResponse{Expense: toRPCExpense(expense)}), nil
}

// GetExpense retrieves an expense with its shares.
func (s *ExpenseService) GetExpense(ctx context.Context, req *connect.Request[rpc.GetExpenseRequest]) (*connect.Response[rpc.GetExpenseResponse], error) {
	if req.Msg.ExpenseID == "" {
		return nil, invalidArgument("expense_id required")
	}

	expense, err := s.store.GetExpense(ctx, req.Msg.ExpenseID)
	if err != nil {
		slog.Error("GetExpense failed", "expense_id", req.Msg.ExpenseID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&rpc.GetExpenseResponse{Expense: toRPCExpense(expense)}), nil
}

// ListExpenses retrieves all expenses of a project.
func (s *ExpenseService) ListExpenses(ctx context.Context, req *connect.Request[rpc.ListExpensesRequest]) (*connect.Response[rpc.ListExpensesResponse], error) {
	if req.Msg.ProjectID == "" {
		return nil, invalidArgument("project_id required")
	}

	expenses, err := s.store.ListExpensesByProject(ctx, req.Msg.ProjectID)
	if err != nil {
		slog.Error("ListExpenses failed", "project_id", req.Msg.ProjectID, "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*rpc.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = toRPCExpense(e)
	}

	return connect.NewResponse(&rpc.ListExpensesResponse{Expenses: out}), nil
}

// DeleteExpense removes an expense and its shares.
func (s *ExpenseService) DeleteExpense(ctx context.Context, req *connect.Request[rpc.DeleteExpenseRequest]) (*connect.Response[rpc.DeleteExpenseResponse], error) {
	if req.Msg.ExpenseID == "" {
		return nil, invalidArgument("expense_id required")
	}

	if err := s.store.DeleteExpense(ctx, req.Msg.ExpenseID); err != nil {
		slog.Error("DeleteExpense failed", "expense_id", req.Msg.ExpenseID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Expense deleted", "expense_id", req.Msg.ExpenseID)

	return connect.NewResponse(&rpc.DeleteExpenseResponse{}), nil
}
