package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/dongi/internal/calculator"
	"github.com/mmynk/dongi/internal/models"
	"github.com/mmynk/dongi/internal/rpc"
	"github.com/mmynk/dongi/internal/storage"
)

// SettlementService implements the Connect SettlementService
type SettlementService struct {
	store storage.Store
}

var _ rpc.SettlementServiceHandler = (*SettlementService)(nil)

// NewSettlementService creates a new SettlementService with the given storage backend.
func NewSettlementService(store storage.Store) *SettlementService {
	return &SettlementService{store: store}
}

// projectMember loads a participant and checks it belongs to projectID.
func (s *SettlementService) projectMember(ctx context.Context, projectID, participantID, role string) error {
	p, err := s.store.GetParticipant(ctx, participantID)
	if errors.Is(err, storage.ErrNotFound) || (err == nil && p.ProjectID != projectID) {
		return invalidArgument("%s %s is not in project %s", role, participantID, projectID)
	}
	return err
}

// RecordSettlement records a payment from one participant to another.
func (s *SettlementService) RecordSettlement(ctx context.Context, req *connect.Request[rpc.RecordSettlementRequest]) (*connect.Response[rpc.RecordSettlementResponse], error) {
	msg := req.Msg
	slog.Info("RecordSettlement request received",
		"project_id", msg.ProjectID,
		"from_id", msg.FromID,
		"to_id", msg.ToID,
		"amount", msg.Amount,
	)

	if msg.ProjectID == "" {
		return nil, invalidArgument("project_id required")
	}
	if msg.FromID == "" || msg.ToID == "" {
		return nil, invalidArgument("from_id and to_id required")
	}
	if msg.FromID == msg.ToID {
		return nil, invalidArgument("cannot settle with yourself")
	}
	if msg.Amount <= 0 {
		return nil, invalidArgument("amount must be positive, got %v", msg.Amount)
	}

	if _, err := s.store.GetProject(ctx, msg.ProjectID); err != nil {
		return nil, toConnectError(err)
	}
	if err := s.projectMember(ctx, msg.ProjectID, msg.FromID, "from"); err != nil {
		return nil, toConnectError(err)
	}
	if err := s.projectMember(ctx, msg.ProjectID, msg.ToID, "to"); err != nil {
		return nil, toConnectError(err)
	}

	settlement := &models.Settlement{
		ProjectID: msg.ProjectID,
		FromID:    msg.FromID,
		ToID:      msg.ToID,
		Amount:    msg.Amount,
		Note:      msg.Note,
	}
	if err := s.store.CreateSettlement(ctx, settlement); err != nil {
		slog.Error("RecordSettlement failed", "project_id", msg.ProjectID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Settlement recorded", "settlement_id", settlement.ID, "project_id", settlement.ProjectID)

	return connect.NewResponse(&rpc.RecordSettlementResponse{Settlement: toRPCSettlement(settlement)}), nil
}

// ListSettlements retrieves all settlements of a project.
func (s *SettlementService) ListSettlements(ctx context.Context, req *connect.Request[rpc.ListSettlementsRequest]) (*connect.Response[rpc.ListSettlementsResponse], error) {
	if req.Msg.ProjectID == "" {
		return nil, invalidArgument("project_id required")
	}

	settlements, err := s.store.ListSettlementsByProject(ctx, req.Msg.ProjectID)
	if err != nil {
		slog.Error("ListSettlements failed", "project_id", req.Msg.ProjectID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&rpc.ListSettlementsResponse{Settlements: toRPCSettlements(settlements)}), nil
}

// DeleteSettlement removes a recorded settlement.
func (s *SettlementService) DeleteSettlement(ctx context.Context, req *connect.Request[rpc.DeleteSettlementRequest]) (*connect.Response[rpc.DeleteSettlementResponse], error) {
	if req.Msg.SettlementID == "" {
		return nil, invalidArgument("settlement_id required")
	}

	if err := s.store.DeleteSettlement(ctx, req.Msg.SettlementID); err != nil {
		slog.Error("DeleteSettlement failed", "settlement_id", req.Msg.SettlementID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Settlement deleted", "settlement_id", req.Msg.SettlementID)

	return connect.NewResponse(&rpc.DeleteSettlementResponse{}), nil
}

// GetBalances computes every participant's net balance.
func (s *SettlementService) GetBalances(ctx context.Context, req *connect.Request[rpc.GetBalancesRequest]) (*connect.Response[rpc.GetBalancesResponse], error) {
	if req.Msg.ProjectID == "" {
		return nil, invalidArgument("project_id required")
	}

	in, err := loadProjectInput(ctx, s.store, req.Msg.ProjectID)
	if err != nil {
		slog.Error("GetBalances failed", "project_id", req.Msg.ProjectID, "error", err)
		return nil, toConnectError(err)
	}

	balances := calculator.CalculateBalances(in.Expenses, in.Participants, in.Settlements)

	return connect.NewResponse(&rpc.GetBalancesResponse{Balances: toRPCBalances(balances)}), nil
}

// GetProjectSummary returns totals, balances and the suggested settlements of a project.
func (s *SettlementService) GetProjectSummary(ctx context.Context, req *connect.Request[rpc.GetProjectSummaryRequest]) (*connect.Response[rpc.GetProjectSummaryResponse], error) {
	if req.Msg.ProjectID == "" {
		return nil, invalidArgument("project_id required")
	}

	in, err := loadProjectInput(ctx, s.store, req.Msg.ProjectID)
	if err != nil {
		slog.Error("GetProjectSummary failed", "project_id", req.Msg.ProjectID, "error", err)
		return nil, toConnectError(err)
	}

	summary := calculator.CalculateProjectSummary(in)

	slog.Debug("GetProjectSummary calculated",
		"project_id", summary.ProjectID,
		"total_expenses", summary.TotalExpenses,
		"suggestions_count", len(summary.Settlements),
	)

	return connect.NewResponse(&rpc.GetProjectSummaryResponse{
		ProjectID:            summary.ProjectID,
		ProjectName:          summary.ProjectName,
		Currency:             summary.Currency,
		TotalExpenses:        summary.TotalExpenses,
		Balances:             toRPCBalances(summary.ParticipantBalances),
		SuggestedSettlements: toRPCSuggestions(summary.Settlements),
	}), nil
}

// SettleUp records every currently suggested settlement in one transaction.
func (s *SettlementService) SettleUp(ctx context.Context, req *connect.Request[rpc.SettleUpRequest]) (*connect.Response[rpc.SettleUpResponse], error) {
	slog.Info("SettleUp request received", "project_id", req.Msg.ProjectID)

	if req.Msg.ProjectID == "" {
		return nil, invalidArgument("project_id required")
	}

	in, err := loadProjectInput(ctx, s.store, req.Msg.ProjectID)
	if err != nil {
		slog.Error("SettleUp failed", "project_id", req.Msg.ProjectID, "error", err)
		return nil, toConnectError(err)
	}

	suggestions := calculator.CalculateProjectSummary(in).Settlements
	settlements := make([]*models.Settlement, 0, len(suggestions))
	for _, sg := range suggestions {
		// Remainders below half a unit round to zero and are not real payments
		if sg.Amount <= 0 {
			continue
		}
		settlements = append(settlements, &models.Settlement{
			ProjectID: req.Msg.ProjectID,
			FromID:    sg.FromID,
			ToID:      sg.ToID,
			Amount:    sg.Amount,
			Note:      req.Msg.Note,
		})
	}

	if len(settlements) > 0 {
		if err := s.store.CreateSettlements(ctx, settlements); err != nil {
			slog.Error("SettleUp: failed to record settlements", "project_id", req.Msg.ProjectID, "error", err)
			return nil, toConnectError(err)
		}
	}

	slog.Info("SettleUp completed", "project_id", req.Msg.ProjectID, "settlements_count", len(settlements))

	return connect.NewResponse(&rpc.SettleUpResponse{Settlements: toRPCSettlements(settlements)}), nil
}
