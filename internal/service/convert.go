package service

import (
	"github.com/mmynk/dongi/internal/calculator"
	"github.com/mmynk/dongi/internal/models"
	"github.com/mmynk/dongi/internal/rpc"
)

func toRPCProject(p *models.Project) *rpc.Project {
	return &rpc.Project{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Currency:    p.Currency,
		CreatedAt:   p.CreatedAt,
	}
}

func toRPCParticipant(p *models.Participant) *rpc.Participant {
	return &rpc.Participant{
		ID:         p.ID,
		ProjectID:  p.ProjectID,
		Name:       p.Name,
		Weight:     p.Weight,
		Percentage: p.Percentage,
		CreatedAt:  p.CreatedAt,
	}
}

func toRPCParticipants(ps []*models.Participant) []*rpc.Participant {
	out := make([]*rpc.Participant, len(ps))
	for i, p := range ps {
		out[i] = toRPCParticipant(p)
	}
	return out
}

func toRPCShares(shares []models.Share) []rpc.Share {
	out := make([]rpc.Share, len(shares))
	for i, s := range shares {
		out[i] = rpc.Share{ParticipantID: s.ParticipantID, Amount: s.Amount, Weight: s.Weight}
	}
	return out
}

func toRPCExpense(e *models.Expense) *rpc.Expense {
	return &rpc.Expense{
		ID:        e.ID,
		ProjectID: e.ProjectID,
		Title:     e.Title,
		Amount:    e.Amount,
		PayerID:   e.PayerID,
		SplitType: e.SplitType,
		Shares:    toRPCShares(e.Shares),
		CreatedAt: e.CreatedAt,
	}
}

func toRPCSettlement(s *models.Settlement) *rpc.Settlement {
	return &rpc.Settlement{
		ID:        s.ID,
		ProjectID: s.ProjectID,
		FromID:    s.FromID,
		ToID:      s.ToID,
		Amount:    s.Amount,
		Note:      s.Note,
		CreatedAt: s.CreatedAt,
	}
}

func toRPCSettlements(ss []*models.Settlement) []*rpc.Settlement {
	out := make([]*rpc.Settlement, len(ss))
	for i, s := range ss {
		out[i] = toRPCSettlement(s)
	}
	return out
}

func toRPCBalances(bs []calculator.Balance) []*rpc.Balance {
	out := make([]*rpc.Balance, len(bs))
	for i, b := range bs {
		out[i] = &rpc.Balance{
			ParticipantID:   b.ParticipantID,
			ParticipantName: b.ParticipantName,
			TotalPaid:       b.TotalPaid,
			TotalShare:      b.TotalShare,
			Balance:         b.Balance,
		}
	}
	return out
}

func toRPCSuggestions(ss []calculator.SuggestedSettlement) []*rpc.SuggestedSettlement {
	out := make([]*rpc.SuggestedSettlement, len(ss))
	for i, s := range ss {
		out[i] = &rpc.SuggestedSettlement{
			FromID:   s.FromID,
			FromName: s.FromName,
			ToID:     s.ToID,
			ToName:   s.ToName,
			Amount:   s.Amount,
		}
	}
	return out
}

func toModelShares(results []calculator.SplitResult) []models.Share {
	shares := make([]models.Share, len(results))
	for i, r := range results {
		shares[i] = models.Share{ParticipantID: r.ParticipantID, Amount: r.Amount, Weight: r.Weight}
	}
	return shares
}
