package calculator

import (
	"cmp"
	"math"
	"slices"

	"github.com/shopspring/decimal"
)

// SuggestedSettlement is a transfer that moves balances toward zero.
// It is not persisted unless the caller records it as a real settlement.
type SuggestedSettlement struct {
	FromID   string // Debtor who should pay
	FromName string
	ToID     string // Creditor who should receive
	ToName   string
	Amount   float64 // Rounded to a whole currency unit
}

type party struct {
	id        string
	name      string
	remaining float64
}

// CalculateOptimalSettlements matches the largest debtors with the largest
// creditors until every balance is within Tolerance of zero.
//
// At most len(creditors)+len(debtors)-1 settlements are produced. The result is
// not guaranteed to be the global minimum, which is NP-hard in general.
func CalculateOptimalSettlements(balances []Balance) []SuggestedSettlement {
	var creditors, debtors []party
	for _, b := range balances {
		switch {
		case b.Balance > Tolerance:
			creditors = append(creditors, party{id: b.ParticipantID, name: b.ParticipantName, remaining: b.Balance})
		case b.Balance < -Tolerance:
			debtors = append(debtors, party{id: b.ParticipantID, name: b.ParticipantName, remaining: -b.Balance})
		}
	}

	// Largest first; ties keep input order
	byRemainingDesc := func(a, b party) int { return cmp.Compare(b.remaining, a.remaining) }
	slices.SortStableFunc(creditors, byRemainingDesc)
	slices.SortStableFunc(debtors, byRemainingDesc)

	var suggestions []SuggestedSettlement
	i, j := 0, 0
	for i < len(creditors) && j < len(debtors) {
		creditor := &creditors[i]
		debtor := &debtors[j]

		amount := math.Min(creditor.remaining, debtor.remaining)
		if amount > Tolerance {
			suggestions = append(suggestions, SuggestedSettlement{
				FromID:   debtor.id,
				FromName: debtor.name,
				ToID:     creditor.id,
				ToName:   creditor.name,
				Amount:   roundToUnit(amount),
			})
		}

		creditor.remaining -= amount
		debtor.remaining -= amount

		if creditor.remaining < Tolerance {
			i++
		}
		if debtor.remaining < Tolerance {
			j++
		}
	}

	return suggestions
}

// roundToUnit rounds to the nearest whole currency unit, halves away from zero.
func roundToUnit(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(0).InexactFloat64()
}
