package calculator

// ParticipantRef identifies a participant for balance calculations.
type ParticipantRef struct {
	ID   string
	Name string
}

// ShareForBalance is one participant's recorded share of an expense.
type ShareForBalance struct {
	ParticipantID string
	Amount        float64
}

// ExpenseForBalance represents an expense with the minimal information needed for balance calculations.
type ExpenseForBalance struct {
	ID      string
	Amount  float64
	PayerID string
	Shares  []ShareForBalance
}

// SettlementForBalance represents a settlement with the minimal information needed for balance calculations.
type SettlementForBalance struct {
	ID     string
	Amount float64
	FromID string // Who paid (debtor settling up)
	ToID   string // Who received (creditor being paid)
}

// Balance is the net position of one participant.
type Balance struct {
	ParticipantID   string
	ParticipantName string
	TotalPaid       float64 // Sum of expenses this participant paid for
	TotalShare      float64 // Sum of this participant's shares
	Balance         float64 // Positive = owed money, Negative = owes money
}

type accumulator struct {
	paid             float64
	share            float64
	settlementAdjust float64
}

// CalculateBalances aggregates expenses and settlements into one balance per
// participant, in the order participants were given.
//
// Algorithm:
// - For each expense: payer's paid += amount, each share adds to that participant's share
// - For each settlement: from's adjustment += amount, to's adjustment -= amount
// - balance = (paid - share) + adjustment
//
// Expenses, shares and settlements that reference a participant missing from
// participants are ignored. Use UnknownParticipants to detect them.
func CalculateBalances(expenses []ExpenseForBalance, participants []ParticipantRef, settlements []SettlementForBalance) []Balance {
	acc := make(map[string]*accumulator, len(participants))
	for _, p := range participants {
		acc[p.ID] = &accumulator{}
	}

	for _, e := range expenses {
		if a, ok := acc[e.PayerID]; ok {
			a.paid += e.Amount
		}
		for _, s := range e.Shares {
			if a, ok := acc[s.ParticipantID]; ok {
				a.share += s.Amount
			}
		}
	}

	for _, s := range settlements {
		// Paying down debt raises the payer's balance
		if a, ok := acc[s.FromID]; ok {
			a.settlementAdjust += s.Amount
		}
		// Receiving payment lowers the receiver's remaining credit
		if a, ok := acc[s.ToID]; ok {
			a.settlementAdjust -= s.Amount
		}
	}

	balances := make([]Balance, len(participants))
	for i, p := range participants {
		a := acc[p.ID]
		balances[i] = Balance{
			ParticipantID:   p.ID,
			ParticipantName: p.Name,
			TotalPaid:       a.paid,
			TotalShare:      a.share,
			Balance:         (a.paid - a.share) + a.settlementAdjust,
		}
	}
	return balances
}

// UnknownParticipants returns the distinct participant IDs referenced by
// expenses or settlements that are not in participants, in first-seen order.
func UnknownParticipants(expenses []ExpenseForBalance, participants []ParticipantRef, settlements []SettlementForBalance) []string {
	known := make(map[string]bool, len(participants))
	for _, p := range participants {
		known[p.ID] = true
	}

	var unknown []string
	seen := make(map[string]bool)
	check := func(id string) {
		if known[id] || seen[id] {
			return
		}
		seen[id] = true
		unknown = append(unknown, id)
	}

	for _, e := range expenses {
		check(e.PayerID)
		for _, s := range e.Shares {
			check(s.ParticipantID)
		}
	}
	for _, s := range settlements {
		check(s.FromID)
		check(s.ToID)
	}
	return unknown
}
