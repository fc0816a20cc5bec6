package calculator

// ProjectInput is everything needed to summarize one project.
type ProjectInput struct {
	ProjectID    string
	ProjectName  string
	Currency     string
	Expenses     []ExpenseForBalance
	Participants []ParticipantRef
	Settlements  []SettlementForBalance
}

// ProjectSummary is the computed financial state of a project.
type ProjectSummary struct {
	ProjectID           string
	ProjectName         string
	Currency            string
	TotalExpenses       float64
	ParticipantBalances []Balance
	Settlements         []SuggestedSettlement
}

// CalculateProjectSummary totals a project's expenses and derives balances
// and suggested settlements from its records.
func CalculateProjectSummary(in ProjectInput) ProjectSummary {
	var total float64
	for _, e := range in.Expenses {
		total += e.Amount
	}

	balances := CalculateBalances(in.Expenses, in.Participants, in.Settlements)

	return ProjectSummary{
		ProjectID:           in.ProjectID,
		ProjectName:         in.ProjectName,
		Currency:            in.Currency,
		TotalExpenses:       total,
		ParticipantBalances: balances,
		Settlements:         CalculateOptimalSettlements(balances),
	}
}
