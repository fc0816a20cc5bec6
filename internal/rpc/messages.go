package rpc

// Project is the wire form of models.Project.
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Currency    string `json:"currency"`
	CreatedAt   int64  `json:"createdAt"`
}

// Participant is the wire form of models.Participant.
type Participant struct {
	ID         string   `json:"id"`
	ProjectID  string   `json:"projectId"`
	Name       string   `json:"name"`
	Weight     float64  `json:"weight"`
	Percentage *float64 `json:"percentage,omitempty"`
	CreatedAt  int64    `json:"createdAt"`
}

// NewParticipant describes a participant to add to a project.
// Weight 0 means the default weight.
type NewParticipant struct {
	Name       string   `json:"name"`
	Weight     float64  `json:"weight,omitempty"`
	Percentage *float64 `json:"percentage,omitempty"`
}

// Share is one participant's portion of an expense.
type Share struct {
	ParticipantID string  `json:"participantId"`
	Amount        float64 `json:"amount"`
	Weight        float64 `json:"weight"`
}

// ManualShare is a caller-chosen share for the MANUAL split type.
type ManualShare struct {
	ParticipantID string  `json:"participantId"`
	Amount        float64 `json:"amount"`
}

// Expense is the wire form of models.Expense.
type Expense struct {
	ID        string  `json:"id"`
	ProjectID string  `json:"projectId"`
	Title     string  `json:"title"`
	Amount    int64   `json:"amount"`
	PayerID   string  `json:"payerId"`
	SplitType string  `json:"splitType"`
	Shares    []Share `json:"shares"`
	CreatedAt int64   `json:"createdAt"`
}

// Settlement is the wire form of models.Settlement.
type Settlement struct {
	ID        string  `json:"id"`
	ProjectID string  `json:"projectId"`
	FromID    string  `json:"fromId"`
	ToID      string  `json:"toId"`
	Amount    float64 `json:"amount"`
	Note      string  `json:"note,omitempty"`
	CreatedAt int64   `json:"createdAt"`
}

// Balance is a participant's net position. Positive means they are owed money.
type Balance struct {
	ParticipantID   string  `json:"participantId"`
	ParticipantName string  `json:"participantName"`
	TotalPaid       float64 `json:"totalPaid"`
	TotalShare      float64 `json:"totalShare"`
	Balance         float64 `json:"balance"`
}

// SuggestedSettlement is a proposed transfer from a debtor to a creditor.
type SuggestedSettlement struct {
	FromID   string  `json:"fromId"`
	FromName string  `json:"fromName"`
	ToID     string  `json:"toId"`
	ToName   string  `json:"toName"`
	Amount   float64 `json:"amount"`
}

// ProjectService messages

type CreateProjectRequest struct {
	Name         string           `json:"name"`
	Description  string           `json:"description,omitempty"`
	Currency     string           `json:"currency,omitempty"`
	Participants []NewParticipant `json:"participants,omitempty"`
}

type CreateProjectResponse struct {
	Project      *Project       `json:"project"`
	Participants []*Participant `json:"participants"`
}

type GetProjectRequest struct {
	ProjectID string `json:"projectId"`
}

type GetProjectResponse struct {
	Project      *Project       `json:"project"`
	Participants []*Participant `json:"participants"`
}

type ListProjectsRequest struct{}

type ListProjectsResponse struct {
	Projects []*Project `json:"projects"`
}

type DeleteProjectRequest struct {
	ProjectID string `json:"projectId"`
}

type DeleteProjectResponse struct{}

type AddParticipantRequest struct {
	ProjectID   string         `json:"projectId"`
	Participant NewParticipant `json:"participant"`
}

type AddParticipantResponse struct {
	Participant *Participant `json:"participant"`
}

// UpdateParticipantRequest changes only the fields that are set.
type UpdateParticipantRequest struct {
	ParticipantID   string   `json:"participantId"`
	Name            string   `json:"name,omitempty"`
	Weight          *float64 `json:"weight,omitempty"`
	Percentage      *float64 `json:"percentage,omitempty"`
	ClearPercentage bool     `json:"clearPercentage,omitempty"`
}

type UpdateParticipantResponse struct {
	Participant *Participant `json:"participant"`
}

// ExpenseService messages

// SplitInput selects how an amount is divided. An empty ParticipantIDs
// includes every participant of the project.
type SplitInput struct {
	SplitType      string        `json:"splitType,omitempty"`
	ParticipantIDs []string      `json:"participantIds,omitempty"`
	ManualShares   []ManualShare `json:"manualShares,omitempty"`
}

type PreviewSplitRequest struct {
	ProjectID string     `json:"projectId"`
	Amount    int64      `json:"amount"`
	Split     SplitInput `json:"split"`
}

type PreviewSplitResponse struct {
	SplitType string  `json:"splitType"`
	Shares    []Share `json:"shares"`
	// Valid reports whether the shares add up to the amount.
	Valid bool `json:"valid"`
}

type CreateExpenseRequest struct {
	ProjectID string     `json:"projectId"`
	Title     string     `json:"title"`
	Amount    int64      `json:"amount"`
	PayerID   string     `json:"payerId"`
	Split     SplitInput `json:"split"`
}

type CreateExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type GetExpenseRequest struct {
	ExpenseID string `json:"expenseId"`
}

type GetExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type ListExpensesRequest struct {
	ProjectID string `json:"projectId"`
}

type ListExpensesResponse struct {
	Expenses []*Expense `json:"expenses"`
}

type DeleteExpenseRequest struct {
	ExpenseID string `json:"expenseId"`
}

type DeleteExpenseResponse struct{}

// SettlementService messages

type RecordSettlementRequest struct {
	ProjectID string  `json:"projectId"`
	FromID    string  `json:"fromId"`
	ToID      string  `json:"toId"`
	Amount    float64 `json:"amount"`
	Note      string  `json:"note,omitempty"`
}

type RecordSettlementResponse struct {
	Settlement *Settlement `json:"settlement"`
}

type ListSettlementsRequest struct {
	ProjectID string `json:"projectId"`
}

type ListSettlementsResponse struct {
	Settlements []*Settlement `json:"settlements"`
}

type DeleteSettlementRequest struct {
	SettlementID string `json:"settlementId"`
}

type DeleteSettlementResponse struct{}

type GetBalancesRequest struct {
	ProjectID string `json:"projectId"`
}

type GetBalancesResponse struct {
	Balances []*Balance `json:"balances"`
}

type GetProjectSummaryRequest struct {
	ProjectID string `json:"projectId"`
}

type GetProjectSummaryResponse struct {
	ProjectID            string                 `json:"projectId"`
	ProjectName          string                 `json:"projectName"`
	Currency             string                 `json:"currency"`
	TotalExpenses        float64                `json:"totalExpenses"`
	Balances             []*Balance             `json:"balances"`
	SuggestedSettlements []*SuggestedSettlement `json:"suggestedSettlements"`
}

// SettleUpRequest records every currently suggested settlement of a project.
type SettleUpRequest struct {
	ProjectID string `json:"projectId"`
	Note      string `json:"note,omitempty"`
}

type SettleUpResponse struct {
	Settlements []*Settlement `json:"settlements"`
}
