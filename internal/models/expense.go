package models

// Expense is a single spend event paid by one participant.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// ProjectID is the project this expense belongs to.
	ProjectID string

	// Title is a short description (e.g. "Hotel", "قبض برق").
	Title string

	// Amount is the total in the smallest currency unit.
	Amount int64

	// PayerID is the participant who paid.
	PayerID string

	// SplitType is the strategy the shares were computed with
	// (EQUAL, WEIGHTED, PERCENTAGE or MANUAL).
	SplitType string

	// Shares are snapshots taken when the expense was created.
	// Their amounts sum to Amount within 0.01.
	Shares []Share

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}

// Share is one participant's portion of one expense.
type Share struct {
	ParticipantID string
	Amount        float64
	// Weight is the weight or percentage used to compute Amount.
	Weight float64
}
