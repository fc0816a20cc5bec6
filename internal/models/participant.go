package models

// DefaultWeight is the weight given to a participant when none is set.
const DefaultWeight = 1.0

// Participant is a member of a project who can pay for or share in expenses.
type Participant struct {
	// ID is the unique identifier for the participant (UUID format).
	ID string

	// ProjectID is the project this participant belongs to.
	ProjectID string

	// Name is the display name.
	Name string

	// Weight is used for weighted splits. Must be positive.
	Weight float64

	// Percentage is used for percentage splits, in [0, 100].
	// Nil when not set.
	Percentage *float64

	// CreatedAt is the Unix timestamp when the participant joined the project.
	CreatedAt int64
}
