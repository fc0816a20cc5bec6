package models

// Project groups the participants, expenses and settlements of one shared budget.
type Project struct {
	// ID is the unique identifier for the project (UUID format).
	ID string

	// Name is the display name (e.g. "سفر شمال", "Building 12").
	Name string

	// Description is optional free text.
	Description string

	// Currency is the ISO 4217 code amounts are expressed in (e.g. "IRR").
	Currency string

	// CreatedAt is the Unix timestamp when the project was created.
	CreatedAt int64
}
