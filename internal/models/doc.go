// Package models defines the core domain models for dongi.
//
// # Models
//
//   - Project: a trip, building, gathering or family budget whose costs are shared
//   - Participant: a member of a project, with a weight and optional percentage
//   - Expense: a single spend paid by one participant, with frozen shares
//   - Share: one participant's portion of one expense
//   - Settlement: a recorded payment between two participants
//
// # Design Principles
//
// 1. **Frozen shares**: an expense's shares are computed once when it is created.
//    Later weight or percentage changes do not alter them.
// 2. **Smallest currency unit**: expense amounts are whole units (e.g. rial).
// 3. **Avoid circular references**: use ID strings instead of pointers for relationships.
package models
