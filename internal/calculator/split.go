package calculator

import (
	"errors"
	"math"
)

// Tolerance is the absolute difference, in currency units, below which two
// amounts are treated as equal and a balance is treated as settled.
const Tolerance = 0.01

var (
	ErrNoParticipants  = errors.New("must have at least one participant")
	ErrZeroTotalWeight = errors.New("total participant weight must be positive")
	ErrNoManualShares  = errors.New("manual split requires at least one share")
)

// SplitType selects how an expense amount is divided into shares.
type SplitType string

const (
	SplitEqual      SplitType = "EQUAL"
	SplitWeighted   SplitType = "WEIGHTED"
	SplitPercentage SplitType = "PERCENTAGE"
	SplitManual     SplitType = "MANUAL"
)

// ParseSplitType maps a tag to a SplitType. Unknown or empty tags fall back to SplitEqual.
func ParseSplitType(tag string) SplitType {
	switch t := SplitType(tag); t {
	case SplitEqual, SplitWeighted, SplitPercentage, SplitManual:
		return t
	default:
		return SplitEqual
	}
}

// SplitParticipant is a participant as seen by the split calculator.
type SplitParticipant struct {
	ID         string
	Weight     float64
	Percentage *float64 // nil when the participant has no percentage set
}

// ManualShare is a caller-supplied share for SplitManual.
type ManualShare struct {
	ParticipantID string
	Amount        float64
}

// SplitResult is one participant's computed share of an expense.
type SplitResult struct {
	ParticipantID string
	Amount        float64
	Weight        float64 // weight or percentage used, kept for audit
}

// CalculateSplit divides amount between participants according to splitType.
//
// Results are returned in participant order, or in the order of manualShares for
// SplitManual. Percentages are applied as given and are not renormalized when
// they do not sum to 100.
func CalculateSplit(amount float64, participants []SplitParticipant, splitType SplitType, manualShares []ManualShare) ([]SplitResult, error) {
	switch ParseSplitType(string(splitType)) {
	case SplitWeighted:
		return weightedSplit(amount, participants)
	case SplitPercentage:
		return percentageSplit(amount, participants), nil
	case SplitManual:
		return manualSplit(manualShares)
	default:
		return equalSplit(amount, participants)
	}
}

func equalSplit(amount float64, participants []SplitParticipant) ([]SplitResult, error) {
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}

	perPerson := amount / float64(len(participants))
	results := make([]SplitResult, len(participants))
	for i, p := range participants {
		results[i] = SplitResult{ParticipantID: p.ID, Amount: perPerson, Weight: 1}
	}
	return results, nil
}

func weightedSplit(amount float64, participants []SplitParticipant) ([]SplitResult, error) {
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}

	var totalWeight float64
	for _, p := range participants {
		totalWeight += p.Weight
	}
	if totalWeight <= 0 || math.IsNaN(totalWeight) || math.IsInf(totalWeight, 0) {
		return nil, ErrZeroTotalWeight
	}

	results := make([]SplitResult, len(participants))
	for i, p := range participants {
		results[i] = SplitResult{
			ParticipantID: p.ID,
			Amount:        amount * (p.Weight / totalWeight),
			Weight:        p.Weight,
		}
	}
	return results, nil
}

func percentageSplit(amount float64, participants []SplitParticipant) []SplitResult {
	results := make([]SplitResult, len(participants))
	for i, p := range participants {
		var pct float64
		if p.Percentage != nil {
			pct = *p.Percentage
		}
		results[i] = SplitResult{
			ParticipantID: p.ID,
			Amount:        amount * (pct / 100),
			Weight:        pct,
		}
	}
	return results
}

func manualSplit(manualShares []ManualShare) ([]SplitResult, error) {
	if len(manualShares) == 0 {
		return nil, ErrNoManualShares
	}

	results := make([]SplitResult, len(manualShares))
	for i, s := range manualShares {
		results[i] = SplitResult{ParticipantID: s.ParticipantID, Amount: s.Amount, Weight: 1}
	}
	return results, nil
}

// ValidateSplit reports whether the shares add up to amount within Tolerance.
func ValidateSplit(amount float64, shares []SplitResult) bool {
	var sum float64
	for _, s := range shares {
		sum += s.Amount
	}
	return math.Abs(sum-amount) <= Tolerance
}
