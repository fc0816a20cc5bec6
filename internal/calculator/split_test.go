package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pct(v float64) *float64 { return &v }

func TestCalculateSplit(t *testing.T) {
	tests := []struct {
		name         string
		amount       float64
		participants []SplitParticipant
		splitType    SplitType
		manual       []ManualShare
		wantErr      error
		want         []SplitResult
	}{
		{
			name:         "equal split between three",
			amount:       300,
			participants: []SplitParticipant{{ID: "A", Weight: 1}, {ID: "B", Weight: 2}, {ID: "C", Weight: 5}},
			splitType:    SplitEqual,
			want: []SplitResult{
				{ParticipantID: "A", Amount: 100, Weight: 1},
				{ParticipantID: "B", Amount: 100, Weight: 1},
				{ParticipantID: "C", Amount: 100, Weight: 1},
			},
		},
		{
			name:         "weighted split 1:3",
			amount:       1000,
			participants: []SplitParticipant{{ID: "1", Weight: 1}, {ID: "2", Weight: 3}},
			splitType:    SplitWeighted,
			want: []SplitResult{
				{ParticipantID: "1", Amount: 250, Weight: 1},
				{ParticipantID: "2", Amount: 750, Weight: 3},
			},
		},
		{
			name:   "percentage split does not renormalize",
			amount: 1000,
			participants: []SplitParticipant{
				{ID: "A", Weight: 1, Percentage: pct(30)},
				{ID: "B", Weight: 1, Percentage: pct(50)},
				{ID: "C", Weight: 1},
			},
			splitType: SplitPercentage,
			want: []SplitResult{
				{ParticipantID: "A", Amount: 300, Weight: 30},
				{ParticipantID: "B", Amount: 500, Weight: 50},
				{ParticipantID: "C", Amount: 0, Weight: 0},
			},
		},
		{
			name:         "manual split returns supplied shares",
			amount:       500,
			participants: []SplitParticipant{{ID: "A", Weight: 1}},
			splitType:    SplitManual,
			manual:       []ManualShare{{ParticipantID: "B", Amount: 120}, {ParticipantID: "A", Amount: 380}},
			want: []SplitResult{
				{ParticipantID: "B", Amount: 120, Weight: 1},
				{ParticipantID: "A", Amount: 380, Weight: 1},
			},
		},
		{
			name:         "manual split without shares",
			amount:       500,
			participants: []SplitParticipant{{ID: "A", Weight: 1}},
			splitType:    SplitManual,
			wantErr:      ErrNoManualShares,
		},
		{
			name:         "unknown type falls back to equal",
			amount:       90,
			participants: []SplitParticipant{{ID: "A", Weight: 4}, {ID: "B", Weight: 1}},
			splitType:    SplitType("BY_AGE"),
			want: []SplitResult{
				{ParticipantID: "A", Amount: 45, Weight: 1},
				{ParticipantID: "B", Amount: 45, Weight: 1},
			},
		},
		{
			name:      "equal split with no participants",
			amount:    100,
			splitType: SplitEqual,
			wantErr:   ErrNoParticipants,
		},
		{
			name:      "weighted split with no participants",
			amount:    100,
			splitType: SplitWeighted,
			wantErr:   ErrNoParticipants,
		},
		{
			name:         "weighted split with zero total weight",
			amount:       100,
			participants: []SplitParticipant{{ID: "A"}, {ID: "B"}},
			splitType:    SplitWeighted,
			wantErr:      ErrZeroTotalWeight,
		},
		{
			name:      "percentage split with no participants",
			amount:    100,
			splitType: SplitPercentage,
			want:      []SplitResult{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateSplit(tt.amount, tt.participants, tt.splitType, tt.manual)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.Equal(t, tt.want[i].ParticipantID, got[i].ParticipantID)
				assert.InDelta(t, tt.want[i].Amount, got[i].Amount, Tolerance)
				assert.InDelta(t, tt.want[i].Weight, got[i].Weight, Tolerance)
			}
		})
	}
}

func TestCalculateSplit_EqualSumsToAmount(t *testing.T) {
	amounts := []float64{1, 100, 1000, 12345, 99999}
	for n := 1; n <= 7; n++ {
		participants := make([]SplitParticipant, n)
		for i := range participants {
			participants[i] = SplitParticipant{ID: string(rune('A' + i)), Weight: 1}
		}
		for _, amount := range amounts {
			shares, err := CalculateSplit(amount, participants, SplitEqual, nil)
			require.NoError(t, err)
			assert.True(t, ValidateSplit(amount, shares), "amount=%v n=%d", amount, n)
			for _, s := range shares {
				assert.InDelta(t, amount/float64(n), s.Amount, Tolerance)
			}
		}
	}
}

func TestCalculateSplit_WeightedProportional(t *testing.T) {
	participants := []SplitParticipant{
		{ID: "A", Weight: 1},
		{ID: "B", Weight: 2},
		{ID: "C", Weight: 0.5},
	}

	shares, err := CalculateSplit(7000, participants, SplitWeighted, nil)
	require.NoError(t, err)

	assert.True(t, ValidateSplit(7000, shares))
	assert.InDelta(t, 2*shares[0].Amount, shares[1].Amount, Tolerance)
	assert.InDelta(t, shares[0].Amount/2, shares[2].Amount, Tolerance)
}

func TestParseSplitType(t *testing.T) {
	assert.Equal(t, SplitWeighted, ParseSplitType("WEIGHTED"))
	assert.Equal(t, SplitManual, ParseSplitType("MANUAL"))
	assert.Equal(t, SplitEqual, ParseSplitType(""))
	assert.Equal(t, SplitEqual, ParseSplitType("weighted"))
}

func TestValidateSplit(t *testing.T) {
	shares := []SplitResult{{Amount: 33.33}, {Amount: 33.33}, {Amount: 33.33}}

	assert.True(t, ValidateSplit(99.99, shares))
	assert.True(t, ValidateSplit(99.995, shares))
	assert.False(t, ValidateSplit(100.5, shares))
	assert.True(t, ValidateSplit(0, nil))
	assert.False(t, ValidateSplit(10, nil))
}
