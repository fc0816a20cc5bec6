package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/dongi/internal/rpc"
)

func TestPreviewSplit(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	pct40, pct50 := 40.0, 50.0
	projectID, ids := createProject(t, c,
		rpc.NewParticipant{Name: "Ali", Weight: 1, Percentage: &pct40},
		rpc.NewParticipant{Name: "Bahar", Weight: 3, Percentage: &pct50},
	)

	t.Run("equal by default", func(t *testing.T) {
		resp, err := c.expenses.PreviewSplit(ctx, &rpc.PreviewSplitRequest{ProjectID: projectID, Amount: 300})
		require.NoError(t, err)
		assert.Equal(t, "EQUAL", resp.SplitType)
		assert.True(t, resp.Valid)
		require.Len(t, resp.Shares, 2)
		assert.Equal(t, 150.0, resp.Shares[0].Amount)
		assert.Equal(t, 150.0, resp.Shares[1].Amount)
	})

	t.Run("weighted", func(t *testing.T) {
		resp, err := c.expenses.PreviewSplit(ctx, &rpc.PreviewSplitRequest{
			ProjectID: projectID,
			Amount:    1000,
			Split:     rpc.SplitInput{SplitType: "weighted"},
		})
		require.NoError(t, err)
		assert.Equal(t, "WEIGHTED", resp.SplitType)
		assert.Equal(t, ids["Ali"], resp.Shares[0].ParticipantID)
		assert.InDelta(t, 250.0, resp.Shares[0].Amount, 1e-9)
		assert.InDelta(t, 750.0, resp.Shares[1].Amount, 1e-9)
	})

	t.Run("percentages short of 100 are reported invalid", func(t *testing.T) {
		resp, err := c.expenses.PreviewSplit(ctx, &rpc.PreviewSplitRequest{
			ProjectID: projectID,
			Amount:    1000,
			Split:     rpc.SplitInput{SplitType: "PERCENTAGE"},
		})
		require.NoError(t, err)
		assert.False(t, resp.Valid)
		assert.InDelta(t, 400.0, resp.Shares[0].Amount, 1e-9)
		assert.InDelta(t, 500.0, resp.Shares[1].Amount, 1e-9)
	})

	t.Run("unknown split type falls back to equal", func(t *testing.T) {
		resp, err := c.expenses.PreviewSplit(ctx, &rpc.PreviewSplitRequest{
			ProjectID: projectID,
			Amount:    100,
			Split:     rpc.SplitInput{SplitType: "BY_MOOD"},
		})
		require.NoError(t, err)
		assert.Equal(t, "EQUAL", resp.SplitType)
	})

	t.Run("subset of participants", func(t *testing.T) {
		resp, err := c.expenses.PreviewSplit(ctx, &rpc.PreviewSplitRequest{
			ProjectID: projectID,
			Amount:    100,
			Split:     rpc.SplitInput{ParticipantIDs: []string{ids["Bahar"]}},
		})
		require.NoError(t, err)
		require.Len(t, resp.Shares, 1)
		assert.Equal(t, ids["Bahar"], resp.Shares[0].ParticipantID)
		assert.Equal(t, 100.0, resp.Shares[0].Amount)
	})

	t.Run("empty project", func(t *testing.T) {
		emptyID, _ := createProject(t, c)
		_, err := c.expenses.PreviewSplit(ctx, &rpc.PreviewSplitRequest{ProjectID: emptyID, Amount: 100})
		assertCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("unknown project", func(t *testing.T) {
		_, err := c.expenses.PreviewSplit(ctx, &rpc.PreviewSplitRequest{ProjectID: "missing", Amount: 100})
		assertCode(t, err, connect.CodeNotFound)
	})
}

func TestCreateExpense(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	projectID, ids := createProject(t, c, named("Ali", "Bahar", "Cyrus")...)

	resp, err := c.expenses.CreateExpense(ctx, &rpc.CreateExpenseRequest{
		ProjectID: projectID,
		Title:     "Villa",
		Amount:    300,
		PayerID:   ids["Ali"],
		Split:     rpc.SplitInput{ParticipantIDs: []string{ids["Ali"], ids["Cyrus"]}},
	})
	require.NoError(t, err)

	expense := resp.Expense
	assert.NotEmpty(t, expense.ID)
	assert.Equal(t, "EQUAL", expense.SplitType)
	require.Len(t, expense.Shares, 2)
	assert.Equal(t, 150.0, expense.Shares[0].Amount)

	got, err := c.expenses.GetExpense(ctx, &rpc.GetExpenseRequest{ExpenseID: expense.ID})
	require.NoError(t, err)
	assert.Equal(t, expense, got.Expense)

	list, err := c.expenses.ListExpenses(ctx, &rpc.ListExpensesRequest{ProjectID: projectID})
	require.NoError(t, err)
	assert.Len(t, list.Expenses, 1)
}

func TestCreateExpenseManual(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	projectID, ids := createProject(t, c, named("Ali", "Bahar")...)

	resp, err := c.expenses.CreateExpense(ctx, &rpc.CreateExpenseRequest{
		ProjectID: projectID,
		Title:     "قبض برق",
		Amount:    500,
		PayerID:   ids["Bahar"],
		Split: rpc.SplitInput{
			SplitType: "MANUAL",
			ManualShares: []rpc.ManualShare{
				{ParticipantID: ids["Ali"], Amount: 120},
				{ParticipantID: ids["Bahar"], Amount: 380},
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "MANUAL", resp.Expense.SplitType)
	assert.Equal(t, 380.0, resp.Expense.Shares[1].Amount)

	t.Run("shares that miss the amount are rejected", func(t *testing.T) {
		_, err := c.expenses.CreateExpense(ctx, &rpc.CreateExpenseRequest{
			ProjectID: projectID,
			Title:     "short",
			Amount:    500,
			PayerID:   ids["Ali"],
			Split: rpc.SplitInput{
				SplitType:    "MANUAL",
				ManualShares: []rpc.ManualShare{{ParticipantID: ids["Ali"], Amount: 100}},
			},
		})
		assertCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("duplicate manual share", func(t *testing.T) {
		_, err := c.expenses.CreateExpense(ctx, &rpc.CreateExpenseRequest{
			ProjectID: projectID,
			Title:     "dup",
			Amount:    200,
			PayerID:   ids["Ali"],
			Split: rpc.SplitInput{
				SplitType: "MANUAL",
				ManualShares: []rpc.ManualShare{
					{ParticipantID: ids["Ali"], Amount: 100},
					{ParticipantID: ids["Ali"], Amount: 100},
				},
			},
		})
		assertCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("no manual shares", func(t *testing.T) {
		_, err := c.expenses.CreateExpense(ctx, &rpc.CreateExpenseRequest{
			ProjectID: projectID,
			Title:     "none",
			Amount:    200,
			PayerID:   ids["Ali"],
			Split:     rpc.SplitInput{SplitType: "MANUAL"},
		})
		assertCode(t, err, connect.CodeInvalidArgument)
	})
}

func TestCreateExpenseValidation(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	projectID, ids := createProject(t, c, named("Ali", "Bahar")...)
	otherID, other := createProject(t, c, named("Dara")...)

	tests := []struct {
		name string
		req  *rpc.CreateExpenseRequest
	}{
		{"missing title", &rpc.CreateExpenseRequest{ProjectID: projectID, Amount: 100, PayerID: ids["Ali"]}},
		{"zero amount", &rpc.CreateExpenseRequest{ProjectID: projectID, Title: "x", PayerID: ids["Ali"]}},
		{"negative amount", &rpc.CreateExpenseRequest{ProjectID: projectID, Title: "x", Amount: -5, PayerID: ids["Ali"]}},
		{"missing payer", &rpc.CreateExpenseRequest{ProjectID: projectID, Title: "x", Amount: 100}},
		{"unknown payer", &rpc.CreateExpenseRequest{ProjectID: projectID, Title: "x", Amount: 100, PayerID: "missing"}},
		{"payer from another project", &rpc.CreateExpenseRequest{ProjectID: projectID, Title: "x", Amount: 100, PayerID: other["Dara"]}},
		{"share participant from another project", &rpc.CreateExpenseRequest{
			ProjectID: projectID, Title: "x", Amount: 100, PayerID: ids["Ali"],
			Split: rpc.SplitInput{ParticipantIDs: []string{ids["Ali"], other["Dara"]}},
		}},
		{"participant listed twice", &rpc.CreateExpenseRequest{
			ProjectID: projectID, Title: "x", Amount: 100, PayerID: ids["Ali"],
			Split: rpc.SplitInput{ParticipantIDs: []string{ids["Ali"], ids["Ali"]}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.expenses.CreateExpense(ctx, tt.req)
			assertCode(t, err, connect.CodeInvalidArgument)
		})
	}

	for _, id := range []string{projectID, otherID} {
		list, err := c.expenses.ListExpenses(ctx, &rpc.ListExpensesRequest{ProjectID: id})
		require.NoError(t, err)
		assert.Empty(t, list.Expenses)
	}
}

func TestDeleteExpense(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	projectID, ids := createProject(t, c, named("Ali", "Bahar")...)
	resp, err := c.expenses.CreateExpense(ctx, &rpc.CreateExpenseRequest{
		ProjectID: projectID, Title: "Fuel", Amount: 200, PayerID: ids["Ali"],
	})
	require.NoError(t, err)

	_, err = c.expenses.DeleteExpense(ctx, &rpc.DeleteExpenseRequest{ExpenseID: resp.Expense.ID})
	require.NoError(t, err)

	_, err = c.expenses.GetExpense(ctx, &rpc.GetExpenseRequest{ExpenseID: resp.Expense.ID})
	assertCode(t, err, connect.CodeNotFound)

	_, err = c.expenses.DeleteExpense(ctx, &rpc.DeleteExpenseRequest{ExpenseID: resp.Expense.ID})
	assertCode(t, err, connect.CodeNotFound)
}
