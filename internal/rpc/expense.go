package rpc

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

const (
	// ExpenseServiceName is the fully-qualified name of the ExpenseService service.
	ExpenseServiceName = "dongi.v1.ExpenseService"

	ExpenseServicePreviewSplitProcedure  = "/dongi.v1.ExpenseService/PreviewSplit"
	ExpenseServiceCreateExpenseProcedure = "/dongi.v1.ExpenseService/CreateExpense"
	ExpenseServiceGetExpenseProcedure    = "/dongi.v1.ExpenseService/GetExpense"
	ExpenseServiceListExpensesProcedure  = "/dongi.v1.ExpenseService/ListExpenses"
	ExpenseServiceDeleteExpenseProcedure = "/dongi.v1.ExpenseService/DeleteExpense"
)

// ExpenseServiceHandler splits and records expenses.
type ExpenseServiceHandler interface {
	PreviewSplit(context.Context, *connect.Request[PreviewSplitRequest]) (*connect.Response[PreviewSplitResponse], error)
	CreateExpense(context.Context, *connect.Request[CreateExpenseRequest]) (*connect.Response[CreateExpenseResponse], error)
	GetExpense(context.Context, *connect.Request[GetExpenseRequest]) (*connect.Response[GetExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error)
	DeleteExpense(context.Context, *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error)
}

// NewExpenseServiceHandler builds an HTTP handler from the service implementation.
func NewExpenseServiceHandler(svc ExpenseServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	handleUnary(mux, ExpenseServicePreviewSplitProcedure, svc.PreviewSplit, opts)
	handleUnary(mux, ExpenseServiceCreateExpenseProcedure, svc.CreateExpense, opts)
	handleUnary(mux, ExpenseServiceGetExpenseProcedure, svc.GetExpense, opts)
	handleUnary(mux, ExpenseServiceListExpensesProcedure, svc.ListExpenses, opts)
	handleUnary(mux, ExpenseServiceDeleteExpenseProcedure, svc.DeleteExpense, opts)
	return "/" + ExpenseServiceName + "/", mux
}

// ExpenseServiceClient is a client for the dongi.v1.ExpenseService service.
type ExpenseServiceClient struct {
	previewSplit  *connect.Client[PreviewSplitRequest, PreviewSplitResponse]
	createExpense *connect.Client[CreateExpenseRequest, CreateExpenseResponse]
	getExpense    *connect.Client[GetExpenseRequest, GetExpenseResponse]
	listExpenses  *connect.Client[ListExpensesRequest, ListExpensesResponse]
	deleteExpense *connect.Client[DeleteExpenseRequest, DeleteExpenseResponse]
}

// NewExpenseServiceClient constructs a client for the dongi.v1.ExpenseService service.
func NewExpenseServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *ExpenseServiceClient {
	opts = clientOptions(opts)
	return &ExpenseServiceClient{
		previewSplit:  newClient[PreviewSplitRequest, PreviewSplitResponse](httpClient, baseURL, ExpenseServicePreviewSplitProcedure, opts),
		createExpense: newClient[CreateExpenseRequest, CreateExpenseResponse](httpClient, baseURL, ExpenseServiceCreateExpenseProcedure, opts),
		getExpense:    newClient[GetExpenseRequest, GetExpenseResponse](httpClient, baseURL, ExpenseServiceGetExpenseProcedure, opts),
		listExpenses:  newClient[ListExpensesRequest, ListExpensesResponse](httpClient, baseURL, ExpenseServiceListExpensesProcedure, opts),
		deleteExpense: newClient[DeleteExpenseRequest, DeleteExpenseResponse](httpClient, baseURL, ExpenseServiceDeleteExpenseProcedure, opts),
	}
}

func (c *ExpenseServiceClient) PreviewSplit(ctx context.Context, req *PreviewSplitRequest) (*PreviewSplitResponse, error) {
	return call(ctx, c.previewSplit, req)
}

func (c *ExpenseServiceClient) CreateExpense(ctx context.Context, req *CreateExpenseRequest) (*CreateExpenseResponse, error) {
	return call(ctx, c.createExpense, req)
}

func (c *ExpenseServiceClient) GetExpense(ctx context.Context, req *GetExpenseRequest) (*GetExpenseResponse, error) {
	return call(ctx, c.getExpense, req)
}

func (c *ExpenseServiceClient) ListExpenses(ctx context.Context, req *ListExpensesRequest) (*ListExpensesResponse, error) {
	return call(ctx, c.listExpenses, req)
}

func (c *ExpenseServiceClient) DeleteExpense(ctx context.Context, req *DeleteExpenseRequest) (*DeleteExpenseResponse, error) {
	return call(ctx, c.deleteExpense, req)
}
