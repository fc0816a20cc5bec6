package rpc

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

const (
	// SettlementServiceName is the fully-qualified name of the SettlementService service.
	SettlementServiceName = "dongi.v1.SettlementService"

	SettlementServiceRecordSettlementProcedure  = "/dongi.v1.SettlementService/RecordSettlement"
	SettlementServiceListSettlementsProcedure   = "/dongi.v1.SettlementService/ListSettlements"
	SettlementServiceDeleteSettlementProcedure  = "/dongi.v1.SettlementService/DeleteSettlement"
	SettlementServiceGetBalancesProcedure       = "/dongi.v1.SettlementService/GetBalances"
	SettlementServiceGetProjectSummaryProcedure = "/dongi.v1.SettlementService/GetProjectSummary"
	SettlementServiceSettleUpProcedure          = "/dongi.v1.SettlementService/SettleUp"
)

// SettlementServiceHandler records payments and reports balances.
type SettlementServiceHandler interface {
	RecordSettlement(context.Context, *connect.Request[RecordSettlementRequest]) (*connect.Response[RecordSettlementResponse], error)
	ListSettlements(context.Context, *connect.Request[ListSettlementsRequest]) (*connect.Response[ListSettlementsResponse], error)
	DeleteSettlement(context.Context, *connect.Request[DeleteSettlementRequest]) (*connect.Response[DeleteSettlementResponse], error)
	GetBalances(context.Context, *connect.Request[GetBalancesRequest]) (*connect.Response[GetBalancesResponse], error)
	GetProjectSummary(context.Context, *connect.Request[GetProjectSummaryRequest]) (*connect.Response[GetProjectSummaryResponse], error)
	SettleUp(context.Context, *connect.Request[SettleUpRequest]) (*connect.Response[SettleUpResponse], error)
}

// NewSettlementServiceHandler builds an HTTP handler from the service implementation.
func NewSettlementServiceHandler(svc SettlementServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	handleUnary(mux, SettlementServiceRecordSettlementProcedure, svc.RecordSettlement, opts)
	handleUnary(mux, SettlementServiceListSettlementsProcedure, svc.ListSettlements, opts)
	handleUnary(mux, SettlementServiceDeleteSettlementProcedure, svc.DeleteSettlement, opts)
	handleUnary(mux, SettlementServiceGetBalancesProcedure, svc.GetBalances, opts)
	handleUnary(mux, SettlementServiceGetProjectSummaryProcedure, svc.GetProjectSummary, opts)
	handleUnary(mux, SettlementServiceSettleUpProcedure, svc.SettleUp, opts)
	return "/" + SettlementServiceName + "/", mux
}

// SettlementServiceClient is a client for the dongi.v1.SettlementService service.
type SettlementServiceClient struct {
	recordSettlement  *connect.Client[RecordSettlementRequest, RecordSettlementResponse]
	listSettlements   *connect.Client[ListSettlementsRequest, ListSettlementsResponse]
	deleteSettlement  *connect.Client[DeleteSettlementRequest, DeleteSettlementResponse]
	getBalances       *connect.Client[GetBalancesRequest, GetBalancesResponse]
	getProjectSummary *connect.Client[GetProjectSummaryRequest, GetProjectSummaryResponse]
	settleUp          *connect.Client[SettleUpRequest, SettleUpResponse]
}

// NewSettlementServiceClient constructs a client for the dongi.v1.SettlementService service.
func NewSettlementServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *SettlementServiceClient {
	opts = clientOptions(opts)
	return &SettlementServiceClient{
		recordSettlement:  newClient[RecordSettlementRequest, RecordSettlementResponse](httpClient, baseURL, SettlementServiceRecordSettlementProcedure, opts),
		listSettlements:   newClient[ListSettlementsRequest, ListSettlementsResponse](httpClient, baseURL, SettlementServiceListSettlementsProcedure, opts),
		deleteSettlement:  newClient[DeleteSettlementRequest, DeleteSettlementResponse](httpClient, baseURL, SettlementServiceDeleteSettlementProcedure, opts),
		getBalances:       newClient[GetBalancesRequest, GetBalancesResponse](httpClient, baseURL, SettlementServiceGetBalancesProcedure, opts),
		getProjectSummary: newClient[GetProjectSummaryRequest, GetProjectSummaryResponse](httpClient, baseURL, SettlementServiceGetProjectSummaryProcedure, opts),
		settleUp:          newClient[SettleUpRequest, SettleUpResponse](httpClient, baseURL, SettlementServiceSettleUpProcedure, opts),
	}
}

func (c *SettlementServiceClient) RecordSettlement(ctx context.Context, req *RecordSettlementRequest) (*RecordSettlementResponse, error) {
	return call(ctx, c.recordSettlement, req)
}

func (c *SettlementServiceClient) ListSettlements(ctx context.Context, req *ListSettlementsRequest) (*ListSettlementsResponse, error) {
	return call(ctx, c.listSettlements, req)
}

func (c *SettlementServiceClient) DeleteSettlement(ctx context.Context, req *DeleteSettlementRequest) (*DeleteSettlementResponse, error) {
	return call(ctx, c.deleteSettlement, req)
}

func (c *SettlementServiceClient) GetBalances(ctx context.Context, req *GetBalancesRequest) (*GetBalancesResponse, error) {
	return call(ctx, c.getBalances, req)
}

func (c *SettlementServiceClient) GetProjectSummary(ctx context.Context, req *GetProjectSummaryRequest) (*GetProjectSummaryResponse, error) {
	return call(ctx, c.getProjectSummary, req)
}

func (c *SettlementServiceClient) SettleUp(ctx context.Context, req *SettleUpRequest) (*SettleUpResponse, error) {
	return call(ctx, c.settleUp, req)
}
