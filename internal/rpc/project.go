package rpc

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

const (
	// ProjectServiceName is the fully-qualified name of the ProjectService service.
	ProjectServiceName = "dongi.v1.ProjectService"

	ProjectServiceCreateProjectProcedure     = "/dongi.v1.ProjectService/CreateProject"
	ProjectServiceGetProjectProcedure        = "/dongi.v1.ProjectService/GetProject"
	ProjectServiceListProjectsProcedure      = "/dongi.v1.ProjectService/ListProjects"
	ProjectServiceDeleteProjectProcedure     = "/dongi.v1.ProjectService/DeleteProject"
	ProjectServiceAddParticipantProcedure    = "/dongi.v1.ProjectService/AddParticipant"
	ProjectServiceUpdateParticipantProcedure = "/dongi.v1.ProjectService/UpdateParticipant"
)

// ProjectServiceHandler manages projects and their participants.
type ProjectServiceHandler interface {
	CreateProject(context.Context, *connect.Request[CreateProjectRequest]) (*connect.Response[CreateProjectResponse], error)
	GetProject(context.Context, *connect.Request[GetProjectRequest]) (*connect.Response[GetProjectResponse], error)
	ListProjects(context.Context, *connect.Request[ListProjectsRequest]) (*connect.Response[ListProjectsResponse], error)
	DeleteProject(context.Context, *connect.Request[DeleteProjectRequest]) (*connect.Response[DeleteProjectResponse], error)
	AddParticipant(context.Context, *connect.Request[AddParticipantRequest]) (*connect.Response[AddParticipantResponse], error)
	UpdateParticipant(context.Context, *connect.Request[UpdateParticipantRequest]) (*connect.Response[UpdateParticipantResponse], error)
}

// NewProjectServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewProjectServiceHandler(svc ProjectServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	handleUnary(mux, ProjectServiceCreateProjectProcedure, svc.CreateProject, opts)
	handleUnary(mux, ProjectServiceGetProjectProcedure, svc.GetProject, opts)
	handleUnary(mux, ProjectServiceListProjectsProcedure, svc.ListProjects, opts)
	handleUnary(mux, ProjectServiceDeleteProjectProcedure, svc.DeleteProject, opts)
	handleUnary(mux, ProjectServiceAddParticipantProcedure, svc.AddParticipant, opts)
	handleUnary(mux, ProjectServiceUpdateParticipantProcedure, svc.UpdateParticipant, opts)
	return "/" + ProjectServiceName + "/", mux
}

// ProjectServiceClient is a client for the dongi.v1.ProjectService service.
type ProjectServiceClient struct {
	createProject     *connect.Client[CreateProjectRequest, CreateProjectResponse]
	getProject        *connect.Client[GetProjectRequest, GetProjectResponse]
	listProjects      *connect.Client[ListProjectsRequest, ListProjectsResponse]
	deleteProject     *connect.Client[DeleteProjectRequest, DeleteProjectResponse]
	addParticipant    *connect.Client[AddParticipantRequest, AddParticipantResponse]
	updateParticipant *connect.Client[UpdateParticipantRequest, UpdateParticipantResponse]
}

// NewProjectServiceClient constructs a client for the dongi.v1.ProjectService service.
// baseURL is the server root, e.g. http://localhost:8080.
func NewProjectServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *ProjectServiceClient {
	opts = clientOptions(opts)
	return &ProjectServiceClient{
		createProject:     newClient[CreateProjectRequest, CreateProjectResponse](httpClient, baseURL, ProjectServiceCreateProjectProcedure, opts),
		getProject:        newClient[GetProjectRequest, GetProjectResponse](httpClient, baseURL, ProjectServiceGetProjectProcedure, opts),
		listProjects:      newClient[ListProjectsRequest, ListProjectsResponse](httpClient, baseURL, ProjectServiceListProjectsProcedure, opts),
		deleteProject:     newClient[DeleteProjectRequest, DeleteProjectResponse](httpClient, baseURL, ProjectServiceDeleteProjectProcedure, opts),
		addParticipant:    newClient[AddParticipantRequest, AddParticipantResponse](httpClient, baseURL, ProjectServiceAddParticipantProcedure, opts),
		updateParticipant: newClient[UpdateParticipantRequest, UpdateParticipantResponse](httpClient, baseURL, ProjectServiceUpdateParticipantProcedure, opts),
	}
}

func (c *ProjectServiceClient) CreateProject(ctx context.Context, req *CreateProjectRequest) (*CreateProjectResponse, error) {
	return call(ctx, c.createProject, req)
}

func (c *ProjectServiceClient) GetProject(ctx context.Context, req *GetProjectRequest) (*GetProjectResponse, error) {
	return call(ctx, c.getProject, req)
}

func (c *ProjectServiceClient) ListProjects(ctx context.Context, req *ListProjectsRequest) (*ListProjectsResponse, error) {
	return call(ctx, c.listProjects, req)
}

func (c *ProjectServiceClient) DeleteProject(ctx context.Context, req *DeleteProjectRequest) (*DeleteProjectResponse, error) {
	return call(ctx, c.deleteProject, req)
}

func (c *ProjectServiceClient) AddParticipant(ctx context.Context, req *AddParticipantRequest) (*AddParticipantResponse, error) {
	return call(ctx, c.addParticipant, req)
}

func (c *ProjectServiceClient) UpdateParticipant(ctx context.Context, req *UpdateParticipantRequest) (*UpdateParticipantResponse, error) {
	return call(ctx, c.updateParticipant, req)
}
