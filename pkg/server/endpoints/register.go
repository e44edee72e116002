package endpoints

import (
	"github.com/tripleswitch/complianceos/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterStatusEndpoints(srv)
	RegisterWhoamiEndpoint(srv)
	RegisterPermissionsEndpoints(srv)
	RegisterWorkflowEndpoints(srv)
	RegisterSubmissionsEndpoints(srv)
	RegisterDocumentsEndpoints(srv)
	RegisterTeamEndpoints(srv)
	RegisterActivityEndpoints(srv)
}
