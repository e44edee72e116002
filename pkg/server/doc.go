// Package server provides the HTTP server for the compliance API.
//
// The Server holds the domain services and a gorilla/mux router. Requests
// pass through gorilla/handlers logging and panic recovery, then a request
// id middleware. Routes registered on API also pass through the session
// middleware, which resolves the X-Tripleswitch-User header against the team
// directory.
//
// # Server Setup
//
//	srv := server.NewServer(services, cfg, logger, "127.0.0.1", "8080")
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage and include:
//
//   - /navigation, /pages/{page}/access - role-aware navigation
//   - /permissions - the role by permission matrix
//   - /forms/workflow - the acting user's submission workflow
//   - /forms/submissions - submissions and approval decisions
//   - /documents - the document repository
//   - /users, /policies - team settings
//   - /dashboard, /notifications, /audit
package server
