package server

// Server is the lifecycle contract shared by the transport servers this
// package manages.
//
// RunServer blocks until the server stops; Shutdown asks a running server to
// drain in-flight requests and release its listener.
type Server interface {
	// RunServer starts accepting requests and blocks until the server exits.
	RunServer()

	// Shutdown stops the server gracefully.
	Shutdown()
}
