package server

// Server is the lifecycle of the vault API server.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT and then shuts down
	// gracefully. It returns early if the listener cannot be started.
	RunServer() error

	// Shutdown stops accepting connections and waits for in-flight requests.
	Shutdown()
}
