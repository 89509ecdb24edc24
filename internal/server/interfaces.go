package server

// Server is the lifecycle shared by the transports in this package.
// RunServer blocks until the server stops; Shutdown releases its resources.
type Server interface {
	RunServer()
	Shutdown()
}
