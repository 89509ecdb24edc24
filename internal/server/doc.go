// Package server runs the envelope document server's transports.
//
// The HTTP API and the gRPC health endpoint share one lifecycle: both bind
// before either serves, and a termination signal stops both gracefully.
package server
