// Package http is the REST face of the envelope document server.
//
// Every envelope route is authenticated with a bearer JWT whose subject must
// name the account in the path. Requests are traced, logged and recovered
// before they reach the envelope document service.
package http
