// Package config loads, merges and validates configuration.
//
// Sources, highest priority first:
//  1. Environment variables
//  2. Command-line flags (server only)
//  3. JSON config file
//
// [GetServerConfig] serves the envelope document server and
// [GetClientConfig] the vault client.
package config
