// Package server runs the vault's HTTP server, including startup, signal
// handling and graceful shutdown.
package server
