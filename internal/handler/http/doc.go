// Package http exposes the vault over a JSON API.
//
// Routes map one to one onto [service.VaultService] operations. Request
// tracing, access logging, gzip and body integrity checks run as middleware
// before a request reaches the service layer. Every mutating endpoint
// answers with the store status code in a {"status": <code>} body.
package http
