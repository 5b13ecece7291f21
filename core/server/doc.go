// Package server holds the HTTP server configuration for the preview API.
//
// # Configuration
//
//   - Port: listen port (SERVER_PORT, default 8080)
//   - ApiKey: optional key checked against the X-API-Key header (SERVER_API_KEY)
package server
