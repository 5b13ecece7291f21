// Package middleware contains HTTP middleware for the preview API.
//
// # Components
//
//   - Auth: API key validation against the X-API-Key header.
//   - RayID: assigns a request id (RayID), stored in the fiber locals and
//     echoed in the X-Ray-ID response header for tracing.
//
// The RayID middleware must be registered first so every log line of a
// request can carry the id (see logger.WithRayID).
package middleware
