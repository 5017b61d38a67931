// Package handlers implements the HTTP handlers of the sdp API.
//
// Probe endpoints (/healthz, /readyz) are plain Echo handlers. The feed,
// session and quota endpoints are huma operations under /api/v1 and appear
// in the generated OpenAPI document.
package handlers
