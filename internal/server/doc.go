// Package server exposes the aggregator over HTTP.
//
// A single generation endpoint plus a health check, routed with chi:
//
//	POST /api/generate-playlist
//	GET  /health
//
// Middleware: request IDs, real IP resolution, panic recovery, permissive
// CORS for browser clients served from another origin, and structured
// request logging.
//
// Provider failures never surface as 5xx responses; the partial-failure
// policy lives in the generator, so the handler only distinguishes invalid
// input (400) from a successful, possibly empty, playlist (200).
package server
