// Package server exposes the discovery service over HTTP.
//
// Routes:
//
//	GET  /api/filters  - available category and pricing filter values
//	POST /api/chat     - personalized tool recommendation for a query
//	GET  /api/persona  - the user's current dominant persona
//	POST /api/click    - record a tool or category click
//
// Requests without a user_id fall back to the shared "guest" identity.
package server
