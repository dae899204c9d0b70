// Package httpapi exposes the contact service over HTTP.
//
// Routes:
//
//	GET    /api/contacts       list, newest first
//	POST   /api/contacts       create
//	DELETE /api/contacts/{id}  delete
//	GET    /api/health         store status
//
// Any other path under /api/ gets a 404 envelope.
//
// Every response is a JSON envelope:
//
//	{"success": true, "data": ..., "message": "..."}
//	{"success": false, "message": "...", "error": "..."}
//
// The error field is only set for storage failures and carries the raw cause.
package httpapi
