// Package contact defines the Contact entity shared by the server, the MCP
// surface and the clients.
//
// # Validation
//
// One rule set is used everywhere. The API rejects invalid input with 400 and
// the terminal UI runs the same checks before it lets a form be submitted:
//
//	in := contact.Input{Name: "Ann", Email: "ann@x.com", Phone: "1234567890"}
//	if err := in.Validate(); err != nil {
//	    var verr *contact.ValidationError
//	    errors.As(err, &verr) // verr.Field, verr.Reason
//	}
//
// Rules:
//   - name: required, non-blank
//   - email: required, matches ^[^\s@]+@[^\s@]+\.[^\s@]+$
//   - phone: required, at least MinPhoneLength characters
//   - message: optional
//
// # Ordering
//
// Sorted derives a display order without mutating the source slice:
//
//	view := contact.Sorted(all, contact.SortByName)
//
// SortByDate puts the most recent CreatedAt first; SortByName uses English
// collation so "alice" sorts next to "Alice" rather than after "Zed".
package contact
