// Package service is the single place where contact input is validated
// before it reaches storage. The HTTP API and the MCP tools both call it.
//
// Errors fall into three classes:
//   - *contact.ValidationError: bad input, nothing was written
//   - ErrNotFound: the id does not exist
//   - *StorageError: the database failed; the cause is kept for callers
//     that report it
package service
