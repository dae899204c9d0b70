// Package mcp exposes the contact service as Model Context Protocol tools so
// assistants can manage contacts.
//
// Tools:
//   - list_contacts: every contact, newest first
//   - create_contact: save a contact (name, email, phone required)
//   - get_contact: fetch one contact by id
//   - delete_contact: remove a contact by id
//   - get_status: store health and contact count
//
// The server speaks JSON-RPC 2.0 over stdio. Stdout is reserved for the
// protocol; logs go to the configured zap logger, which writes to stderr.
//
// # Example
//
//	Request:
//	{
//	  "name": "create_contact",
//	  "arguments": {
//	    "name": "Ann",
//	    "email": "ann@example.com",
//	    "phone": "555-123-4567"
//	  }
//	}
//
//	Response:
//	{
//	  "id": "3f2b...",
//	  "name": "Ann",
//	  "email": "ann@example.com",
//	  "phone": "555-123-4567",
//	  "message": "",
//	  "createdAt": "2025-03-04T21:05:00Z"
//	}
//
// # Error Handling
//
//	{
//	  "error": {
//	    "code": -32602,
//	    "message": "Invalid email format",
//	    "data": {"field": "email", "reason": "Invalid email format"}
//	  }
//	}
//
// Error codes:
//   - -32602: Invalid params (validation failure, missing id)
//   - -32603: Internal error (database failure)
//   - -32001: Contact not found
//
// # MCP Client Configuration
//
//	{
//	  "mcpServers": {
//	    "contacts": {
//	      "command": "/usr/local/bin/contacts",
//	      "args": ["mcp"],
//	      "env": {
//	        "CONTACTS_DB_PATH": "~/.contacts/contacts.db"
//	      }
//	    }
//	  }
//	}
package mcp
