package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// listContactsTool returns the tool definition for list_contacts
func listContactsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_contacts",
		Description: "List all saved contacts, newest first",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// createContactTool returns the tool definition for create_contact
func createContactTool() mcp.Tool {
	return mcp.Tool{
		Name:        "create_contact",
		Description: "Save a new contact",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Full name",
				},
				"email": map[string]interface{}{
					"type":        "string",
					"description": "Email address (local@domain.tld)",
				},
				"phone": map[string]interface{}{
					"type":        "string",
					"description": "Phone number, at least 10 characters",
					"minLength":   10,
				},
				"message": map[string]interface{}{
					"type":        "string",
					"description": "Optional note about the contact",
				},
			},
			Required: []string{"name", "email", "phone"},
		},
	}
}

// getContactTool returns the tool definition for get_contact
func getContactTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_contact",
		Description: "Fetch a single contact by id",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"id": map[string]interface{}{
					"type":        "string",
					"description": "Contact id as returned by list_contacts",
				},
			},
			Required: []string{"id"},
		},
	}
}

// deleteContactTool returns the tool definition for delete_contact
func deleteContactTool() mcp.Tool {
	return mcp.Tool{
		Name:        "delete_contact",
		Description: "Delete a contact by id",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"id": map[string]interface{}{
					"type":        "string",
					"description": "Contact id as returned by list_contacts",
				},
			},
			Required: []string{"id"},
		},
	}
}

// getStatusTool returns the tool definition for get_status
func getStatusTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_status",
		Description: "Report contact store health and statistics",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}
