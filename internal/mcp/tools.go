package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/KrishTanna28/CollEdge-Internship-Assignment/internal/service"
	"github.com/KrishTanna28/CollEdge-Internship-Assignment/pkg/contact"
)

// MCP error codes
const (
	ErrorCodeInvalidParams   = -32602 // Invalid method parameters
	ErrorCodeInternalError   = -32603 // Internal JSON-RPC error
	ErrorCodeContactNotFound = -32001 // No contact with the given id
)

// handleListContacts handles the list_contacts tool invocation
func (s *Server) handleListContacts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	contacts, err := s.svc.List(ctx)
	if err != nil {
		return nil, internalError("failed to list contacts", err)
	}

	response := map[string]interface{}{
		"count":    len(contacts),
		"contacts": contacts,
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleCreateContact handles the create_contact tool invocation
func (s *Server) handleCreateContact(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	// Missing arguments fall through to validation as empty strings
	in := contact.Input{
		Name:    getStringDefault(args, "name", ""),
		Email:   getStringDefault(args, "email", ""),
		Phone:   getStringDefault(args, "phone", ""),
		Message: getStringDefault(args, "message", ""),
	}

	created, err := s.svc.Create(ctx, in)
	var verr *contact.ValidationError
	if errors.As(err, &verr) {
		return nil, newMCPError(ErrorCodeInvalidParams, verr.Reason, map[string]interface{}{
			"field":  string(verr.Field),
			"reason": verr.Reason,
		})
	}
	if err != nil {
		return nil, internalError("failed to save contact", err)
	}

	return mcp.NewToolResultText(formatJSON(created)), nil
}

// handleGetContact handles the get_contact tool invocation
func (s *Server) handleGetContact(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := contactID(request)
	if err != nil {
		return nil, err
	}

	c, err := s.svc.Get(ctx, id)
	if errors.Is(err, service.ErrNotFound) {
		return nil, notFoundError(id)
	}
	if err != nil {
		return nil, internalError("failed to get contact", err)
	}

	return mcp.NewToolResultText(formatJSON(c)), nil
}

// handleDeleteContact handles the delete_contact tool invocation
func (s *Server) handleDeleteContact(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := contactID(request)
	if err != nil {
		return nil, err
	}

	err = s.svc.Delete(ctx, id)
	if errors.Is(err, service.ErrNotFound) {
		return nil, notFoundError(id)
	}
	if err != nil {
		return nil, internalError("failed to delete contact", err)
	}

	response := map[string]interface{}{
		"deleted": true,
		"id":      id,
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleGetStatus handles the get_status tool invocation
func (s *Server) handleGetStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status, err := s.svc.Status(ctx)
	if err != nil {
		return nil, internalError("failed to get status", err)
	}

	response := map[string]interface{}{
		"contacts":       status.ContactsCount,
		"schema_version": status.SchemaVersion,
		"health": map[string]interface{}{
			"database_accessible": status.DatabaseAccessible,
			"driver":              status.Driver,
			"build_mode":          status.BuildMode,
		},
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// Helper functions

// contactID extracts the required id argument
func contactID(request mcp.CallToolRequest) (string, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return "", newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	id, ok := args["id"].(string)
	if !ok || id == "" {
		return "", newMCPError(ErrorCodeInvalidParams, "id parameter is required", map[string]interface{}{
			"param":  "id",
			"reason": "missing or empty",
		})
	}
	return id, nil
}

func notFoundError(id string) error {
	return newMCPError(ErrorCodeContactNotFound, "contact not found", map[string]interface{}{
		"id": id,
	})
}

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

func internalError(message string, err error) error {
	return newMCPError(ErrorCodeInternalError, message, map[string]interface{}{
		"error": err.Error(),
	})
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// formatJSON formats a value as indented JSON
func formatJSON(data interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}
