package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KrishTanna28/CollEdge-Internship-Assignment/internal/service"
	"github.com/KrishTanna28/CollEdge-Internship-Assignment/internal/storage"
	"github.com/KrishTanna28/CollEdge-Internship-Assignment/pkg/contact"
)

type brokenStorage struct {
	storage.Storage
}

func (brokenStorage) ListContacts(context.Context) ([]contact.Contact, error) {
	return nil, errors.New("disk I/O error")
}

func setupServer(t *testing.T) *Server {
	t.Helper()
	store, err := storage.NewSQLiteStorage(storage.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return NewServer(service.New(store, nil), nil)
}

func callRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func resultJSON(t *testing.T, result *mcp.CallToolResult, v interface{}) {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	require.NoError(t, json.Unmarshal([]byte(text.Text), v))
}

func requireMCPError(t *testing.T, err error, code int) *MCPError {
	t.Helper()
	var mcpErr *MCPError
	require.True(t, errors.As(err, &mcpErr), "expected MCPError, got %v", err)
	assert.Equal(t, code, mcpErr.Code)
	return mcpErr
}

func TestNewServer(t *testing.T) {
	s := setupServer(t)
	assert.NotNil(t, s.mcp)
	assert.NotNil(t, s.svc)
	assert.NotNil(t, s.logger)
}

func TestCreateAndListContacts(t *testing.T) {
	s := setupServer(t)
	ctx := context.Background()

	result, err := s.handleCreateContact(ctx, callRequest("create_contact", map[string]interface{}{
		"name":    "Ann",
		"email":   "ann@x.com",
		"phone":   "1234567890",
		"message": "hello",
	}))
	require.NoError(t, err)

	var created contact.Contact
	resultJSON(t, result, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Ann", created.Name)
	assert.Equal(t, "hello", created.Message)

	result, err = s.handleListContacts(ctx, callRequest("list_contacts", nil))
	require.NoError(t, err)

	var listed struct {
		Count    int               `json:"count"`
		Contacts []contact.Contact `json:"contacts"`
	}
	resultJSON(t, result, &listed)
	assert.Equal(t, 1, listed.Count)
	require.Len(t, listed.Contacts, 1)
	assert.Equal(t, created.ID, listed.Contacts[0].ID)
}

func TestCreateContact_Validation(t *testing.T) {
	s := setupServer(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		args  map[string]interface{}
		field string
	}{
		{"missing phone", map[string]interface{}{"name": "Ann", "email": "ann@x.com"}, "phone"},
		{"bad email", map[string]interface{}{"name": "Ann", "email": "nope", "phone": "1234567890"}, "email"},
		{"short phone", map[string]interface{}{"name": "Ann", "email": "ann@x.com", "phone": "123"}, "phone"},
		{"non-string name", map[string]interface{}{"name": 7, "email": "ann@x.com", "phone": "1234567890"}, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.handleCreateContact(ctx, callRequest("create_contact", tt.args))
			mcpErr := requireMCPError(t, err, ErrorCodeInvalidParams)
			data, ok := mcpErr.Data.(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, tt.field, data["field"])
		})
	}

	result, err := s.handleListContacts(ctx, callRequest("list_contacts", nil))
	require.NoError(t, err)
	var listed struct {
		Count int `json:"count"`
	}
	resultJSON(t, result, &listed)
	assert.Zero(t, listed.Count)
}

func TestCreateContact_InvalidArguments(t *testing.T) {
	s := setupServer(t)
	req := mcp.CallToolRequest{}
	req.Params.Name = "create_contact"
	req.Params.Arguments = "not an object"

	_, err := s.handleCreateContact(context.Background(), req)
	requireMCPError(t, err, ErrorCodeInvalidParams)
}

func TestDeleteContact(t *testing.T) {
	s := setupServer(t)
	ctx := context.Background()

	result, err := s.handleCreateContact(ctx, callRequest("create_contact", map[string]interface{}{
		"name": "Ann", "email": "ann@x.com", "phone": "1234567890",
	}))
	require.NoError(t, err)
	var created contact.Contact
	resultJSON(t, result, &created)

	result, err = s.handleDeleteContact(ctx, callRequest("delete_contact", map[string]interface{}{"id": created.ID}))
	require.NoError(t, err)
	var deleted map[string]interface{}
	resultJSON(t, result, &deleted)
	assert.Equal(t, true, deleted["deleted"])
	assert.Equal(t, created.ID, deleted["id"])

	t.Run("unknown id", func(t *testing.T) {
		_, err := s.handleDeleteContact(ctx, callRequest("delete_contact", map[string]interface{}{"id": created.ID}))
		requireMCPError(t, err, ErrorCodeContactNotFound)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := s.handleDeleteContact(ctx, callRequest("delete_contact", map[string]interface{}{}))
		requireMCPError(t, err, ErrorCodeInvalidParams)
	})
}

func TestGetContact(t *testing.T) {
	s := setupServer(t)
	ctx := context.Background()

	result, err := s.handleCreateContact(ctx, callRequest("create_contact", map[string]interface{}{
		"name": "Ann", "email": "ann@x.com", "phone": "1234567890", "message": "hi",
	}))
	require.NoError(t, err)
	var created contact.Contact
	resultJSON(t, result, &created)

	result, err = s.handleGetContact(ctx, callRequest("get_contact", map[string]interface{}{"id": created.ID}))
	require.NoError(t, err)
	var got contact.Contact
	resultJSON(t, result, &got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Ann", got.Name)
	assert.Equal(t, "hi", got.Message)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))

	t.Run("unknown id", func(t *testing.T) {
		_, err := s.handleGetContact(ctx, callRequest("get_contact", map[string]interface{}{"id": "nope"}))
		mcpErr := requireMCPError(t, err, ErrorCodeContactNotFound)
		assert.Equal(t, map[string]interface{}{"id": "nope"}, mcpErr.Data)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := s.handleGetContact(ctx, callRequest("get_contact", map[string]interface{}{"id": ""}))
		requireMCPError(t, err, ErrorCodeInvalidParams)
	})
}

func TestGetStatus(t *testing.T) {
	s := setupServer(t)

	result, err := s.handleGetStatus(context.Background(), callRequest("get_status", nil))
	require.NoError(t, err)

	var status struct {
		Contacts      int    `json:"contacts"`
		SchemaVersion string `json:"schema_version"`
		Health        struct {
			DatabaseAccessible bool `json:"database_accessible"`
		} `json:"health"`
	}
	resultJSON(t, result, &status)
	assert.Zero(t, status.Contacts)
	assert.Equal(t, storage.CurrentSchemaVersion, status.SchemaVersion)
	assert.True(t, status.Health.DatabaseAccessible)
}

func TestStorageFailure(t *testing.T) {
	s := NewServer(service.New(brokenStorage{}, nil), nil)

	_, err := s.handleListContacts(context.Background(), callRequest("list_contacts", nil))
	mcpErr := requireMCPError(t, err, ErrorCodeInternalError)
	data, ok := mcpErr.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, data["error"], "disk I/O error")
}

func TestMCPError(t *testing.T) {
	err := newMCPError(ErrorCodeContactNotFound, "contact not found", nil)
	assert.Equal(t, "MCP error -32001: contact not found", err.Error())
}
