package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KrishTanna28/CollEdge-Internship-Assignment/internal/client"
	"github.com/KrishTanna28/CollEdge-Internship-Assignment/internal/httpapi"
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

func newTestServer(t *testing.T, store storage.Storage) *client.Client {
	t.Helper()
	ts := httptest.NewServer(httpapi.NewHandler(service.New(store, nil), nil).Routes())
	t.Cleanup(ts.Close)

	c, err := client.New(ts.URL, client.WithHTTPClient(ts.Client()))
	require.NoError(t, err)
	return c
}

func setupClient(t *testing.T) *client.Client {
	t.Helper()
	store, err := storage.NewSQLiteStorage(storage.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return newTestServer(t, store)
}

func TestNew(t *testing.T) {
	t.Run("default base url", func(t *testing.T) {
		c, err := client.New("")
		require.NoError(t, err)
		assert.NotNil(t, c)
	})

	t.Run("rejects non-http scheme", func(t *testing.T) {
		_, err := client.New("ftp://example.com")
		assert.Error(t, err)
	})
}

func TestClientRoundTrip(t *testing.T) {
	c := setupClient(t)
	ctx := context.Background()

	contacts, err := c.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, contacts)
	assert.Empty(t, contacts)

	ann, err := c.Create(ctx, contact.Input{Name: "Ann", Email: "ann@x.com", Phone: "1234567890", Message: "hi"})
	require.NoError(t, err)
	assert.NotEmpty(t, ann.ID)
	assert.Equal(t, "hi", ann.Message)

	bob, err := c.Create(ctx, contact.Input{Name: "Bob", Email: "bob@x.com", Phone: "0987654321"})
	require.NoError(t, err)

	contacts, err = c.List(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, bob.ID, contacts[0].ID)
	assert.Equal(t, ann.ID, contacts[1].ID)
	assert.True(t, ann.CreatedAt.Equal(contacts[1].CreatedAt))

	require.NoError(t, c.Delete(ctx, ann.ID))

	contacts, err = c.List(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, bob.ID, contacts[0].ID)
}

func TestClientErrors(t *testing.T) {
	c := setupClient(t)
	ctx := context.Background()

	t.Run("validation", func(t *testing.T) {
		_, err := c.Create(ctx, contact.Input{Name: "Ann", Email: "bad", Phone: "1234567890"})
		var apiErr *client.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, "Invalid email format", apiErr.Message)
		assert.Empty(t, apiErr.Detail)
	})

	t.Run("not found", func(t *testing.T) {
		err := c.Delete(ctx, "missing")
		var apiErr *client.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Equal(t, "Contact not found", apiErr.Message)
	})

	t.Run("server failure", func(t *testing.T) {
		broken := newTestServer(t, brokenStorage{})
		_, err := broken.List(ctx)
		var apiErr *client.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
		assert.Equal(t, "Error fetching contacts", apiErr.Message)
		assert.Contains(t, apiErr.Detail, "disk I/O error")
	})

	t.Run("non-json error body", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "upstream down", http.StatusBadGateway)
		}))
		defer ts.Close()

		proxyClient, err := client.New(ts.URL)
		require.NoError(t, err)
		_, err = proxyClient.List(ctx)
		var apiErr *client.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
		assert.Equal(t, "Bad Gateway", apiErr.Message)
	})

	t.Run("connection refused", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		url := ts.URL
		ts.Close()

		deadClient, err := client.New(url)
		require.NoError(t, err)
		_, err = deadClient.List(ctx)
		require.Error(t, err)
		var apiErr *client.APIError
		assert.False(t, errors.As(err, &apiErr))
	})
}

func TestAPIErrorMessage(t *testing.T) {
	err := &client.APIError{StatusCode: 500, Message: "Error saving contact", Detail: "disk full"}
	assert.Equal(t, "api error 500: Error saving contact: disk full", err.Error())

	err = &client.APIError{StatusCode: 404, Message: "Contact not found"}
	assert.Equal(t, "api error 404: Contact not found", err.Error())
}
