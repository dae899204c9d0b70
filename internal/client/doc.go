// Package client is a typed HTTP client for the contacts API.
//
//	c, err := client.New("http://localhost:5000")
//	contacts, err := c.List(ctx)
//
// Failed calls return *APIError carrying the status code and the envelope
// message. The client never retries.
package client
