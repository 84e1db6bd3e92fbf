package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blogdev/blog-api/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateTestServer creates a httptest server with the given handler.
// Automatically registers cleanup via t.Cleanup() so callers don't need to manually close the server.
func CreateTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(func() {
		server.Close()
	})
	return server
}

// ExecuteRequest sends a request with the given raw body to the test server.
// An empty body sends no body at all. The response body is closed on cleanup.
func ExecuteRequest(t *testing.T, server *httptest.Server, method, path, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}

	req, err := http.NewRequest(method, server.URL+path, reader)
	require.NoError(t, err, "Failed to create request")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err, "Failed to execute request")
	t.Cleanup(func() {
		if err := resp.Body.Close(); err != nil {
			t.Logf("Warning: failed to close response body: %v", err)
		}
	})

	return resp
}

// ExecuteJSONRequest marshals payload and sends it to the test server.
func ExecuteJSONRequest(
	t *testing.T,
	server *httptest.Server,
	method, path string,
	payload interface{},
) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err, "Failed to marshal request payload")

	return ExecuteRequest(t, server, method, path, string(body))
}

// DecodeResponse unmarshals the response body into v.
func DecodeResponse(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")
	require.NoError(t, json.Unmarshal(body, v), "Failed to unmarshal response: %s", string(body))
}

// AssertEmptyResponse checks the status code and that the body is empty.
func AssertEmptyResponse(t *testing.T, resp *http.Response, expectedStatus int) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")
	assert.Empty(t, body, "Expected empty body for status %d", expectedStatus)
}

// AssertErrorResponse checks that a response contains an error with the expected status code and message.
func AssertErrorResponse(
	t *testing.T,
	resp *http.Response,
	expectedStatus int,
	expectedErrorMsgPart string,
) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode)

	var errResp shared.ErrorResponse
	DecodeResponse(t, resp, &errResp)

	assert.Contains(t, errResp.Error, expectedErrorMsgPart,
		"Error message should contain '%s' but got '%s'", expectedErrorMsgPart, errResp.Error)
}

// AssertValidationResponse checks for a 400 response with exactly the given field map.
func AssertValidationResponse(t *testing.T, resp *http.Response, expected map[string]string) {
	t.Helper()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var fields map[string]string
	DecodeResponse(t, resp, &fields)
	assert.Equal(t, expected, fields)
}
