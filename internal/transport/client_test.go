package transport

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/contactsync/pkg/errors"
)

func TestClientAppliesCommonHeaders(t *testing.T) {
	var got http.Header
	var method string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		method = r.Method
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	auth := &BasicAuth{CompanyID: "acme", PublicKey: "pub", PrivateKey: "priv"}
	client := New(auth, "client-uuid-1", "application/vnd.connectwise.com+json; version=2019.1")

	resp, err := client.Get(context.Background(), server.URL+"/company/contacts")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.MethodGet, method)
	assert.Equal(t, "client-uuid-1", got.Get("clientId"))
	assert.Equal(t, "application/vnd.connectwise.com+json; version=2019.1", got.Get("Accept"))

	expectedAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("acme+pub:priv"))
	assert.Equal(t, expectedAuth, got.Get("Authorization"))
}

func TestClientPutSetsContentType(t *testing.T) {
	var contentType string
	var body []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		body, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(&NoAuth{}, "", "")

	resp, err := client.Put(context.Background(), server.URL+"/company/configurations/1", []byte(`{"id":1}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, `{"id":1}`, string(body))
}

func TestDecodeResponseSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": 7, "name": "Workstation"}`))
	}))
	defer server.Close()

	client := New(&NoAuth{}, "", "")
	resp, err := client.Get(context.Background(), server.URL)
	require.NoError(t, err)

	var target struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, DecodeResponse(resp, "configurations", &target))
	assert.Equal(t, 7, target.ID)
	assert.Equal(t, "Workstation", target.Name)
}

func TestDecodeResponseNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "bad keys"}`))
	}))
	defer server.Close()

	client := New(&NoAuth{}, "", "")
	resp, err := client.Get(context.Background(), server.URL+"/company/contacts")
	require.NoError(t, err)

	var target any
	err = DecodeResponse(resp, "contacts", &target)
	require.Error(t, err)

	var apiErr *errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "contacts", apiErr.Resource)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "bad keys")
}

func TestDecodeResponseMalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": `))
	}))
	defer server.Close()

	client := New(&NoAuth{}, "", "")
	resp, err := client.Get(context.Background(), server.URL)
	require.NoError(t, err)

	var target map[string]any
	err = DecodeResponse(resp, "configurations", &target)
	require.Error(t, err)

	var parseErr *errors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}
