package modeladapter_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/termai-cli/termai/pkg/modeladapter"
)

func TestPostJSON_QueryParamAuth(t *testing.T) {
	var gotQuery, gotContentType string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotContentType = r.Header.Get("Content-Type")

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(srv.Close)

	a := &modeladapter.Adapter{
		BaseURL: srv.URL,
		Auth:    modeladapter.Auth{Key: "s3cret", Param: "key"},
	}

	resp, status, err := a.PostJSON(context.Background(), "/v1/things", map[string]string{"q": "hi"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "key=s3cret", gotQuery)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "hi", gotBody["q"])
	assert.JSONEq(t, `{"ok":true}`, string(resp))
}

func TestPostJSON_QueryParamAuth_Escaped(t *testing.T) {
	var gotKey string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("key")
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	a := &modeladapter.Adapter{
		BaseURL: srv.URL,
		Auth:    modeladapter.Auth{Key: "a b&c", Param: "key"},
	}

	_, _, err := a.PostJSON(context.Background(), "/p", nil)
	require.NoError(t, err)
	assert.Equal(t, "a b&c", gotKey)
}

func TestPostJSON_HeaderAuth(t *testing.T) {
	var gotAuth, gotGoog string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotGoog = r.Header.Get("x-goog-api-key")
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	a := &modeladapter.Adapter{
		BaseURL: srv.URL,
		Auth:    modeladapter.Auth{Key: "tok"},
	}
	_, _, err := a.PostJSON(context.Background(), "/p", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok", gotAuth)

	a = &modeladapter.Adapter{
		BaseURL: srv.URL,
		Auth:    modeladapter.Auth{Key: "tok", Header: "x-goog-api-key"},
	}
	_, _, err = a.PostJSON(context.Background(), "/p", nil)
	require.NoError(t, err)
	assert.Equal(t, "tok", gotGoog)
}

func TestPostJSON_CustomHeaders(t *testing.T) {
	var got string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("x-client")
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	a := &modeladapter.Adapter{
		BaseURL: srv.URL,
		Headers: map[string]string{"x-client": "termai"},
	}

	_, _, err := a.PostJSON(context.Background(), "/p", nil)
	require.NoError(t, err)
	assert.Equal(t, "termai", got)
}

func TestPostJSON_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("server error"))
	}))
	t.Cleanup(srv.Close)

	a := &modeladapter.Adapter{BaseURL: srv.URL}

	_, status, err := a.PostJSON(context.Background(), "/p", nil)

	assert.Equal(t, http.StatusInternalServerError, status)

	var serr *modeladapter.StatusError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, http.StatusInternalServerError, serr.Code)
	assert.Equal(t, "server error", serr.Body)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "server error")
}

func TestPostJSON_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	srv.Close() // refuse connections

	a := &modeladapter.Adapter{BaseURL: srv.URL}

	_, _, err := a.PostJSON(context.Background(), "/p", nil)

	require.Error(t, err)

	// Transport failures are plain errors, not StatusError.
	var serr *modeladapter.StatusError
	assert.False(t, errors.As(err, &serr))
}
