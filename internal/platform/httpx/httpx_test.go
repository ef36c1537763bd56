// Copyright (c) 2026 GlassStream. All rights reserved.
// Author: prashant.sde2204@gmail.com

package httpx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prashant-2204/glassstream/internal/platform/apperr"
	"github.com/prashant-2204/glassstream/internal/platform/httpx"
)

/*
TestClient_GetJSON verifies decoding, bearer authentication, and request-ID
correlation on the happy path.
*/
func TestClient_GetJSON(t *testing.T) {
	var gotAuth, gotRequestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":1}`))
	}))
	defer server.Close()

	client := httpx.New("catalog", server.URL, time.Second, nil, httpx.WithBearerToken("tok-123"))

	target := struct {
		Page int `json:"page"`
	}{}
	err := client.GetJSON(context.Background(), "test_op", "/movie/popular", nil, &target)

	require.NoError(t, err)
	assert.Equal(t, 1, target.Page)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

/*
TestClient_ErrorTaxonomy verifies each failure class maps to its apperr kind.
*/
func TestClient_ErrorTaxonomy(t *testing.T) {
	t.Run("unreachable", func(t *testing.T) {
		client := httpx.New("account", "http://127.0.0.1:1", 200*time.Millisecond, nil)
		err := client.GetJSON(context.Background(), "probe", "/test", nil, nil)
		assert.Equal(t, apperr.KindTransport, apperr.KindOf(err))
	})

	t.Run("non-success status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := httpx.New("account", server.URL, time.Second, nil)
		err := client.GetJSON(context.Background(), "lookup", "/users/x", nil, nil)

		assert.Equal(t, apperr.KindRemote, apperr.KindOf(err))
		assert.Equal(t, http.StatusInternalServerError, apperr.As(err).StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := httpx.New("catalog", server.URL, time.Second, nil)
		err := client.GetJSON(context.Background(), "details", "/movie/1", nil, nil)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"page": `))
		}))
		defer server.Close()

		client := httpx.New("catalog", server.URL, time.Second, nil)
		target := map[string]interface{}{}
		err := client.GetJSON(context.Background(), "search", "/search/movie", nil, &target)
		assert.Equal(t, apperr.KindDecode, apperr.KindOf(err))
	})
}

/*
TestClient_Send verifies the JSON body round-trip for write requests.
*/
func TestClient_Send(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := httpx.New("account", server.URL, time.Second, nil)

	payload := map[string]string{"username": "prash"}
	target := struct {
		OK bool `json:"ok"`
	}{}
	err := client.Send(context.Background(), "update", http.MethodPut, "/users/u1", payload, &target)

	require.NoError(t, err)
	assert.True(t, target.OK)
}

/*
TestClient_ContextCancellation verifies an in-flight request aborts as a
transport failure when its context is cancelled.
*/
func TestClient_ContextCancellation(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()
	defer close(release)

	client := httpx.New("catalog", server.URL, 5*time.Second, nil)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	err := client.GetJSON(ctx, "trending", "/trending/movie/week", nil, nil)
	assert.Equal(t, apperr.KindTransport, apperr.KindOf(err))
}
