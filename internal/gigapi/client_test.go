package gigapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mark3labs/gigwizard/internal/devapi"
	"github.com/mark3labs/gigwizard/internal/gig"
	"github.com/stretchr/testify/require"
)

func logoDraft() gig.Draft {
	return gig.Merge(gig.NewDraft(), gig.Patch{
		CategoryID:  gig.Str("design"),
		Title:       gig.Str("Logo design for startups"),
		Description: gig.Str(strings.Repeat("d", 60)),
		Package:     &gig.PackagePatch{Tier: gig.TierBasic, Price: gig.Str("150")},
	})
}

func TestClient_CreateGigAgainstDevAPI(t *testing.T) {
	store := &devapi.Store{}
	srv := httptest.NewServer(devapi.NewRouter(store))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL + "/"})
	created, err := client.CreateGig(context.Background(), gig.BuildPayload(logoDraft(), gig.StatusPending, "nl"))

	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "pending", created.Status)

	gigs := store.List()
	require.Len(t, gigs, 1)
	require.Len(t, gigs[0].Gig.Packages, 1)
	require.Equal(t, "basic", gigs[0].Gig.Packages[0].Tier)
	require.Equal(t, 150.0, gigs[0].Gig.Packages[0].Price)
}

func TestClient_SendsHeaders(t *testing.T) {
	var gotAuth, gotRequestID, gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		gotMethod = r.Method
		gotPath = r.URL.Path
		_, _ = io.Copy(io.Discard, r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL, Token: "secret"})
	_, err := client.CreateGig(context.Background(), gig.BuildPayload(logoDraft(), gig.StatusDraft, "en"))

	require.NoError(t, err)
	require.Equal(t, http.MethodPost, gotMethod)
	require.Equal(t, CreateGigPath, gotPath)
	require.Equal(t, "Bearer secret", gotAuth)
	require.Len(t, gotRequestID, 36)
}

func TestClient_ErrorResponses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{name: "json error body", status: http.StatusUnprocessableEntity, body: `{"error":"Title already used"}`, wantMsg: "Title already used"},
		{name: "server error with html", status: http.StatusInternalServerError, body: `<html>oops</html>`, wantMsg: FallbackErrorMessage},
		{name: "empty error field", status: http.StatusBadRequest, body: `{"error":""}`, wantMsg: FallbackErrorMessage},
		{name: "empty body", status: http.StatusBadGateway, body: ``, wantMsg: FallbackErrorMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient(ClientConfig{BaseURL: srv.URL})
			_, err := client.CreateGig(context.Background(), gig.BuildPayload(logoDraft(), gig.StatusPending, "nl"))

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr), "want *APIError, got %v", err)
			require.Equal(t, tt.status, apiErr.StatusCode)
			require.Equal(t, tt.wantMsg, apiErr.Error())
		})
	}
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(ClientConfig{BaseURL: url})
	_, err := client.CreateGig(context.Background(), gig.BuildPayload(logoDraft(), gig.StatusPending, "nl"))

	require.ErrorIs(t, err, ErrTransport)
	var apiErr *APIError
	require.False(t, errors.As(err, &apiErr))
	require.Equal(t, FallbackErrorMessage, UserMessage(err))
}

func TestUserMessage(t *testing.T) {
	require.Empty(t, UserMessage(nil))
	require.Equal(t, "Title already used", UserMessage(&APIError{StatusCode: 409, Message: "Title already used"}))
	require.Equal(t, gig.ErrBasicPrice.Error(), UserMessage(gig.ErrBasicPrice))
}

func TestClient_ListGigs(t *testing.T) {
	store := &devapi.Store{}
	srv := httptest.NewServer(devapi.NewRouter(store))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL})
	gigs, err := client.ListGigs(context.Background())
	require.NoError(t, err)
	require.Empty(t, gigs)

	_, err = client.CreateGig(context.Background(), gig.BuildPayload(logoDraft(), gig.StatusDraft, "nl"))
	require.NoError(t, err)

	gigs, err = client.ListGigs(context.Background())
	require.NoError(t, err)
	require.Len(t, gigs, 1)
	require.Equal(t, "Logo design for startups", gigs[0].Title)
	require.Equal(t, "draft", gigs[0].Status)
}

func TestClient_ListGigsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := NewClient(ClientConfig{BaseURL: srv.URL}).ListGigs(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}
