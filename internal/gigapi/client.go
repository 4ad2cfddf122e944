// Package gigapi sends finished gig drafts to the marketplace API.
package gigapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/mark3labs/gigwizard/internal/gig"
	"github.com/mark3labs/gigwizard/internal/logger"
)

// CreateGigPath is the seller gig creation endpoint, relative to the API base URL.
const CreateGigPath = "/api/seller/gigs"

// FallbackErrorMessage is shown when a failed response carries no usable message.
const FallbackErrorMessage = "Something went wrong while saving your gig. Please try again."

// ErrTransport wraps failures that happen before a response arrives.
var ErrTransport = errors.New("could not reach the gig API")

// APIError is a non-2xx response from the gig API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// errorBody is the JSON error shape returned by the API.
type errorBody struct {
	Error string `json:"error"`
}

// CreatedGig is the decoded success body. The API may return an empty body.
type CreatedGig struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// GigSummary is one entry of the seller gig list.
type GigSummary struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

// ClientConfig configures a Client.
type ClientConfig struct {
	BaseURL string        // e.g. https://example.com
	Token   string        // Optional bearer token
	Timeout time.Duration // 0 means no timeout
	Debug   bool
}

// Client posts gig payloads to the API.
type Client struct {
	http *resty.Client
}

// NewClient creates a Client for the given API.
func NewClient(cfg ClientConfig) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetDebug(cfg.Debug).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "gigwizard/1.0")
	if cfg.Timeout > 0 {
		c.SetTimeout(cfg.Timeout)
	}
	if cfg.Token != "" {
		c.SetAuthToken(cfg.Token)
	}
	return &Client{http: c}
}

// CreateGig posts the payload once. Any 2xx is success; other statuses are
// returned as *APIError with the server's message when it can be parsed.
func (c *Client) CreateGig(ctx context.Context, p gig.Payload) (*CreatedGig, error) {
	requestID := uuid.NewString()
	logger.Debug("POST %s status=%s request_id=%s", CreateGigPath, p.Status, requestID)

	var created CreatedGig
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", requestID).
		SetBody(p).
		Post(CreateGigPath)
	if err != nil {
		logger.Error("Gig request failed: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	if !resp.IsSuccess() {
		apiErr := &APIError{StatusCode: resp.StatusCode(), Message: FallbackErrorMessage}
		var body errorBody
		if err := json.Unmarshal(resp.Body(), &body); err == nil && strings.TrimSpace(body.Error) != "" {
			apiErr.Message = body.Error
		}
		logger.Warn("Gig API returned %d: %s", apiErr.StatusCode, apiErr.Message)
		return nil, apiErr
	}

	// Success bodies are informational only
	if len(resp.Body()) > 0 {
		_ = json.Unmarshal(resp.Body(), &created)
	}
	logger.Info("Gig created id=%s status=%s", created.ID, p.Status)
	return &created, nil
}

// ListGigs fetches the seller gig list. It backs the refresh that follows a
// successful submission.
func (c *Client) ListGigs(ctx context.Context) ([]GigSummary, error) {
	var gigs []GigSummary
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", uuid.NewString()).
		SetResult(&gigs).
		Get(CreateGigPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	if !resp.IsSuccess() {
		return nil, &APIError{StatusCode: resp.StatusCode(), Message: FallbackErrorMessage}
	}
	logger.Debug("Refreshed seller gig list: %d gigs", len(gigs))
	return gigs, nil
}

// UserMessage returns the text to show for a failed submission: the API's
// message, the generic fallback for transport failures, or the validation
// message otherwise.
func UserMessage(err error) string {
	var apiErr *APIError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.Is(err, ErrTransport):
		return FallbackErrorMessage
	default:
		return err.Error()
	}
}
