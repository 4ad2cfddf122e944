// Package testfixtures provides mock implementations and test utilities for TUI testing.
//
// This file contains mock implementations for the wizard's network side:
//   - MockCreator: Mock implementation of gigapi.GigCreator
//   - MockRefresher: Mock implementation of gigapi.Refresher
//
// All mocks are thread-safe and provide verification methods for assertions in tests.
//
// Example usage:
//
//	func TestMyComponent(t *testing.T) {
//	    creator := testfixtures.NewMockCreator()
//	    submitter := gigapi.NewSubmitter(creator, "nl", testfixtures.Categories())
//
//	    // Use mocks in your test...
//	    // Later verify calls:
//	    require.Equal(t, 1, creator.Calls())
//	}
package testfixtures

import (
	"context"
	"fmt"
	"sync"

	"github.com/mark3labs/gigwizard/internal/gig"
	"github.com/mark3labs/gigwizard/internal/gigapi"
)

// MockCreator is a mock implementation of gigapi.GigCreator.
type MockCreator struct {
	mu sync.Mutex

	// Error to return from CreateGig
	Err error
	// When set, CreateGig blocks until the channel is closed
	Block chan struct{}

	payloads []gig.Payload
	counter  int
}

// NewMockCreator creates a MockCreator that accepts every gig.
func NewMockCreator() *MockCreator {
	return &MockCreator{}
}

// CreateGig records the payload and returns a created gig or Err.
func (m *MockCreator) CreateGig(ctx context.Context, p gig.Payload) (*gigapi.CreatedGig, error) {
	m.mu.Lock()
	m.payloads = append(m.payloads, p)
	m.counter++
	id := fmt.Sprintf("gig-%d", m.counter)
	block := m.Block
	err := m.Err
	m.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	return &gigapi.CreatedGig{ID: id, Status: string(p.Status)}, nil
}

// Calls returns the number of CreateGig calls.
func (m *MockCreator) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.payloads)
}

// Payloads returns a copy of every payload received.
func (m *MockCreator) Payloads() []gig.Payload {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]gig.Payload(nil), m.payloads...)
}

// LastPayload returns the most recent payload, or a zero value.
func (m *MockCreator) LastPayload() gig.Payload {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.payloads) == 0 {
		return gig.Payload{}
	}
	return m.payloads[len(m.payloads)-1]
}

// MockRefresher is a mock implementation of gigapi.Refresher.
type MockRefresher struct {
	mu sync.Mutex

	// Gigs to return from ListGigs
	Gigs []gigapi.GigSummary
	// Error to return from ListGigs
	Err error

	calls int
}

// NewMockRefresher creates a MockRefresher returning gigs.
func NewMockRefresher(gigs ...gigapi.GigSummary) *MockRefresher {
	return &MockRefresher{Gigs: gigs}
}

// ListGigs returns Gigs or Err.
func (m *MockRefresher) ListGigs(ctx context.Context) ([]gigapi.GigSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return append([]gigapi.GigSummary(nil), m.Gigs...), nil
}

// Calls returns the number of ListGigs calls.
func (m *MockRefresher) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
