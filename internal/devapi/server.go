// Package devapi is a local stand-in for the marketplace gig API.
// It accepts the same payload as the real seller endpoint and keeps created
// gigs in memory, which makes it useful for trying the wizard and for tests.
package devapi

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mark3labs/gigwizard/internal/logger"
)

// CreateGigRequest mirrors the gig creation payload.
type CreateGigRequest struct {
	Title           string           `json:"title" binding:"required,min=10,max=120"`
	Description     string           `json:"description" binding:"required,min=50,max=5000"`
	CategoryID      string           `json:"categoryId" binding:"required"`
	Tags            []string         `json:"tags" binding:"max=10"`
	WorkType        string           `json:"workType" binding:"required,oneof=remote local hybrid"`
	LocationCity    string           `json:"locationCity"`
	LocationCountry string           `json:"locationCountry"`
	ServiceRadiusKm *float64         `json:"serviceRadiusKm"`
	Status          string           `json:"status" binding:"required,oneof=pending draft"`
	Locale          string           `json:"locale" binding:"required"`
	Packages        []PackageRequest `json:"packages" binding:"required,min=1,dive"`
	Images          []ImageRequest   `json:"images" binding:"dive"`
}

// PackageRequest is one priced tier.
type PackageRequest struct {
	Tier          string   `json:"tier" binding:"required,oneof=basic standard premium"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" binding:"gt=0"`
	Currency      string   `json:"currency" binding:"required,len=3"`
	DeliveryDays  int      `json:"deliveryDays" binding:"gte=0"`
	RevisionCount int      `json:"revisionCount" binding:"gte=0"`
	Features      []string `json:"features"`
}

// ImageRequest is one image.
type ImageRequest struct {
	ImageURL  string `json:"imageUrl" binding:"required"`
	AltText   string `json:"altText"`
	SortOrder int    `json:"sortOrder" binding:"gte=0"`
}

// StoredGig is a gig accepted by the dev API.
type StoredGig struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"createdAt"`
	Gig       CreateGigRequest `json:"gig"`
}

// GigSummary is one row of the seller gig list.
type GigSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store keeps accepted gigs in memory.
type Store struct {
	mu   sync.RWMutex
	gigs []StoredGig
}

// Add stores a gig and returns its record.
func (s *Store) Add(req CreateGigRequest) StoredGig {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := StoredGig{ID: uuid.NewString(), CreatedAt: time.Now().UTC(), Gig: req}
	s.gigs = append(s.gigs, g)
	return g
}

// List returns a copy of all stored gigs.
func (s *Store) List() []StoredGig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]StoredGig(nil), s.gigs...)
}

// Summaries returns the gig list, newest first.
func (s *Store) Summaries() []GigSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]GigSummary, 0, len(s.gigs))
	for i := len(s.gigs) - 1; i >= 0; i-- {
		g := s.gigs[i]
		out = append(out, GigSummary{ID: g.ID, Title: g.Gig.Title, Status: g.Gig.Status, CreatedAt: g.CreatedAt})
	}
	return out
}

// Len returns the number of stored gigs.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.gigs)
}

// NewRouter builds the gin engine serving the seller gig endpoints.
func NewRouter(store *Store) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	seller := r.Group("/api/seller")
	seller.POST("/gigs", func(c *gin.Context) {
		var req CreateGigRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid gig: " + err.Error()})
			return
		}
		g := store.Add(req)
		c.JSON(http.StatusCreated, gin.H{"id": g.ID, "status": req.Status})
	})
	seller.GET("/gigs", func(c *gin.Context) {
		c.JSON(http.StatusOK, store.Summaries())
	})

	return r
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("%s %s %d %s request_id=%s", c.Request.Method, c.Request.URL.Path,
			c.Writer.Status(), time.Since(start), c.GetHeader("X-Request-ID"))
	}
}

// Serve runs the dev API on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, store *Store) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(store),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Dev API listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
