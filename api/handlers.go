// Package api exposes the search engine over HTTP. A single RWMutex
// serializes mutating endpoints against everything else, which is the
// external serialization the engine's concurrency contract requires.
package api

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/dabramov/search-server/internal/batch"
	"github.com/dabramov/search-server/internal/dedup"
	"github.com/dabramov/search-server/internal/engine"
	"github.com/dabramov/search-server/internal/metrics"
	"github.com/dabramov/search-server/internal/requests"
	"github.com/dabramov/search-server/model"
	"github.com/dabramov/search-server/services"
)

// Server holds the handler dependencies.
type Server struct {
	mu      sync.RWMutex
	engine  *engine.Engine
	queue   *requests.RequestQueue
	metrics *metrics.Metrics
	log     *slog.Logger
}

// NewServer creates the HTTP handler layer over an engine.
func NewServer(eng *engine.Engine, m *metrics.Metrics, log *slog.Logger) *Server {
	return &Server{
		engine:  eng,
		queue:   requests.New(eng),
		metrics: m,
		log:     log,
	}
}

// Router builds the gin engine with all routes and middleware.
func (s *Server) Router(limiter *rate.Limiter) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogMiddleware(s.log))
	if limiter != nil {
		router.Use(RateLimitMiddleware(limiter))
	}

	router.POST("/documents", s.addDocument)
	router.DELETE("/documents/:id", s.removeDocument)
	router.GET("/documents/:id/frequencies", s.wordFrequencies)
	router.GET("/documents/:id/match", s.matchDocument)
	router.GET("/search", s.search)
	router.POST("/search/batch", s.batchSearch)
	router.POST("/stop-words", s.addStopWords)
	router.POST("/deduplicate", s.deduplicate)
	router.GET("/stats", s.stats)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	return router
}

type addDocumentRequest struct {
	DocumentID int32   `json:"document_id"`
	Text       string  `json:"text"`
	Status     int32   `json:"status"`
	Ratings    []int32 `json:"ratings"`
}

func (s *Server) addDocument(c *gin.Context) {
	var req addDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON, "invalid JSON in request body: "+err.Error())
		return
	}
	status, err := model.ParseStatus(req.Status)
	if err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, err.Error())
		return
	}

	s.mu.Lock()
	err = s.engine.Add(req.DocumentID, req.Text, status, req.Ratings)
	s.mu.Unlock()
	if err != nil {
		SendEngineError(c, err)
		return
	}
	s.metrics.DocsIndexedTotal.Inc()
	c.JSON(http.StatusCreated, gin.H{"document_id": req.DocumentID})
}

func (s *Server) removeDocument(c *gin.Context) {
	id, ok := parseDocumentID(c)
	if !ok {
		return
	}

	s.mu.Lock()
	err := s.engine.Remove(id)
	s.mu.Unlock()
	if err != nil {
		SendEngineError(c, err)
		return
	}
	s.metrics.DocsRemovedTotal.Inc()
	c.JSON(http.StatusOK, gin.H{"document_id": id})
}

func (s *Server) wordFrequencies(c *gin.Context) {
	id, ok := parseDocumentID(c)
	if !ok {
		return
	}

	s.mu.RLock()
	freqs, err := s.engine.WordFrequencies(id)
	s.mu.RUnlock()
	if err != nil {
		SendEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"document_id": id, "frequencies": freqs})
}

func (s *Server) matchDocument(c *gin.Context) {
	id, ok := parseDocumentID(c)
	if !ok {
		return
	}
	rawQuery := c.Query("q")

	s.mu.RLock()
	words, status, err := s.engine.Match(rawQuery, id)
	s.mu.RUnlock()
	if err != nil {
		SendEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"document_id": id,
		"words":       words,
		"status":      int32(status),
	})
}

func (s *Server) search(c *gin.Context) {
	rawQuery := c.Query("q")
	parallel := c.Query("parallel") == "true"

	predicate := services.StatusPredicate(model.StatusActual)
	if v := c.Query("status"); v != "" {
		ordinal, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, "status must be an integer ordinal")
			return
		}
		status, err := model.ParseStatus(int32(ordinal))
		if err != nil {
			SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, err.Error())
			return
		}
		predicate = services.StatusPredicate(status)
	}

	start := time.Now()
	s.mu.RLock()
	var docs []model.Document
	var err error
	if parallel {
		docs, err = s.engine.FindTopParallelWithPredicate(rawQuery, predicate)
	} else {
		docs, err = s.queue.AddFindRequestWithPredicate(rawQuery, predicate)
	}
	s.mu.RUnlock()
	s.metrics.SearchLatency.Observe(time.Since(start).Seconds())

	if err != nil {
		s.metrics.SearchQueriesTotal.WithLabelValues("error").Inc()
		SendEngineError(c, err)
		return
	}
	if len(docs) == 0 {
		s.metrics.SearchQueriesTotal.WithLabelValues("zero_result").Inc()
	} else {
		s.metrics.SearchQueriesTotal.WithLabelValues("hit").Inc()
	}
	c.JSON(http.StatusOK, services.SearchResult{
		QueryID:   uuid.New().String(),
		Documents: docs,
	})
}

type batchSearchRequest struct {
	Queries []string `json:"queries"`
	Joined  bool     `json:"joined"`
}

func (s *Server) batchSearch(c *gin.Context) {
	var req batchSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON, "invalid JSON in request body: "+err.Error())
		return
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if req.Joined {
		docs, err := batch.ProcessQueriesJoined(s.engine, req.Queries)
		if err != nil {
			SendEngineError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"documents": docs})
		return
	}
	lists, err := batch.ProcessQueries(s.engine, req.Queries)
	if err != nil {
		SendEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": lists})
}

type stopWordsRequest struct {
	Text string `json:"text"`
}

func (s *Server) addStopWords(c *gin.Context) {
	var req stopWordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON, "invalid JSON in request body: "+err.Error())
		return
	}

	s.mu.Lock()
	err := s.engine.SetStopWords(req.Text)
	s.mu.Unlock()
	if err != nil {
		SendEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stop_words": req.Text})
}

func (s *Server) deduplicate(c *gin.Context) {
	var diagnostics bytes.Buffer

	s.mu.Lock()
	err := dedup.RemoveDuplicates(s.engine, &diagnostics)
	s.mu.Unlock()
	if err != nil {
		SendEngineError(c, err)
		return
	}

	lines := strings.Split(strings.TrimRight(diagnostics.String(), "\n"), "\n")
	if diagnostics.Len() == 0 {
		lines = []string{}
	}
	for _, line := range lines {
		s.log.Info(line)
	}
	c.JSON(http.StatusOK, gin.H{
		"removed":     len(lines),
		"diagnostics": lines,
	})
}

func (s *Server) stats(c *gin.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c.JSON(http.StatusOK, gin.H{
		"document_count":     s.engine.DocumentCount(),
		"word_count":         s.engine.WordCount(),
		"no_result_requests": s.queue.NoResultRequests(),
	})
}

func parseDocumentID(c *gin.Context) (int32, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, "document id must be a 32-bit integer")
		return 0, false
	}
	return int32(id), true
}
