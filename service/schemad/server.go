package main

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"sync"

	"skiff/lib/schema"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// ------------------------ START metric definitions ----------------------------

var totalRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Number of incoming HTTP requests.",
	},
	[]string{"path"},
)

var responseStatus = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "response_status",
		Help: "Status of HTTP response",
	},
	[]string{"path", "status"},
)

var httpDuration = promauto.NewSummaryVec(prometheus.SummaryOpts{
	Name: "http_response_time_seconds",
	Help: "Duration of HTTP requests.",
	// Track quantiles within small error
	Objectives: map[float64]float64{
		0.50: 0.05,
		0.90: 0.05,
		0.99: 0.01,
	},
}, []string{"path"})

// ------------------------ END metric definitions ------------------------------

func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()
		totalRequests.WithLabelValues(path).Inc()
		timer := prometheus.NewTimer(httpDuration.WithLabelValues(path))
		c.Next()
		timer.ObserveDuration()
		responseStatus.WithLabelValues(path, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// server is an in-memory registry of named frame schemas. Writes go through a
// full parse, so anything it hands back is canonical interchange json.
type server struct {
	*gin.Engine

	mu      sync.RWMutex
	schemas map[string]json.RawMessage
}

func newServer() *server {
	s := &server{
		Engine:  gin.New(),
		schemas: make(map[string]json.RawMessage),
	}
	s.Use(gin.Recovery(), prometheusMiddleware())
	s.GET("/ping", s.Ping)
	s.GET("/metrics", gin.WrapH(promhttp.Handler()))
	s.GET("/schema/:name", s.GetSchema)
	s.GET("/schema/:name/simple", s.GetSimpleString)
	s.POST("/schema/:name", s.PutSchema)
	return s
}

func (s *server) Ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}

func (s *server) GetSchema(c *gin.Context) {
	name := c.Param("name")
	s.mu.RLock()
	data, ok := s.schemas[name]
	s.mu.RUnlock()
	if !ok {
		c.String(http.StatusNotFound, "no schema registered for %q", name)
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

func (s *server) GetSimpleString(c *gin.Context) {
	name := c.Param("name")
	s.mu.RLock()
	data, ok := s.schemas[name]
	s.mu.RUnlock()
	if !ok {
		c.String(http.StatusNotFound, "no schema registered for %q", name)
		return
	}
	// stored schemas always reparse; they were validated on the way in
	st, err := schema.ParseStructType(data)
	if err != nil {
		c.String(http.StatusInternalServerError, "stored schema for %q is corrupt: %v", name, err)
		return
	}
	c.String(http.StatusOK, st.SimpleString())
}

func (s *server) PutSchema(c *gin.Context) {
	name := c.Param("name")
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.String(http.StatusBadRequest, "could not read request body: %v", err)
		return
	}
	st, err := schema.ParseStructType(body)
	if err != nil {
		c.String(http.StatusBadRequest, "invalid schema: %v", err)
		return
	}
	canonical, err := schema.ToJSON(st)
	if err != nil {
		c.String(http.StatusInternalServerError, "could not serialize schema: %v", err)
		return
	}
	s.mu.Lock()
	s.schemas[name] = canonical
	s.mu.Unlock()
	zap.L().Info("registered schema",
		zap.String("name", name), zap.Int("fields", len(st.Fields)))
	c.Data(http.StatusOK, "application/json", canonical)
}
