// Package httpapi exposes the aggregation engine over HTTP.
//
// The handlers own request parsing and response shapes only; all grouping
// and summarization semantics live in pkg/flow/aggregate and
// pkg/flow/report.
package httpapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/communityflow/flow/pkg/flow/aggregate"
	"github.com/communityflow/flow/pkg/flow/report"
)

// MaxSampleArticles is the server-side cap on per-group sample articles,
// applied regardless of what the caller requests.
const MaxSampleArticles = 200

// defaultSampleArticles matches the original limit_articles default.
const defaultSampleArticles = 20

// defaultReportLimit matches the original /report-data default.
const defaultReportLimit = 15

// PDFRenderer turns a report into PDF bytes. Rendering is presentation
// only; it consumes the fixed report shape and nothing else.
type PDFRenderer interface {
	Render(ctx context.Context, rep report.Report) ([]byte, error)
}

// Server serves the analytics endpoints over one corpus snapshot.
type Server struct {
	engine   *aggregate.Engine
	renderer PDFRenderer
}

// NewServer creates a server for the given engine. The renderer may be
// nil, in which case /report-pdf reports itself unavailable.
func NewServer(engine *aggregate.Engine, renderer PDFRenderer) *Server {
	return &Server{engine: engine, renderer: renderer}
}

// Router builds the gin router with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.Use(corsAllowAll())

	r.GET("/", s.handleRoot)
	r.GET("/themes", s.handleThemes)
	r.GET("/clusters", s.handleClusters)
	r.GET("/map-data", s.handleMapData)
	r.GET("/report-data", s.handleReportData)
	r.GET("/report-pdf", s.handleReportPDF)

	return r
}

func corsAllowAll() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "*")
		c.Header("Access-Control-Allow-Headers", "*")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Community Flow backend is running"})
}

func (s *Server) handleThemes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"total_articles": s.engine.Corpus().Len(),
		"themes":         s.engine.ThemeRollup(),
	})
}

func (s *Server) handleClusters(c *gin.Context) {
	opts := sampleOptions(c)

	if topicParam := c.Query("topic_id"); topicParam != "" {
		topicID, err := strconv.Atoi(topicParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "topic_id must be an integer"})
			return
		}
		c.JSON(http.StatusOK, s.engine.Cluster(topicID, opts))
		return
	}

	clusters := s.engine.Clusters(opts)
	c.JSON(http.StatusOK, gin.H{
		"total_clusters": len(clusters),
		"clusters":       clusters,
	})
}

func (s *Server) handleMapData(c *gin.Context) {
	opts := sampleOptions(c)

	if name, ok := c.GetQuery("neighborhood"); ok {
		c.JSON(http.StatusOK, s.engine.Neighborhood(name, opts))
		return
	}

	neighborhoods := s.engine.Neighborhoods(opts)
	c.JSON(http.StatusOK, gin.H{
		"total_neighborhoods": len(neighborhoods),
		"neighborhoods":       neighborhoods,
	})
}

func (s *Server) handleReportData(c *gin.Context) {
	limit := defaultReportLimit
	if v := c.Query("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		limit = parsed
	}
	direction := aggregate.ParseSortDirection(c.DefaultQuery("sort", "none"))

	// The JSON surface ranks themes by count; the PDF layout keeps the
	// ascending-ID order built into the report shape.
	rep := report.Build(s.engine, limit, direction)
	rep.ThemeDistribution = s.engine.ThemeRollupByCount()
	c.JSON(http.StatusOK, rep)
}

func (s *Server) handleReportPDF(c *gin.Context) {
	if s.renderer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "pdf rendering not configured"})
		return
	}

	rep := report.Build(s.engine, report.DefaultLimit, report.DefaultSort)
	pdf, err := s.renderer.Render(c.Request.Context(), rep)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="community-flow-weekly.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// sampleOptions reads the include_articles / limit_articles query params,
// clamping the limit to the server-side safety cap.
func sampleOptions(c *gin.Context) aggregate.ArticleOptions {
	include, _ := strconv.ParseBool(c.DefaultQuery("include_articles", "false"))

	limit := defaultSampleArticles
	if v := c.Query("limit_articles"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > MaxSampleArticles {
		limit = MaxSampleArticles
	}

	return aggregate.ArticleOptions{Include: include, Limit: limit}
}
