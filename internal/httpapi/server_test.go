package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/communityflow/flow/pkg/flow/aggregate"
	"github.com/communityflow/flow/pkg/flow/report"
	"github.com/communityflow/flow/pkg/flow/snapshot"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func intPtr(v int) *int { return &v }

func testRouter(t *testing.T, renderer PDFRenderer) *gin.Engine {
	t.Helper()
	corpus := snapshot.NewCorpus([]snapshot.Article{
		{
			Title:        "Yoga in the park",
			Date:         "Mon, 05 Feb 2024 09:00:00 GMT",
			Link:         "https://example.org/yoga",
			Neighborhood: "Logan Square",
			Keywords:     []string{"yoga", "breathwork"},
			Themes:       []int{2},
			TopicID:      intPtr(0),
		},
		{
			Title:        "Herbal apothecary opens",
			Date:         "Tue, 06 Feb 2024 09:00:00 GMT",
			Link:         "https://example.org/herbal",
			Neighborhood: "Pilsen",
			Keywords:     []string{"herbal", "tea"},
			Themes:       []int{3},
			TopicID:      intPtr(1),
		},
		{
			Title:        "Community healing circle",
			Date:         "Wed, 07 Feb 2024 09:00:00 GMT",
			Link:         "https://example.org/circle",
			Keywords:     []string{"yoga", "healing"},
			Themes:       []int{2, 4},
			TopicID:      intPtr(0),
		},
	})
	return NewServer(aggregate.NewEngine(corpus), renderer).Router()
}

func doGET(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response: %v\nbody: %s", err, w.Body.String())
	}
}

func TestRoot(t *testing.T) {
	w := doGET(t, testRouter(t, nil), "/")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body map[string]string
	decodeJSON(t, w, &body)
	if body["message"] == "" {
		t.Error("expected a status message")
	}
}

func TestThemes(t *testing.T) {
	w := doGET(t, testRouter(t, nil), "/themes")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var body struct {
		TotalArticles int                    `json:"total_articles"`
		Themes        []aggregate.ThemeCount `json:"themes"`
	}
	decodeJSON(t, w, &body)

	if body.TotalArticles != 3 {
		t.Errorf("total_articles = %d, want 3", body.TotalArticles)
	}
	want := []aggregate.ThemeCount{{ID: 2, Count: 2}, {ID: 3, Count: 1}, {ID: 4, Count: 1}}
	if len(body.Themes) != len(want) {
		t.Fatalf("themes = %+v", body.Themes)
	}
	for i, tc := range want {
		if body.Themes[i] != tc {
			t.Errorf("themes[%d] = %+v, want %+v", i, body.Themes[i], tc)
		}
	}
}

func TestClustersListing(t *testing.T) {
	w := doGET(t, testRouter(t, nil), "/clusters")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var body struct {
		TotalClusters int                        `json:"total_clusters"`
		Clusters      []aggregate.ClusterSummary `json:"clusters"`
	}
	decodeJSON(t, w, &body)

	if body.TotalClusters != 2 {
		t.Fatalf("total_clusters = %d, want 2", body.TotalClusters)
	}
	if body.Clusters[0].TopicID != 0 || body.Clusters[1].TopicID != 1 {
		t.Errorf("clusters not ordered by topic id: %+v", body.Clusters)
	}
	if body.Clusters[0].Count != 2 {
		t.Errorf("cluster 0 count = %d, want 2", body.Clusters[0].Count)
	}
	if body.Clusters[0].Articles != nil {
		t.Error("articles must be omitted unless requested")
	}
}

func TestClustersSingleLookup(t *testing.T) {
	router := testRouter(t, nil)

	w := doGET(t, router, "/clusters?topic_id=1&include_articles=true")
	var cs aggregate.ClusterSummary
	decodeJSON(t, w, &cs)
	if cs.TopicID != 1 || cs.Count != 1 {
		t.Errorf("got %+v", cs)
	}
	if len(cs.Articles) != 1 || cs.Articles[0].Title != "Herbal apothecary opens" {
		t.Errorf("articles = %+v", cs.Articles)
	}

	// Unknown topic IDs answer with an empty well-formed summary.
	w = doGET(t, router, "/clusters?topic_id=99")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	decodeJSON(t, w, &cs)
	if cs.TopicID != 99 || cs.Count != 0 {
		t.Errorf("got %+v", cs)
	}
}

func TestClustersBadTopicID(t *testing.T) {
	w := doGET(t, testRouter(t, nil), "/clusters?topic_id=abc")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestMapData(t *testing.T) {
	router := testRouter(t, nil)

	w := doGET(t, router, "/map-data")
	var body struct {
		TotalNeighborhoods int                             `json:"total_neighborhoods"`
		Neighborhoods      []aggregate.NeighborhoodSummary `json:"neighborhoods"`
	}
	decodeJSON(t, w, &body)

	if body.TotalNeighborhoods != 3 {
		t.Fatalf("total_neighborhoods = %d, want 3", body.TotalNeighborhoods)
	}
	wantOrder := []string{"Logan Square", "Pilsen", "Unknown"}
	for i, name := range wantOrder {
		if body.Neighborhoods[i].Neighborhood != name {
			t.Errorf("neighborhoods[%d] = %q, want %q", i, body.Neighborhoods[i].Neighborhood, name)
		}
	}

	w = doGET(t, router, "/map-data?neighborhood=Pilsen")
	var ns aggregate.NeighborhoodSummary
	decodeJSON(t, w, &ns)
	if ns.Neighborhood != "Pilsen" || ns.Count != 1 {
		t.Errorf("got %+v", ns)
	}
}

func TestSampleArticleClamping(t *testing.T) {
	router := testRouter(t, nil)

	w := doGET(t, router, "/clusters?topic_id=0&include_articles=true&limit_articles=1")
	var cs aggregate.ClusterSummary
	decodeJSON(t, w, &cs)
	if len(cs.Articles) != 1 {
		t.Errorf("limit_articles=1 gave %d articles", len(cs.Articles))
	}

	// Requests over the cap are clamped rather than rejected.
	w = doGET(t, router, "/clusters?topic_id=0&include_articles=true&limit_articles=5000")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	decodeJSON(t, w, &cs)
	if len(cs.Articles) != 2 {
		t.Errorf("clamped request gave %d articles", len(cs.Articles))
	}

	w = doGET(t, router, "/clusters?topic_id=0&include_articles=true&limit_articles=-3")
	decodeJSON(t, w, &cs)
	if cs.Articles == nil || len(cs.Articles) != 0 {
		t.Errorf("negative limit should give an empty list, got %+v", cs.Articles)
	}
}

func TestReportData(t *testing.T) {
	router := testRouter(t, nil)

	w := doGET(t, router, "/report-data?limit=2&sort=date_desc")
	var rep report.Report
	decodeJSON(t, w, &rep)

	if rep.TotalArticles != 3 {
		t.Errorf("total_articles = %d, want 3", rep.TotalArticles)
	}
	if len(rep.LatestItems) != 2 {
		t.Fatalf("latest_items = %d, want 2", len(rep.LatestItems))
	}
	if rep.LatestItems[0].Title != "Community healing circle" {
		t.Errorf("first item = %q", rep.LatestItems[0].Title)
	}

	w = doGET(t, router, "/report-data?limit=oops")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestReportDataThemesRankedByCount(t *testing.T) {
	// Theme 5 outnumbers theme 1, so count order and ID order disagree.
	corpus := snapshot.NewCorpus([]snapshot.Article{
		{Title: "A", Themes: []int{5}},
		{Title: "B", Themes: []int{5}},
		{Title: "C", Themes: []int{1}},
	})
	router := NewServer(aggregate.NewEngine(corpus), nil).Router()

	w := doGET(t, router, "/report-data")
	var rep report.Report
	decodeJSON(t, w, &rep)

	want := []aggregate.ThemeCount{{ID: 5, Count: 2}, {ID: 1, Count: 1}}
	if len(rep.ThemeDistribution) != len(want) {
		t.Fatalf("theme_distribution = %+v", rep.ThemeDistribution)
	}
	for i, tc := range want {
		if rep.ThemeDistribution[i] != tc {
			t.Errorf("theme_distribution[%d] = %+v, want %+v", i, rep.ThemeDistribution[i], tc)
		}
	}
}

type stubRenderer struct {
	pdf []byte
	err error
}

func (s stubRenderer) Render(_ context.Context, _ report.Report) ([]byte, error) {
	return s.pdf, s.err
}

func TestReportPDF(t *testing.T) {
	router := testRouter(t, stubRenderer{pdf: []byte("%PDF-1.4 fake")})

	w := doGET(t, router, "/report-pdf")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q", ct)
	}
	if w.Body.String() != "%PDF-1.4 fake" {
		t.Error("body is not the rendered pdf")
	}
}

func TestReportPDFUnavailable(t *testing.T) {
	w := doGET(t, testRouter(t, nil), "/report-pdf")
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}

func TestReportPDFRenderError(t *testing.T) {
	w := doGET(t, testRouter(t, stubRenderer{err: errors.New("chromium not found")}), "/report-pdf")
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}
