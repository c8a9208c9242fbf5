package snapshot

// Article is the unit record of the corpus. Fields are added in pipeline
// order and never removed: the scrapers fill title/text/date/link/source/
// neighborhood, enrichment adds clean_text/keywords/themes, and the
// clustering batch job adds topic_id.
type Article struct {
	Title        string   `json:"title"`
	Text         string   `json:"text"`
	CleanText    string   `json:"clean_text,omitempty"`
	Date         string   `json:"date"`
	Link         string   `json:"link"`
	Source       string   `json:"source"`
	Neighborhood string   `json:"neighborhood"`
	Keywords     []string `json:"keywords,omitempty"`
	Themes       []int    `json:"themes,omitempty"`

	// TopicID is nil until the clustering job has run over the whole
	// corpus. Articles without a topic are excluded from cluster views.
	TopicID *int `json:"topic_id,omitempty"`
}

// HasTopic reports whether the clustering job has assigned this article
// to a cluster.
func (a *Article) HasTopic() bool {
	return a.TopicID != nil
}
