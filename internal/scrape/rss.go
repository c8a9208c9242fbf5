// Package scrape collects raw Chicago wellness articles from the outside
// world: the Google News RSS search feed and a fixed list of wellness
// blogs. Scraping is pure I/O; everything downstream of the raw batch
// (cleaning, labeling, clustering) lives in pkg/flow.
package scrape

import (
	"context"
	"fmt"

	"github.com/mmcdole/gofeed"

	"github.com/communityflow/flow/pkg/flow/snapshot"
)

// GoogleNewsURL is the RSS search feed for Chicago wellness coverage.
const GoogleNewsURL = "https://news.google.com/rss/search?q=chicago+wellness+mindfulness+healing&hl=en-US&gl=US&ceid=US:en"

// sourceGoogleRSS is the source label stamped on feed articles.
const sourceGoogleRSS = "Google News RSS"

// GoogleRSS fetches the news feed and maps its items to raw articles.
// Only the scrape-time fields are filled; enrichment adds the rest later.
func GoogleRSS(ctx context.Context) ([]snapshot.Article, error) {
	parser := gofeed.NewParser()
	feed, err := parser.ParseURLWithContext(GoogleNewsURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch google rss: %w", err)
	}
	return feedToArticles(feed), nil
}

func feedToArticles(feed *gofeed.Feed) []snapshot.Article {
	articles := make([]snapshot.Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		articles = append(articles, snapshot.Article{
			Title:        item.Title,
			Text:         item.Description,
			Date:         item.Published,
			Link:         item.Link,
			Source:       sourceGoogleRSS,
			Neighborhood: "Chicago",
		})
	}
	return articles
}
