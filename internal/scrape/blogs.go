package scrape

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/communityflow/flow/pkg/flow/snapshot"
)

// BlogSources are the wellness blogs scanned for paragraphs.
var BlogSources = []string{
	"https://chicagomindfulcollective.com/blog/",
	"https://www.yogasix.com/blog",
	"https://www.mindful.org/category/news/",
}

// minParagraphLen filters out navigation crumbs and other junk text.
const minParagraphLen = 40

const userAgent = "Mozilla/5.0"

// Blogs fetches every blog source and extracts its paragraphs as raw
// articles. A source that fails to fetch is logged and skipped; the
// remaining sources still contribute.
func Blogs(ctx context.Context, client *http.Client) ([]snapshot.Article, error) {
	if client == nil {
		client = http.DefaultClient
	}

	var articles []snapshot.Article
	for _, url := range BlogSources {
		body, err := fetch(ctx, client, url)
		if err != nil {
			log.Printf("blog fetch failed, skipping %s: %v", url, err)
			continue
		}
		page, err := ParseBlogPage(body, url)
		body.Close()
		if err != nil {
			log.Printf("blog parse failed, skipping %s: %v", url, err)
			continue
		}
		articles = append(articles, page...)
	}

	if len(articles) == 0 {
		return nil, fmt.Errorf("no blog source yielded any paragraphs")
	}
	return articles, nil
}

// ParseBlogPage extracts paragraph articles from one blog page. Blogs are
// long-form, so every sufficiently long paragraph becomes its own record,
// dated and titled empty, linked back to the page it came from.
func ParseBlogPage(r io.Reader, url string) ([]snapshot.Article, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var articles []snapshot.Article
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if len(text) < minParagraphLen {
			return
		}
		articles = append(articles, snapshot.Article{
			Text:         text,
			Link:         url,
			Source:       "Blog",
			Neighborhood: "Chicago",
		})
	})
	return articles, nil
}

func fetch(ctx context.Context, client *http.Client, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return resp.Body, nil
}
