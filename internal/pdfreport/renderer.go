package pdfreport

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/communityflow/flow/pkg/flow/report"
)

const renderTimeout = 30 * time.Second

// ChromiumRenderer prints report HTML to PDF through headless Chromium.
type ChromiumRenderer struct {
	chromePath string
}

// NewChromiumRenderer creates a renderer, locating a Chromium binary from
// CHROME_PATH or well-known install locations.
func NewChromiumRenderer() *ChromiumRenderer {
	return &ChromiumRenderer{chromePath: detectChromePath()}
}

// Render builds the weekly report PDF.
func (r *ChromiumRenderer) Render(ctx context.Context, rep report.Report) ([]byte, error) {
	htmlDoc, err := buildHTML(rep)
	if err != nil {
		return nil, err
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, renderTimeout)
	defer cancel()

	opts := []chromedp.ExecAllocatorOption{
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("disable-dev-shm-usage", true),
	}
	if r.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(timeoutCtx, append(chromedp.DefaultExecAllocatorOptions[:], opts...)...)
	defer allocCancel()

	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	var pdf []byte
	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(htmlDoc))
	err = chromedp.Run(taskCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			out, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.5).
				WithPaperHeight(11).
				WithMarginTop(0.7).
				WithMarginBottom(0.7).
				WithMarginLeft(0.7).
				WithMarginRight(0.7).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = out
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("print report pdf: %w", err)
	}
	return pdf, nil
}

func buildHTML(rep report.Report) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))

	var body bytes.Buffer
	if err := md.Convert([]byte(BuildMarkdown(rep, time.Now())), &body); err != nil {
		return "", fmt.Errorf("convert report markdown: %w", err)
	}

	var doc bytes.Buffer
	doc.WriteString(`<!DOCTYPE html><html><head><meta charset="utf-8"><style>
body { font-family: Helvetica, Arial, sans-serif; font-size: 11pt; color: #222; }
h1 { font-size: 20pt; margin-bottom: 2pt; }
h2 { font-size: 13pt; color: #555; font-weight: normal; }
table { border-collapse: collapse; margin: 8pt 0; }
th, td { border: 1px solid #000; padding: 4pt 16pt; }
th { background: #808080; font-weight: bold; }
</style></head><body>`)
	doc.Write(body.Bytes())
	doc.WriteString(`</body></html>`)
	return doc.String(), nil
}

func detectChromePath() string {
	if p := os.Getenv("CHROME_PATH"); p != "" {
		return p
	}
	candidates := []string{
		"google-chrome",
		"chromium",
		"chromium-browser",
	}
	for _, c := range candidates {
		if p, err := exec.LookPath(c); err == nil {
			return p
		}
	}
	return ""
}
