package scrape

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/communityflow/flow/pkg/flow/snapshot"
	"github.com/communityflow/flow/pkg/flow/store"
)

// WriteRaw saves a scraped batch under dir as
// <prefix>_<date>_<run id>.json and returns the file path together with
// the generated run ID. The run ID doubles as the archive key when the
// batch is also recorded in the refresh store.
func WriteRaw(dir, prefix string, articles []snapshot.Article) (path, runID string, err error) {
	runID = store.NewRunID()
	name := fmt.Sprintf("%s_%s_%s.json", prefix, time.Now().Format("2006-01-02"), runID)
	path = filepath.Join(dir, name)
	if err := snapshot.Save(path, articles); err != nil {
		return "", "", err
	}
	return path, runID, nil
}
