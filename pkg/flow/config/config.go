package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/communityflow/flow/pkg/flow/internalerr"
)

// Stopwords is the keyword-extraction stopword list configuration.
type Stopwords struct {
	Terms []string `yaml:"terms"`
}

// LoadStopwords loads a stopword list from a YAML file.
func LoadStopwords(path string) (*Stopwords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sw Stopwords
	if err := yaml.Unmarshal(data, &sw); err != nil {
		return nil, err
	}

	return &sw, nil
}

// ThemeRule is one entry of the theme rule table.
type ThemeRule struct {
	ID       int      `yaml:"id"`
	Keywords []string `yaml:"keywords"`
}

// ThemeRules is the theme labeling configuration. Rule order in the file
// fixes evaluation order.
type ThemeRules struct {
	Rules []ThemeRule `yaml:"rules"`
}

// LoadThemeRules loads a theme rule table from a YAML file.
func LoadThemeRules(path string) (*ThemeRules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tr ThemeRules
	if err := yaml.Unmarshal(data, &tr); err != nil {
		return nil, err
	}
	if len(tr.Rules) == 0 {
		return nil, fmt.Errorf("%w: theme rules file %s has no rules", internalerr.ErrInvalidInput, path)
	}

	return &tr, nil
}

// Cluster holds topic clustering parameters.
type Cluster struct {
	Clusters      int   `yaml:"clusters"`
	MinDocFreq    int   `yaml:"min_doc_freq"`
	Seed          int64 `yaml:"seed"`
	MaxIterations int   `yaml:"max_iterations"`
}

// Server holds serving process settings.
type Server struct {
	Addr         string `yaml:"addr"`
	SnapshotPath string `yaml:"snapshot_path"`
	ArchivePath  string `yaml:"archive_path"`
}

// App is the full configuration file for the serving and batch commands.
type App struct {
	StopwordsPath string  `yaml:"stopwords_path"`
	ThemesPath    string  `yaml:"themes_path"`
	TopKeywords   int     `yaml:"top_keywords"`
	Cluster       Cluster `yaml:"cluster"`
	Server        Server  `yaml:"server"`
}

// LoadApp loads the application configuration from a YAML file.
func LoadApp(path string) (*App, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var app App
	if err := yaml.Unmarshal(data, &app); err != nil {
		return nil, err
	}

	return &app, nil
}
