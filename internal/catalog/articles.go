package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

// Article is an education entry. Body is markdown, rendered by the TUI.
type Article struct {
	ID       int64  `yaml:"id"`
	Title    string `yaml:"title"`
	Category string `yaml:"category"`
	ReadTime string `yaml:"read_time"`
	Summary  string `yaml:"summary"`
	Body     string `yaml:"body"`
}

//go:embed articles.yaml
var articlesYAML []byte

var (
	articlesOnce sync.Once
	articles     []Article
	articlesErr  error
)

// Articles parses the embedded catalog once and returns it in display order.
func Articles() ([]Article, error) {
	articlesOnce.Do(func() {
		var doc struct {
			Articles []Article `yaml:"articles"`
		}
		if err := yaml.Unmarshal(articlesYAML, &doc); err != nil {
			articlesErr = fmt.Errorf("failed to parse article catalog: %w", err)
			return
		}
		articles = doc.Articles
	})
	return articles, articlesErr
}

// ArticleByID looks up an article in the embedded catalog.
func ArticleByID(id int64) (Article, bool) {
	list, err := Articles()
	if err != nil {
		return Article{}, false
	}
	for _, a := range list {
		if a.ID == id {
			return a, true
		}
	}
	return Article{}, false
}

// DefaultBookmarks are the article ids bookmarked on first launch.
var DefaultBookmarks = []int64{1, 2}
