package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/pthm/publint/internal/parser"
	"github.com/pthm/publint/internal/quality"
	"github.com/pthm/publint/internal/validate"
)

// loadArticle reads an article file and lifts its YAML frontmatter
// into metadata. The returned Content is the raw file; the engines
// strip frontmatter themselves.
func loadArticle(path string) (validate.Article, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return validate.Article{}, fmt.Errorf("reading article: %w", err)
	}

	article := validate.Article{Content: string(data)}

	fm, _ := parser.SplitFrontmatter(data)
	if fm == nil {
		return article, nil
	}

	article.Title = stringField(fm, "title")
	article.MetaDescription = stringField(fm, "description", "metaDescription")
	article.FeaturedImage = stringField(fm, "featuredImage", "image")
	article.PrimaryKeyword = stringField(fm, "primaryKeyword", "keyword")
	article.SecondaryKeywords = stringSliceField(fm, "keywords", "secondaryKeywords")
	article.UpdatedAt = timeField(fm, "updated", "date")

	return article, nil
}

// withArticleKeywords fills keyword settings the config file left
// empty from the article's own frontmatter.
func withArticleKeywords(cfg quality.Config, article validate.Article) quality.Config {
	if cfg.PrimaryKeyword == "" {
		cfg.PrimaryKeyword = article.PrimaryKeyword
	}
	if len(cfg.SecondaryKeywords) == 0 {
		cfg.SecondaryKeywords = article.SecondaryKeywords
	}
	return cfg
}

func stringField(fm map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if v, ok := fm[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func stringSliceField(fm map[string]interface{}, keys ...string) []string {
	for _, key := range keys {
		raw, ok := fm[key].([]interface{})
		if !ok {
			continue
		}
		var out []string
		for _, item := range raw {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

func timeField(fm map[string]interface{}, keys ...string) time.Time {
	for _, key := range keys {
		switch v := fm[key].(type) {
		case time.Time:
			return v
		case string:
			for _, layout := range []string{time.RFC3339, "2006-01-02"} {
				if t, err := time.Parse(layout, v); err == nil {
					return t
				}
			}
		}
	}
	return time.Time{}
}
