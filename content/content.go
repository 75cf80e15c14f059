// Package content manages the markdown study guides served alongside the
// tracker. Guides live as markdown files with a YAML frontmatter block in the
// content directory; the library renders them to HTML up front and serves the
// rendered form.
package content

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// wordsPerMinute is the reading speed used for the reading-time estimate.
const wordsPerMinute = 200

// Guide is one rendered study guide.
type Guide struct {
	Slug        string
	Title       string
	Summary     string
	Tags        []string
	Order       int
	ReadingTime int // minutes
	HTML        template.HTML
	UpdatedAt   time.Time
}

type frontmatter struct {
	Title   string   `yaml:"title"`
	Summary string   `yaml:"summary"`
	Tags    []string `yaml:"tags"`
	Order   int      `yaml:"order"`
}

// Library holds the loaded guides and answers lookups. Reload swaps the whole
// set atomically, so readers never see a half-loaded state.
type Library struct {
	dir      string
	logger   *zap.Logger
	markdown goldmark.Markdown

	mu     sync.RWMutex
	guides []*Guide
	bySlug map[string]*Guide
}

// NewLibrary loads all guides from dir. Files that fail to parse are skipped
// with a warning rather than failing the whole load.
func NewLibrary(dir string, logger *zap.Logger) (*Library, error) {
	library := &Library{
		dir:    dir,
		logger: logger,
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
	if err := library.Reload(); err != nil {
		return nil, err
	}
	return library, nil
}

// Reload re-reads every guide from the content directory.
func (library *Library) Reload() error {
	names, err := filepath.Glob(filepath.Join(library.dir, "*.md"))
	if err != nil {
		return fmt.Errorf("listing guides: %w", err)
	}

	guides := make([]*Guide, 0, len(names))
	bySlug := make(map[string]*Guide, len(names))
	for _, name := range names {
		guide, err := library.loadGuide(name)
		if err != nil {
			library.logger.Warn("skipping guide", zap.String("file", filepath.Base(name)), zap.Error(err))
			continue
		}
		guides = append(guides, guide)
		bySlug[guide.Slug] = guide
	}

	sort.Slice(guides, func(i, j int) bool {
		if guides[i].Order != guides[j].Order {
			return guides[i].Order < guides[j].Order
		}
		return guides[i].Title < guides[j].Title
	})

	library.mu.Lock()
	library.guides = guides
	library.bySlug = bySlug
	library.mu.Unlock()

	library.logger.Info("guides loaded", zap.Int("count", len(guides)))
	return nil
}

func (library *Library) loadGuide(name string) (*Guide, error) {
	raw, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading guide: %w", err)
	}
	info, err := os.Stat(name)
	if err != nil {
		return nil, fmt.Errorf("stating guide: %w", err)
	}

	meta, body, err := splitFrontmatter(raw)
	if err != nil {
		return nil, err
	}
	if meta.Title == "" {
		return nil, fmt.Errorf("guide %q has no title", filepath.Base(name))
	}

	var rendered bytes.Buffer
	if err := library.markdown.Convert(body, &rendered); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}

	return &Guide{
		Slug:        strings.TrimSuffix(filepath.Base(name), ".md"),
		Title:       meta.Title,
		Summary:     meta.Summary,
		Tags:        meta.Tags,
		Order:       meta.Order,
		ReadingTime: readingTime(body),
		HTML:        template.HTML(rendered.String()),
		UpdatedAt:   info.ModTime(),
	}, nil
}

// splitFrontmatter separates the leading YAML block, delimited by "---" lines,
// from the markdown body. A file without frontmatter is all body.
func splitFrontmatter(raw []byte) (frontmatter, []byte, error) {
	var meta frontmatter

	trimmed := bytes.TrimLeft(raw, "\ufeff")
	if !bytes.HasPrefix(trimmed, []byte("---\n")) && !bytes.HasPrefix(trimmed, []byte("---\r\n")) {
		return meta, trimmed, nil
	}

	rest := trimmed[bytes.IndexByte(trimmed, '\n')+1:]
	end := bytes.Index(rest, []byte("\n---"))
	if end < 0 {
		return meta, nil, fmt.Errorf("unterminated frontmatter")
	}

	if err := yaml.Unmarshal(rest[:end], &meta); err != nil {
		return meta, nil, fmt.Errorf("parsing frontmatter: %w", err)
	}

	body := rest[end+len("\n---"):]
	if idx := bytes.IndexByte(body, '\n'); idx >= 0 {
		body = body[idx+1:]
	}
	return meta, body, nil
}

func readingTime(body []byte) int {
	words := len(strings.Fields(string(body)))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// Guides returns all guides in display order.
func (library *Library) Guides() []*Guide {
	library.mu.RLock()
	defer library.mu.RUnlock()
	return library.guides
}

// Guide returns a single guide by slug.
func (library *Library) Guide(slug string) (*Guide, bool) {
	library.mu.RLock()
	defer library.mu.RUnlock()
	guide, ok := library.bySlug[slug]
	return guide, ok
}

// Tags returns the distinct tags across all guides, sorted.
func (library *Library) Tags() []string {
	library.mu.RLock()
	defer library.mu.RUnlock()

	seen := make(map[string]bool)
	var tags []string
	for _, guide := range library.guides {
		for _, tag := range guide.Tags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	sort.Strings(tags)
	return tags
}

// Filter returns the guides carrying the given tag, in display order. An
// empty tag returns everything.
func (library *Library) Filter(tag string) []*Guide {
	if tag == "" {
		return library.Guides()
	}

	library.mu.RLock()
	defer library.mu.RUnlock()

	var matched []*Guide
	for _, guide := range library.guides {
		for _, candidate := range guide.Tags {
			if candidate == tag {
				matched = append(matched, guide)
				break
			}
		}
	}
	return matched
}

// Page slices guides into the requested 1-based page and reports the total
// page count. Out-of-range pages return an empty slice.
func Page(guides []*Guide, page int, perPage int) ([]*Guide, int) {
	if perPage < 1 {
		perPage = 1
	}
	totalPages := (len(guides) + perPage - 1) / perPage
	if page < 1 || page > totalPages {
		return nil, totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if end > len(guides) {
		end = len(guides)
	}
	return guides[start:end], totalPages
}
