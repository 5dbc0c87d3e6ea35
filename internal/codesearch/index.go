// Package codesearch is a full-text index over the area, service and genre
// code tables, for discovering codes by partial or misspelled names.
package codesearch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/lang/cjk"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/listenupapp/programguide/pkg/programguide/codes"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// Index is an in-memory bleve index of code table entries. It is safe for
// concurrent use.
type Index struct {
	index  bleve.Index
	tables map[codes.Dimension]*codes.Table
	logger *slog.Logger
}

// document is the indexed form of a codes.Entry.
type document struct {
	Dimension string   `json:"dimension"`
	Code      string   `json:"code"`
	Name      string   `json:"name"`
	Aliases   []string `json:"aliases"`
	Major     string   `json:"major,omitempty"`
}

// New builds an index over the given tables.
func New(logger *slog.Logger, tables ...*codes.Table) (*Index, error) {
	idx, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}

	byDim := make(map[codes.Dimension]*codes.Table, len(tables))
	batch := idx.NewBatch()
	count := 0
	for _, t := range tables {
		byDim[t.Dimension()] = t
		for _, e := range t.Entries() {
			doc := document{
				Dimension: string(t.Dimension()),
				Code:      e.Code,
				Name:      e.Name,
				Aliases:   e.Aliases,
				Major:     e.Major,
			}
			if err := batch.Index(docID(t.Dimension(), e.Code), doc); err != nil {
				idx.Close()
				return nil, fmt.Errorf("index %s %s: %w", t.Dimension(), e.Code, err)
			}
			count++
		}
	}
	if err := idx.Batch(batch); err != nil {
		idx.Close()
		return nil, fmt.Errorf("apply batch: %w", err)
	}

	if logger != nil {
		logger.Debug("code search index built", "documents", count)
	}

	return &Index{index: idx, tables: byDim, logger: logger}, nil
}

// NewDefault indexes the built-in area, service and genre tables.
func NewDefault(logger *slog.Logger) (*Index, error) {
	return New(logger, codes.Areas, codes.Services, codes.Genres)
}

// Close releases the index.
func (i *Index) Close() error {
	return i.index.Close()
}

// Params configures a search.
type Params struct {
	Query string
	// Dimension restricts results to one table. Empty searches all.
	Dimension codes.Dimension
	Limit     int
}

// Hit is one matching entry.
type Hit struct {
	Dimension codes.Dimension `json:"dimension"`
	Entry     codes.Entry     `json:"entry"`
	Score     float64         `json:"score"`
}

// Search finds entries whose code, name or alias matches q. Aliases also
// match with one typo.
func (i *Index) Search(ctx context.Context, p Params) ([]Hit, error) {
	text := strings.TrimSpace(p.Query)
	if text == "" {
		return nil, nil
	}

	limit := p.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)

	req := bleve.NewSearchRequestOptions(buildQuery(text, p.Dimension), limit, 0, false)
	res, err := i.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", text, err)
	}

	hits := make([]Hit, 0, len(res.Hits))
	for _, h := range res.Hits {
		dim, code, ok := splitDocID(h.ID)
		if !ok {
			continue
		}
		table, ok := i.tables[dim]
		if !ok {
			continue
		}
		e, ok := table.FindByCode(code)
		if !ok {
			continue
		}
		hits = append(hits, Hit{Dimension: dim, Entry: e, Score: h.Score})
	}
	return hits, nil
}

func buildQuery(text string, dim codes.Dimension) query.Query {
	code := bleve.NewTermQuery(text)
	code.SetField("code")
	code.SetBoost(5)

	name := bleve.NewMatchQuery(text)
	name.SetField("name")
	name.Analyzer = cjk.AnalyzerName
	name.SetBoost(2)

	alias := bleve.NewMatchQuery(text)
	alias.SetField("aliases")
	alias.SetBoost(2)

	fuzzy := bleve.NewMatchQuery(text)
	fuzzy.SetField("aliases")
	fuzzy.SetFuzziness(1)

	var q query.Query = bleve.NewDisjunctionQuery(code, name, alias, fuzzy)
	if dim != "" {
		d := bleve.NewTermQuery(string(dim))
		d.SetField("dimension")
		q = bleve.NewConjunctionQuery(d, q)
	}
	return q
}

func docID(dim codes.Dimension, code string) string {
	return string(dim) + ":" + code
}

func splitDocID(id string) (codes.Dimension, string, bool) {
	dim, code, ok := strings.Cut(id, ":")
	return codes.Dimension(dim), code, ok
}
