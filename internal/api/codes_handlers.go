package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/listenupapp/programguide/internal/codesearch"
	domainerrors "github.com/listenupapp/programguide/internal/errors"
	"github.com/listenupapp/programguide/pkg/programguide/codes"
)

// CodeTableInput selects a code table.
type CodeTableInput struct {
	Dimension string `path:"dimension" enum:"area,service,genre" doc:"Code table"`
}

// CodeTableOutput lists a table's entries.
type CodeTableOutput struct {
	Body struct {
		Dimension  string           `json:"dimension"`
		Entries    []codes.Entry    `json:"entries"`
		Categories []codes.Category `json:"categories,omitempty" doc:"Genre major categories, genre table only"`
	}
}

// ResolveCodeInput resolves one identifier.
type ResolveCodeInput struct {
	Dimension string `path:"dimension" enum:"area,service,genre" doc:"Code table"`
	Input     string `path:"input" doc:"Code, display name or alias"`
}

// ResolveCodeOutput is the resolved entry.
type ResolveCodeOutput struct {
	Body struct {
		Dimension string      `json:"dimension"`
		Input     string      `json:"input"`
		Entry     codes.Entry `json:"entry"`
	}
}

// SearchCodesInput is a free-text code search.
type SearchCodesInput struct {
	Query     string `query:"q" required:"true" minLength:"1" doc:"Search text"`
	Dimension string `query:"dimension" doc:"Restrict to area, service or genre"`
	Limit     int    `query:"limit" minimum:"0" maximum:"100" doc:"Maximum hits (default 10)"`
}

// SearchCodesOutput holds ranked hits.
type SearchCodesOutput struct {
	Body struct {
		Query string           `json:"query"`
		Hits  []codesearch.Hit `json:"hits"`
	}
}

func (s *Server) registerCodeRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "searchCodes",
		Method:      http.MethodGet,
		Path:        "/api/codes/search",
		Summary:     "Search code tables",
		Description: "Fuzzy search over codes, names and aliases.",
		Tags:        []string{"Codes"},
	}, s.handleSearchCodes)

	huma.Register(s.api, huma.Operation{
		OperationID: "listCodes",
		Method:      http.MethodGet,
		Path:        "/api/codes/{dimension}",
		Summary:     "List a code table",
		Tags:        []string{"Codes"},
	}, s.handleListCodes)

	huma.Register(s.api, huma.Operation{
		OperationID: "resolveCode",
		Method:      http.MethodGet,
		Path:        "/api/codes/{dimension}/{input}",
		Summary:     "Resolve a code, name or alias",
		Tags:        []string{"Codes"},
	}, s.handleResolveCode)
}

func (s *Server) handleListCodes(_ context.Context, in *CodeTableInput) (*CodeTableOutput, error) {
	table, err := lookupTable(in.Dimension)
	if err != nil {
		return nil, err
	}

	out := &CodeTableOutput{}
	out.Body.Dimension = in.Dimension
	out.Body.Entries = table.Entries()
	if table.Dimension() == codes.DimensionGenre {
		out.Body.Categories = codes.GenreCategories()
	}
	return out, nil
}

func (s *Server) handleResolveCode(_ context.Context, in *ResolveCodeInput) (*ResolveCodeOutput, error) {
	table, err := lookupTable(in.Dimension)
	if err != nil {
		return nil, err
	}

	entry, err := table.Detect(in.Input)
	if err != nil {
		return nil, fromDomain(domainerrors.NotFoundf("no %s matches %q", in.Dimension, in.Input).
			WithDetails(map[string]string{"dimension": in.Dimension, "input": in.Input}))
	}

	out := &ResolveCodeOutput{}
	out.Body.Dimension = in.Dimension
	out.Body.Input = in.Input
	out.Body.Entry = entry
	return out, nil
}

func (s *Server) handleSearchCodes(ctx context.Context, in *SearchCodesInput) (*SearchCodesOutput, error) {
	if in.Dimension != "" {
		if _, ok := codes.TableFor(codes.Dimension(in.Dimension)); !ok {
			return nil, fromDomain(domainerrors.Validationf(
				"dimension must be area, service or genre, got %q", in.Dimension))
		}
	}

	hits, err := s.search.Search(ctx, codesearch.Params{
		Query:     in.Query,
		Dimension: codes.Dimension(in.Dimension),
		Limit:     in.Limit,
	})
	if err != nil {
		s.logger.Error("code search failed", "query", in.Query, "error", err)
		return nil, fromDomain(domainerrors.Internal("code search failed"))
	}
	if hits == nil {
		hits = []codesearch.Hit{}
	}

	out := &SearchCodesOutput{}
	out.Body.Query = in.Query
	out.Body.Hits = hits
	return out, nil
}

func lookupTable(dimension string) (*codes.Table, error) {
	table, ok := codes.TableFor(codes.Dimension(dimension))
	if !ok {
		return nil, fromDomain(domainerrors.NotFoundf("no code table %q", dimension))
	}
	return table, nil
}
