package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	domainerrors "github.com/listenupapp/programguide/internal/errors"
	"github.com/listenupapp/programguide/pkg/programguide"
)

// GuideOutput wraps the upstream payload unchanged.
type GuideOutput struct {
	Body any
}

// ChannelInput selects an area and a service.
type ChannelInput struct {
	Area    string `path:"area" doc:"Area code, name or alias (e.g. 130, 東京, Tokyo)"`
	Service string `path:"service" doc:"Service code, name or alias (e.g. g1, NHK FM)"`
}

// DatedChannelInput selects an area, a service and a day.
type DatedChannelInput struct {
	ChannelInput
	Date string `path:"date" doc:"YYYY-MM-DD, today, tomorrow or yesterday (Japan time)"`
}

// GenreInput selects an area, a service, a genre and a day.
type GenreInput struct {
	DatedChannelInput
	Genre string `path:"genre" doc:"Four-digit genre code, name or alias (e.g. 0101)"`
}

// ProgramInput selects one program on a channel.
type ProgramInput struct {
	ChannelInput
	ID string `path:"id" doc:"Program ID"`
}

func (s *Server) registerGuideRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listPrograms",
		Method:      http.MethodGet,
		Path:        "/api/v1/list/{area}/{service}/{date}",
		Summary:     "List programs",
		Description: "Returns the day's schedule for a channel.",
		Tags:        []string{"Guide"},
	}, s.handleListPrograms)

	huma.Register(s.api, huma.Operation{
		OperationID: "listByGenre",
		Method:      http.MethodGet,
		Path:        "/api/v1/genre/{area}/{service}/{genre}/{date}",
		Summary:     "List programs by genre",
		Description: "Returns the day's programs of one genre on a channel.",
		Tags:        []string{"Guide"},
	}, s.handleListByGenre)

	huma.Register(s.api, huma.Operation{
		OperationID: "programInfo",
		Method:      http.MethodGet,
		Path:        "/api/v1/info/{area}/{service}/{id}",
		Summary:     "Get program details",
		Tags:        []string{"Guide"},
	}, s.handleProgramInfo)

	huma.Register(s.api, huma.Operation{
		OperationID: "nowPlaying",
		Method:      http.MethodGet,
		Path:        "/api/v1/now/{area}/{service}",
		Summary:     "Get now playing",
		Description: "Returns the previous, present and following programs on a channel.",
		Tags:        []string{"Guide"},
	}, s.handleNowPlaying)
}

func (s *Server) handleListPrograms(ctx context.Context, in *DatedChannelInput) (*GuideOutput, error) {
	date, err := s.parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	body, err := s.guide.ListPrograms(ctx, in.Area, in.Service, date)
	if err != nil {
		return nil, s.guideError("listPrograms", err)
	}
	return &GuideOutput{Body: body}, nil
}

func (s *Server) handleListByGenre(ctx context.Context, in *GenreInput) (*GuideOutput, error) {
	date, err := s.parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	body, err := s.guide.ListByGenre(ctx, in.Area, in.Service, in.Genre, date)
	if err != nil {
		return nil, s.guideError("listByGenre", err)
	}
	return &GuideOutput{Body: body}, nil
}

func (s *Server) handleProgramInfo(ctx context.Context, in *ProgramInput) (*GuideOutput, error) {
	body, err := s.guide.ProgramInfo(ctx, in.Area, in.Service, in.ID)
	if err != nil {
		return nil, s.guideError("programInfo", err)
	}
	return &GuideOutput{Body: body}, nil
}

func (s *Server) handleNowPlaying(ctx context.Context, in *ChannelInput) (*GuideOutput, error) {
	body, err := s.guide.NowPlaying(ctx, in.Area, in.Service)
	if err != nil {
		return nil, s.guideError("nowPlaying", err)
	}
	return &GuideOutput{Body: body}, nil
}

// parseDate accepts the same date words as the CLI, evaluated in Japan time.
func (s *Server) parseDate(raw string) (time.Time, error) {
	date, err := programguide.ParseDate(raw, s.now())
	if err != nil {
		return time.Time{}, fromDomain(domainerrors.ValidationWithDetails(err.Error(), map[string]string{
			"date": raw,
		}))
	}
	return date, nil
}
