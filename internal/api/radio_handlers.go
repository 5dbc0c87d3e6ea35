package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// BroadcastEventInput selects a broadcast event by its full ID.
type BroadcastEventInput struct {
	ID string `path:"id" doc:"Broadcast event ID (service-area-program)"`
}

// ProgramEventInput selects a broadcast event by its parts.
type ProgramEventInput struct {
	ChannelInput
	ProgramID string `path:"programId" doc:"Program ID"`
}

func (s *Server) registerRadioRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "dateRadio",
		Method:      http.MethodGet,
		Path:        "/api/v3/radio/date/{area}/{service}/{date}",
		Summary:     "List radio programs by date",
		Tags:        []string{"Radio"},
	}, s.handleDateRadio)

	huma.Register(s.api, huma.Operation{
		OperationID: "genreRadio",
		Method:      http.MethodGet,
		Path:        "/api/v3/radio/genre/{area}/{service}/{genre}/{date}",
		Summary:     "List radio programs by genre",
		Tags:        []string{"Radio"},
	}, s.handleGenreRadio)

	huma.Register(s.api, huma.Operation{
		OperationID: "nowRadio",
		Method:      http.MethodGet,
		Path:        "/api/v3/radio/now/{area}/{service}",
		Summary:     "Get radio now playing",
		Tags:        []string{"Radio"},
	}, s.handleNowRadio)

	huma.Register(s.api, huma.Operation{
		OperationID: "broadcastEventRadio",
		Method:      http.MethodGet,
		Path:        "/api/v3/radio/events/{id}",
		Summary:     "Get a radio broadcast event",
		Tags:        []string{"Radio"},
	}, s.handleBroadcastEvent)

	huma.Register(s.api, huma.Operation{
		OperationID: "broadcastEventRadioByProgram",
		Method:      http.MethodGet,
		Path:        "/api/v3/radio/events/{area}/{service}/{programId}",
		Summary:     "Get a radio broadcast event by program",
		Description: "Builds the broadcast event ID from resolved service and area codes and the program ID.",
		Tags:        []string{"Radio"},
	}, s.handleBroadcastEventByProgram)
}

func (s *Server) handleDateRadio(ctx context.Context, in *DatedChannelInput) (*GuideOutput, error) {
	date, err := s.parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	body, err := s.radio.DateRadio(ctx, in.Area, in.Service, date)
	if err != nil {
		return nil, s.guideError("dateRadio", err)
	}
	return &GuideOutput{Body: body}, nil
}

func (s *Server) handleGenreRadio(ctx context.Context, in *GenreInput) (*GuideOutput, error) {
	date, err := s.parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	body, err := s.radio.GenreRadio(ctx, in.Area, in.Service, in.Genre, date)
	if err != nil {
		return nil, s.guideError("genreRadio", err)
	}
	return &GuideOutput{Body: body}, nil
}

func (s *Server) handleNowRadio(ctx context.Context, in *ChannelInput) (*GuideOutput, error) {
	body, err := s.radio.NowRadio(ctx, in.Area, in.Service)
	if err != nil {
		return nil, s.guideError("nowRadio", err)
	}
	return &GuideOutput{Body: body}, nil
}

func (s *Server) handleBroadcastEvent(ctx context.Context, in *BroadcastEventInput) (*GuideOutput, error) {
	body, err := s.radio.BroadcastEventRadio(ctx, in.ID)
	if err != nil {
		return nil, s.guideError("broadcastEventRadio", err)
	}
	return &GuideOutput{Body: body}, nil
}

func (s *Server) handleBroadcastEventByProgram(ctx context.Context, in *ProgramEventInput) (*GuideOutput, error) {
	body, err := s.radio.BroadcastEventRadioByProgram(ctx, in.Area, in.Service, in.ProgramID)
	if err != nil {
		return nil, s.guideError("broadcastEventRadioByProgram", err)
	}
	return &GuideOutput{Body: body}, nil
}
