package api

import (
	"net/http"

	"github.com/listenupapp/programguide/internal/http/response"
	"github.com/listenupapp/programguide/pkg/programguide/codes"
)

// handleHealthCheck reports liveness and the size of each code table. It
// never calls upstream.
func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]any{
		"status": "healthy",
		"code_tables": map[string]int{
			string(codes.DimensionArea):    codes.Areas.Len(),
			string(codes.DimensionService): codes.Services.Len(),
			string(codes.DimensionGenre):   codes.Genres.Len(),
		},
	}, s.logger)
}
