package providers

import (
	"github.com/samber/do/v2"

	"github.com/listenupapp/programguide/internal/codesearch"
	"github.com/listenupapp/programguide/internal/logger"
)

// CodeSearchHandle wraps the code search index with shutdown capability.
type CodeSearchHandle struct {
	*codesearch.Index
}

// Shutdown implements do.Shutdownable.
func (h *CodeSearchHandle) Shutdown() error {
	return h.Close()
}

// ProvideCodeSearch provides an in-memory index over the built-in code
// tables.
func ProvideCodeSearch(i do.Injector) (*CodeSearchHandle, error) {
	log := do.MustInvoke[*logger.Logger](i)

	index, err := codesearch.NewDefault(log.Logger)
	if err != nil {
		return nil, err
	}

	return &CodeSearchHandle{Index: index}, nil
}
