package handlers

import (
	"context"
	"net/http"

	"github.com/transit-catalog/subway/internal/api"
	"github.com/transit-catalog/subway/internal/logger"
)

// Clearer removes all stations and lines
type Clearer interface {
	Clear(ctx context.Context) error
}

// HandleReset godoc
//
//	@Summary		Reset the catalog
//	@Description	Deletes every line and station and restarts id allocation.
//	@Description	Only available in dev and test environments.
//	@Tags			Admin
//	@Success		204	"Catalog cleared"
//	@Failure		500	{object}	api.ErrorResponse	"Internal error"
//	@Router			/admin/reset [post]
func HandleReset(store Clearer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Clear(r.Context()); err != nil {
			api.RespondWithErrorResponse(w, r, api.WrapInternalError(err, "failed to reset catalog"))
			return
		}

		logger.ContextRequestLogger(r.Context()).Info("Catalog reset")
		api.RespondWithStatusCodeOnly(w, http.StatusNoContent)
	}
}
