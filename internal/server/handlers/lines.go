package handlers

// lines.go implements the /lines endpoints

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/transit-catalog/subway/internal/api"
	"github.com/transit-catalog/subway/internal/logger"
	"github.com/transit-catalog/subway/internal/metrics"
	"github.com/transit-catalog/subway/internal/subway"
)

// LineHandler handles the /lines endpoints
type LineHandler struct {
	lines *subway.LineService
}

// NewLineHandler creates a new handler for the line endpoints
func NewLineHandler(lines *subway.LineService) *LineHandler {
	return &LineHandler{
		lines: lines,
	}
}

// HandleCreateLine godoc
//
//	@Summary		Create a line
//	@Description	Registers a new line between two existing stations.
//	@Description
//	@Description	The up and down stations must be different and the distance must be positive.
//	@Description	Numeric fields may be sent as JSON numbers or numeric strings.
//	@Tags			Lines
//	@Accept			json
//	@Produce		json
//	@Param			request	body		api.LineRequest		true	"Line details"
//	@Success		201		{object}	api.LineResponse	"Line created"
//	@Header			201		{string}	Location			"URI of the new line"
//	@Failure		400		{object}	api.ErrorResponse	"Invalid request"
//	@Failure		404		{object}	api.ErrorResponse	"Station not found"
//	@Failure		409		{object}	api.ErrorResponse	"Line name already in use"
//	@Failure		500		{object}	api.ErrorResponse	"Internal error"
//	@Router			/lines [post]
func (h *LineHandler) HandleCreateLine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LineRequest
	if err := decodeJSON(r, &req); err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	view, err := h.lines.Create(ctx, req.ToNewLine())
	metrics.ObserveLineOperation("create", operationResult(err))
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	logger.ContextWithLogAttrs(ctx, slog.Int64("line_id", view.ID))
	logger.ContextRequestLogger(ctx).Info("Line created",
		slog.Int64("line_id", view.ID),
		slog.String("name", view.Name),
	)

	w.Header().Set("Location", fmt.Sprintf("/lines/%d", view.ID))
	api.RespondWithJSONPayload(w, http.StatusCreated, api.LineToResponse(view))
}

// HandleListLines godoc
//
//	@Summary	List lines
//	@Tags		Lines
//	@Produce	json
//	@Success	200	{array}		api.LineResponse	"All lines, oldest first"
//	@Failure	500	{object}	api.ErrorResponse	"Internal error"
//	@Router		/lines [get]
func (h *LineHandler) HandleListLines(w http.ResponseWriter, r *http.Request) {
	views, err := h.lines.List(r.Context())
	metrics.ObserveLineOperation("list", operationResult(err))
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	api.RespondWithJSONPayload(w, http.StatusOK, api.LinesToResponse(views))
}

// HandleGetLine godoc
//
//	@Summary	Get a line
//	@Tags		Lines
//	@Produce	json
//	@Param		lineID	path		int					true	"Line ID"
//	@Success	200		{object}	api.LineResponse	"Line with its stations"
//	@Failure	400		{object}	api.ErrorResponse	"Invalid line ID"
//	@Failure	404		{object}	api.ErrorResponse	"Line not found"
//	@Failure	500		{object}	api.ErrorResponse	"Internal error"
//	@Router		/lines/{lineID} [get]
func (h *LineHandler) HandleGetLine(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "lineID")
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	view, err := h.lines.Get(r.Context(), id)
	metrics.ObserveLineOperation("get", operationResult(err))
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	api.RespondWithJSONPayload(w, http.StatusOK, api.LineToResponse(view))
}

// HandleUpdateLine godoc
//
//	@Summary		Update a line
//	@Description	Changes the name and color of a line, and optionally its distance.
//	@Description	The stations of a line cannot be changed.
//	@Tags			Lines
//	@Accept			json
//	@Produce		json
//	@Param			lineID	path		int						true	"Line ID"
//	@Param			request	body		api.LineUpdateRequest	true	"New line attributes"
//	@Success		200		{object}	api.LineResponse		"Updated line"
//	@Failure		400		{object}	api.ErrorResponse		"Invalid request"
//	@Failure		404		{object}	api.ErrorResponse		"Line not found"
//	@Failure		409		{object}	api.ErrorResponse		"Line name already in use"
//	@Failure		500		{object}	api.ErrorResponse		"Internal error"
//	@Router			/lines/{lineID} [patch]
func (h *LineHandler) HandleUpdateLine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "lineID")
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	var req api.LineUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	view, err := h.lines.Update(ctx, id, req.ToLineUpdate())
	metrics.ObserveLineOperation("update", operationResult(err))
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	logger.ContextWithLogAttrs(ctx, slog.Int64("line_id", id))

	api.RespondWithJSONPayload(w, http.StatusOK, api.LineToResponse(view))
}

// HandleDeleteLine godoc
//
//	@Summary	Delete a line
//	@Tags		Lines
//	@Param		lineID	path	int	true	"Line ID"
//	@Success	204		"Line deleted"
//	@Failure	400		{object}	api.ErrorResponse	"Invalid line ID"
//	@Failure	404		{object}	api.ErrorResponse	"Line not found"
//	@Failure	500		{object}	api.ErrorResponse	"Internal error"
//	@Router		/lines/{lineID} [delete]
func (h *LineHandler) HandleDeleteLine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "lineID")
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	err = h.lines.Delete(ctx, id)
	metrics.ObserveLineOperation("delete", operationResult(err))
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	logger.ContextWithLogAttrs(ctx, slog.Int64("line_id", id))

	api.RespondWithStatusCodeOnly(w, http.StatusNoContent)
}
