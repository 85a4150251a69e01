package handlers

// stations.go implements the /stations endpoints

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/transit-catalog/subway/internal/api"
	"github.com/transit-catalog/subway/internal/logger"
	"github.com/transit-catalog/subway/internal/metrics"
	"github.com/transit-catalog/subway/internal/subway"
)

// StationHandler handles the /stations endpoints
type StationHandler struct {
	stations *subway.StationService
}

func NewStationHandler(stations *subway.StationService) *StationHandler {
	return &StationHandler{
		stations: stations,
	}
}

// HandleCreateStation godoc
//
//	@Summary	Create a station
//	@Tags		Stations
//	@Accept		json
//	@Produce	json
//	@Param		request	body		api.StationRequest	true	"Station details"
//	@Success	201		{object}	api.StationResponse	"Station created"
//	@Failure	400		{object}	api.ErrorResponse	"Invalid request"
//	@Failure	409		{object}	api.ErrorResponse	"Station name already in use"
//	@Failure	500		{object}	api.ErrorResponse	"Internal error"
//	@Router		/stations [post]
func (h *StationHandler) HandleCreateStation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.StationRequest
	if err := decodeJSON(r, &req); err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	station, err := h.stations.Create(ctx, req.Name)
	metrics.ObserveStationOperation("create", operationResult(err))
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	logger.ContextWithLogAttrs(ctx, slog.Int64("station_id", station.ID))

	w.Header().Set("Location", fmt.Sprintf("/stations/%d", station.ID))
	api.RespondWithJSONPayload(w, http.StatusCreated, api.StationToResponse(station))
}

// HandleListStations godoc
//
//	@Summary	List stations
//	@Tags		Stations
//	@Produce	json
//	@Success	200	{array}		api.StationResponse	"All stations, oldest first"
//	@Failure	500	{object}	api.ErrorResponse	"Internal error"
//	@Router		/stations [get]
func (h *StationHandler) HandleListStations(w http.ResponseWriter, r *http.Request) {
	stations, err := h.stations.List(r.Context())
	metrics.ObserveStationOperation("list", operationResult(err))
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	api.RespondWithJSONPayload(w, http.StatusOK, api.StationsToResponse(stations))
}

// HandleGetStation godoc
//
//	@Summary	Get a station
//	@Tags		Stations
//	@Produce	json
//	@Param		stationID	path		int					true	"Station ID"
//	@Success	200			{object}	api.StationResponse
//	@Failure	400			{object}	api.ErrorResponse	"Invalid station ID"
//	@Failure	404			{object}	api.ErrorResponse	"Station not found"
//	@Router		/stations/{stationID} [get]
func (h *StationHandler) HandleGetStation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "stationID")
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	station, err := h.stations.Get(r.Context(), id)
	metrics.ObserveStationOperation("get", operationResult(err))
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	api.RespondWithJSONPayload(w, http.StatusOK, api.StationToResponse(station))
}

// HandleDeleteStation godoc
//
//	@Summary		Delete a station
//	@Description	Stations that are a terminal of a line cannot be deleted.
//	@Tags			Stations
//	@Param			stationID	path	int	true	"Station ID"
//	@Success		204			"Station deleted"
//	@Failure		400			{object}	api.ErrorResponse	"Invalid station ID"
//	@Failure		404			{object}	api.ErrorResponse	"Station not found"
//	@Failure		409			{object}	api.ErrorResponse	"Station is used by a line"
//	@Router			/stations/{stationID} [delete]
func (h *StationHandler) HandleDeleteStation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "stationID")
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	err = h.stations.Delete(ctx, id)
	metrics.ObserveStationOperation("delete", operationResult(err))
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	logger.ContextWithLogAttrs(ctx, slog.Int64("station_id", id))

	api.RespondWithStatusCodeOnly(w, http.StatusNoContent)
}
