package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"parkgate/internal/parking/service"
	httputil "parkgate/pkg/http"
	"parkgate/pkg/logger"
	"parkgate/pkg/model"
)

type ParkingHandler struct {
	service service.ParkingService
	log     *logger.Logger
}

func NewParkingHandler(svc service.ParkingService, log *logger.Logger) *ParkingHandler {
	return &ParkingHandler{
		service: svc,
		log:     log,
	}
}

// AvailableSlots reports the lot status from the occupancy counter.
func (h *ParkingHandler) AvailableSlots(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	status := h.service.Status(r.Context())
	httputil.WriteSuccess(w, status)
}

func (h *ParkingHandler) CheckIn(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	result, err := h.service.CheckIn(r.Context(), &req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteCreated(w, result)
}

func (h *ParkingHandler) CheckOut(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.CheckOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	receipt, err := h.service.CheckOut(r.Context(), &req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, receipt)
}

// ListTickets returns the active tickets as a bare array, empty slice
// when the lot is empty.
func (h *ParkingHandler) ListTickets(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	snapshots := h.service.ListActive(r.Context())
	if snapshots == nil {
		snapshots = []model.TicketSnapshot{}
	}
	httputil.WriteSuccess(w, snapshots)
}

// SlotDecrement is the sensor webhook reporting a vehicle left without
// checking out. It only touches the counter, never the ticket set.
func (h *ParkingHandler) SlotDecrement(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	adjustment := h.service.AdjustOccupancy(r.Context(), -1)
	httputil.WriteSuccess(w, adjustment)
}

// SlotIncrement is the sensor webhook reporting a vehicle entered
// without a ticket.
func (h *ParkingHandler) SlotIncrement(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	adjustment := h.service.AdjustOccupancy(r.Context(), 1)
	httputil.WriteSuccess(w, adjustment)
}

func (h *ParkingHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/", h.Dashboard)
	router.GET("/api/slots/available", h.AvailableSlots)
	router.POST("/api/entries", h.CheckIn)
	router.POST("/api/exits", h.CheckOut)
	router.GET("/api/tickets", h.ListTickets)
	router.GET("/api/webhooks/slot-decrement", h.SlotDecrement)
	router.GET("/api/webhooks/slot-increment", h.SlotIncrement)
}
