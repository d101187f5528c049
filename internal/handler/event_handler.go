package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"skill-match-api/internal/dto"
	"skill-match-api/internal/middleware"
	"skill-match-api/internal/response"
	"skill-match-api/internal/service"
)

// EventHandler handles event HTTP requests
type EventHandler struct {
	eventService service.EventService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// Create godoc
// @Summary Create an event
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEventRequest true "Create event request"
// @Success 201 {object} domain.Event
// @Failure 400 {object} response.ErrorBody
// @Router /api/events [post]
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	actorID, _ := middleware.GetUserID(c)

	event, err := h.eventService.Create(c.Request.Context(), req, actorID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, event)
}

// List godoc
// @Summary List all events
// @Tags Events
// @Produce json
// @Success 200 {array} domain.Event
// @Router /api/events [get]
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, events)
}

// Get godoc
// @Summary Get an event by id
// @Tags Events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} domain.Event
// @Failure 404 {object} response.ErrorBody
// @Router /api/events/{id} [get]
func (h *EventHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, "invalid event id")
		return
	}

	event, err := h.eventService.Get(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, event)
}

// Update godoc
// @Summary Update an event
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body dto.UpdateEventRequest true "Update event request"
// @Success 200 {object} domain.Event
// @Failure 404 {object} response.ErrorBody
// @Router /api/events/{id} [put]
func (h *EventHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, "invalid event id")
		return
	}

	actorID, _ := middleware.GetUserID(c)

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	event, err := h.eventService.Update(c.Request.Context(), id, req, actorID, middleware.GetUserRole(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, event)
}

// Delete godoc
// @Summary Delete an event
// @Tags Events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} response.DeleteBody
// @Failure 404 {object} response.ErrorBody
// @Router /api/events/{id} [delete]
func (h *EventHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, "invalid event id")
		return
	}

	actorID, _ := middleware.GetUserID(c)

	if err := h.eventService.Delete(c.Request.Context(), id, actorID, middleware.GetUserRole(c)); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, response.DeleteBody{Message: "Event deleted"})
}
