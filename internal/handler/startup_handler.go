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

// StartupHandler handles startup profile HTTP requests
type StartupHandler struct {
	startupService service.StartupService
}

// NewStartupHandler creates a new StartupHandler
func NewStartupHandler(startupService service.StartupService) *StartupHandler {
	return &StartupHandler{startupService: startupService}
}

// Create godoc
// @Summary Create a startup profile
// @Tags Startups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStartupRequest true "Create startup request"
// @Success 201 {object} domain.Startup
// @Failure 400 {object} response.ErrorBody
// @Router /api/startups [post]
func (h *StartupHandler) Create(c *gin.Context) {
	var req dto.CreateStartupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	startup, err := h.startupService.Create(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, startup)
}

// List godoc
// @Summary List all startup profiles
// @Tags Startups
// @Produce json
// @Success 200 {array} domain.Startup
// @Router /api/startups [get]
func (h *StartupHandler) List(c *gin.Context) {
	startups, err := h.startupService.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, startups)
}

// Get godoc
// @Summary Get a startup profile by id
// @Tags Startups
// @Produce json
// @Param id path string true "Startup ID"
// @Success 200 {object} domain.Startup
// @Failure 404 {object} response.ErrorBody
// @Router /api/startups/{id} [get]
func (h *StartupHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, "invalid startup id")
		return
	}

	startup, err := h.startupService.Get(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, startup)
}

// Update godoc
// @Summary Update a startup profile
// @Tags Startups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Startup ID"
// @Param request body dto.UpdateStartupRequest true "Update startup request"
// @Success 200 {object} domain.Startup
// @Failure 404 {object} response.ErrorBody
// @Router /api/startups/{id} [put]
func (h *StartupHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, "invalid startup id")
		return
	}

	actorID, _ := middleware.GetUserID(c)

	var req dto.UpdateStartupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	startup, err := h.startupService.Update(c.Request.Context(), id, req, actorID, middleware.GetUserRole(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, startup)
}

// Delete godoc
// @Summary Delete a startup profile
// @Tags Startups
// @Produce json
// @Security BearerAuth
// @Param id path string true "Startup ID"
// @Success 200 {object} response.DeleteBody
// @Failure 404 {object} response.ErrorBody
// @Router /api/startups/{id} [delete]
func (h *StartupHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, "invalid startup id")
		return
	}

	actorID, _ := middleware.GetUserID(c)

	if err := h.startupService.Delete(c.Request.Context(), id, actorID, middleware.GetUserRole(c)); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, response.DeleteBody{Message: "Startup deleted"})
}
