package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"skill-match-api/internal/dto"
	"skill-match-api/internal/response"
	"skill-match-api/internal/service"
)

// ApplicationHandler handles application HTTP requests
type ApplicationHandler struct {
	appService service.ApplicationService
}

// NewApplicationHandler creates a new ApplicationHandler
func NewApplicationHandler(appService service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{appService: appService}
}

// Create godoc
// @Summary Submit an application
// @Tags Applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateApplicationRequest true "Create application request"
// @Success 201 {object} domain.Application
// @Failure 400 {object} response.ErrorBody
// @Router /api/applications [post]
func (h *ApplicationHandler) Create(c *gin.Context) {
	var req dto.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	app, err := h.appService.Create(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, app)
}

// List godoc
// @Summary List all applications
// @Tags Applications
// @Produce json
// @Success 200 {array} domain.Application
// @Router /api/applications [get]
func (h *ApplicationHandler) List(c *gin.Context) {
	apps, err := h.appService.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, apps)
}

// Get godoc
// @Summary Get an application by id
// @Tags Applications
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} domain.Application
// @Failure 404 {object} response.ErrorBody
// @Router /api/applications/{id} [get]
func (h *ApplicationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, "invalid application id")
		return
	}

	app, err := h.appService.Get(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, app)
}

// Update godoc
// @Summary Update an application (typically its status)
// @Tags Applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param request body dto.UpdateApplicationRequest true "Update application request"
// @Success 200 {object} domain.Application
// @Failure 404 {object} response.ErrorBody
// @Router /api/applications/{id} [put]
func (h *ApplicationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, "invalid application id")
		return
	}

	var req dto.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	app, err := h.appService.Update(c.Request.Context(), id, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, app)
}

// Delete godoc
// @Summary Delete an application
// @Tags Applications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Success 200 {object} response.DeleteBody
// @Failure 404 {object} response.ErrorBody
// @Router /api/applications/{id} [delete]
func (h *ApplicationHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, "invalid application id")
		return
	}

	if err := h.appService.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, response.DeleteBody{Message: "Application deleted"})
}
