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

// ReviewHandler handles peer review HTTP requests
type ReviewHandler struct {
	reviewService service.ReviewService
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// Create godoc
// @Summary Leave a review
// @Tags Reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateReviewRequest true "Create review request"
// @Success 201 {object} domain.Review
// @Failure 400 {object} response.ErrorBody
// @Router /api/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	actorID, _ := middleware.GetUserID(c)

	review, err := h.reviewService.Create(c.Request.Context(), req, actorID, middleware.GetUserRole(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, review)
}

// List godoc
// @Summary List all reviews
// @Tags Reviews
// @Produce json
// @Success 200 {array} domain.Review
// @Router /api/reviews [get]
func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.reviewService.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, reviews)
}

// Get godoc
// @Summary Get a review by id
// @Tags Reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} domain.Review
// @Failure 404 {object} response.ErrorBody
// @Router /api/reviews/{id} [get]
func (h *ReviewHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, "invalid review id")
		return
	}

	review, err := h.reviewService.Get(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, review)
}

// Update godoc
// @Summary Update a review
// @Tags Reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body dto.UpdateReviewRequest true "Update review request"
// @Success 200 {object} domain.Review
// @Failure 404 {object} response.ErrorBody
// @Router /api/reviews/{id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, "invalid review id")
		return
	}

	actorID, _ := middleware.GetUserID(c)

	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	review, err := h.reviewService.Update(c.Request.Context(), id, req, actorID, middleware.GetUserRole(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, review)
}

// Delete godoc
// @Summary Delete a review
// @Tags Reviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 200 {object} response.DeleteBody
// @Failure 404 {object} response.ErrorBody
// @Router /api/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, "invalid review id")
		return
	}

	actorID, _ := middleware.GetUserID(c)

	if err := h.reviewService.Delete(c.Request.Context(), id, actorID, middleware.GetUserRole(c)); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, response.DeleteBody{Message: "Review deleted"})
}
