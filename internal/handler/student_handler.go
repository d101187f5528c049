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

// StudentHandler handles student profile HTTP requests
type StudentHandler struct {
	studentService service.StudentService
}

// NewStudentHandler creates a new StudentHandler
func NewStudentHandler(studentService service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// Create godoc
// @Summary Create a student profile
// @Tags Students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Create student request"
// @Success 201 {object} domain.Student
// @Failure 400 {object} response.ErrorBody
// @Router /api/students [post]
func (h *StudentHandler) Create(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	student, err := h.studentService.Create(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, student)
}

// List godoc
// @Summary List all student profiles
// @Tags Students
// @Produce json
// @Success 200 {array} domain.Student
// @Router /api/students [get]
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.studentService.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, students)
}

// Get godoc
// @Summary Get a student profile by id
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} domain.Student
// @Failure 404 {object} response.ErrorBody
// @Router /api/students/{id} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, "invalid student id")
		return
	}

	student, err := h.studentService.Get(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, student)
}

// Update godoc
// @Summary Update a student profile
// @Tags Students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Update student request"
// @Success 200 {object} domain.Student
// @Failure 404 {object} response.ErrorBody
// @Router /api/students/{id} [put]
func (h *StudentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, "invalid student id")
		return
	}

	actorID, _ := middleware.GetUserID(c)

	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	student, err := h.studentService.Update(c.Request.Context(), id, req, actorID, middleware.GetUserRole(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, student)
}

// Delete godoc
// @Summary Delete a student profile
// @Tags Students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} response.DeleteBody
// @Failure 404 {object} response.ErrorBody
// @Router /api/students/{id} [delete]
func (h *StudentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, "invalid student id")
		return
	}

	actorID, _ := middleware.GetUserID(c)

	if err := h.studentService.Delete(c.Request.Context(), id, actorID, middleware.GetUserRole(c)); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, response.DeleteBody{Message: "Student deleted"})
}
