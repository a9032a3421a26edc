package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-backend/internal/domains/language/model"
	"library-backend/internal/domains/language/service"
	"library-backend/internal/shared/response"
)

type LanguageHandler struct {
	service service.ServiceInterface
}

func NewLanguageHandler(service service.ServiceInterface) *LanguageHandler {
	return &LanguageHandler{service: service}
}

func (h *LanguageHandler) Create(c *gin.Context) {
	var req model.CreateLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.UnprocessableEntity(c, "validation failed", err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalServerError(c, "failed to create language")
		return
	}

	response.Success(c, http.StatusCreated, created)
}

func (h *LanguageHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid language id")
		return
	}

	l, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrLanguageNotFound) {
			response.NotFound(c, "language not found")
			return
		}
		response.InternalServerError(c, "failed to get language")
		return
	}

	response.Success(c, http.StatusOK, l)
}

func (h *LanguageHandler) GetAll(c *gin.Context) {
	languages, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to list languages")
		return
	}

	response.Success(c, http.StatusOK, languages)
}
