package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-backend/internal/domains/genre/model"
	"library-backend/internal/domains/genre/service"
	"library-backend/internal/shared/response"
)

type GenreHandler struct {
	service service.ServiceInterface
}

func NewGenreHandler(service service.ServiceInterface) *GenreHandler {
	return &GenreHandler{service: service}
}

func (h *GenreHandler) Create(c *gin.Context) {
	var req model.CreateGenreRequest
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
		response.InternalServerError(c, "failed to create genre")
		return
	}

	response.Success(c, http.StatusCreated, created)
}

func (h *GenreHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid genre id")
		return
	}

	g, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrGenreNotFound) {
			response.NotFound(c, "genre not found")
			return
		}
		response.InternalServerError(c, "failed to get genre")
		return
	}

	response.Success(c, http.StatusOK, g)
}

func (h *GenreHandler) GetAll(c *gin.Context) {
	genres, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to list genres")
		return
	}

	response.Success(c, http.StatusOK, genres)
}
