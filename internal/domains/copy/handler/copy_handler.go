package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-backend/internal/domains/copy/model"
	"library-backend/internal/domains/copy/service"
	"library-backend/internal/shared/response"
)

// AllLoansPath is where a successful renewal redirects: the listing of
// every copy on loan.
const AllLoansPath = "/api/v1/loans"

type CopyHandler struct {
	service service.ServiceInterface
}

func NewCopyHandler(service service.ServiceInterface) *CopyHandler {
	return &CopyHandler{service: service}
}

// Create handles POST /copies (librarian only)
func (h *CopyHandler) Create(c *gin.Context) {
	var req model.CreateCopyRequest
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
		response.InternalServerError(c, "failed to create copy")
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// GetByID handles GET /copies/:id
func (h *CopyHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid copy id")
		return
	}

	cp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrCopyNotFound) {
			response.NotFound(c, "copy not found")
			return
		}
		response.InternalServerError(c, "failed to get copy")
		return
	}

	response.Success(c, http.StatusOK, cp)
}

// PrepareRenewal handles GET /copies/:id/renew (librarian only).
// Display mode: returns the copy and the suggested date, no mutation.
func (h *CopyHandler) PrepareRenewal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid copy id")
		return
	}

	proposal, err := h.service.PrepareRenewal(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrCopyNotFound) {
			response.NotFound(c, "copy not found")
			return
		}
		response.InternalServerError(c, "failed to prepare renewal")
		return
	}

	response.Success(c, http.StatusOK, proposal)
}

// Renew handles POST /copies/:id/renew (librarian only). Commit mode:
// a valid date updates the due date and redirects to the all-loans
// listing; a rejected date redisplays with the copy, the submitted
// date, and the exact rule message.
func (h *CopyHandler) Renew(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid copy id")
		return
	}

	var req model.RenewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.UnprocessableEntity(c, "validation failed", err.Error())
		return
	}

	requestedDate, err := req.ParsedDate()
	if err != nil {
		response.BadRequest(c, "due_date must be formatted YYYY-MM-DD")
		return
	}

	_, err = h.service.Renew(c.Request.Context(), id, requestedDate)
	if err != nil {
		var rejected *model.RenewalRejectedError
		if errors.As(err, &rejected) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"success":  false,
				"copy":     rejected.Copy,
				"due_date": rejected.SubmittedDate.Format(model.RenewalDateLayout),
				"error": gin.H{
					"code":    "INVALID_DATE",
					"message": rejected.Err.Error(),
				},
			})
			return
		}
		if errors.Is(err, model.ErrCopyNotFound) {
			response.NotFound(c, "copy not found")
			return
		}
		response.InternalServerError(c, "failed to renew copy")
		return
	}

	c.Redirect(http.StatusSeeOther, AllLoansPath)
}

// ListMyLoans handles GET /loans/mine
func (h *CopyHandler) ListMyLoans(c *gin.Context) {
	userID, ok := c.MustGet("userID").(uuid.UUID)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	page := parsePage(c)
	copies, total, err := h.service.ListLoansForBorrower(c.Request.Context(), userID, page)
	if err != nil {
		response.InternalServerError(c, "failed to list loans")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, copies, &response.Meta{
		Page:  page,
		Limit: service.LoanPageSize,
		Total: int(total),
	})
}

// ListAllLoans handles GET /loans (librarian only)
func (h *CopyHandler) ListAllLoans(c *gin.Context) {
	page := parsePage(c)
	copies, total, err := h.service.ListAllLoans(c.Request.Context(), page)
	if err != nil {
		response.InternalServerError(c, "failed to list loans")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, copies, &response.Meta{
		Page:  page,
		Limit: service.LoanPageSize,
		Total: int(total),
	})
}

func parsePage(c *gin.Context) int {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	return page
}
