package v1

import (
	"errors"
	"net/http"
	"strconv"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type AdminHandler struct {
	adminUC domain.AdminUsecase
}

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

// NewAdminHandler registers the admin inbox routes. Login is public (rate
// limited by the router); everything else sits behind the auth middleware.
func NewAdminHandler(login *gin.RouterGroup, protected *gin.RouterGroup, adminUC domain.AdminUsecase) {
	handler := &AdminHandler{
		adminUC: adminUC,
	}

	login.POST("/admin/login", handler.Login)

	protected.GET("/admin/submissions", handler.ListSubmissions)
	protected.PATCH("/admin/submissions/:id/read", handler.MarkSubmissionRead)
	protected.GET("/admin/stats", handler.Stats)
}

// Login godoc
// @Summary      Admin Login
// @Description  Exchange the admin password for a short-lived session token.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        credentials  body      loginRequest  true  "Admin Password"
// @Success      200          {object}  response.Response
// @Failure      401          {object}  response.Response
// @Router       /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Password is required"))
		return
	}

	token, err := h.adminUC.Login(c.Request.Context(), req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "Invalid credentials", nil)
			return
		}
		c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, "Login successful", gin.H{"token": token})
}

// ListSubmissions godoc
// @Summary      List Contact Submissions
// @Description  Paginated submission inbox, newest first.
// @Tags         admin
// @Produce      json
// @Param        limit   query     int  false  "Page size (max 100)"
// @Param        offset  query     int  false  "Offset"
// @Success      200     {object}  response.Response{data=[]domain.Submission}
// @Security     BearerAuth
// @Router       /admin/submissions [get]
func (h *AdminHandler) ListSubmissions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	subs, total, err := h.adminUC.ListSubmissions(c.Request.Context(), limit, offset)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, "OK", gin.H{
		"submissions": subs,
		"total":       total,
	})
}

// MarkSubmissionRead godoc
// @Summary      Mark Submission Read
// @Description  Flips a submission from unread to read. The submission itself is never modified or deleted.
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Submission ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/submissions/{id}/read [patch]
func (h *AdminHandler) MarkSubmissionRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid submission ID"))
		return
	}

	if err := h.adminUC.MarkSubmissionRead(c.Request.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.Error(apperror.NotFound("Submission not found"))
			return
		}
		c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, "Submission marked as read", nil)
}

// Stats godoc
// @Summary      Inbox Statistics
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.InboxStats}
// @Security     BearerAuth
// @Router       /admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminUC.Stats(c.Request.Context())
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, "OK", stats)
}
