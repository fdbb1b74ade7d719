package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Send a message through the contact form. The message is stored and two notification emails are dispatched. This is a public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactMessage  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var msg domain.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	outcome := h.contactUC.Submit(c.Request.Context(), &msg)
	switch outcome.Kind {
	case domain.OutcomeValidationFailure:
		response.ValidationError(c, "Please correct the highlighted fields.", outcome.FieldErrors)
	case domain.OutcomeDispatchFailure:
		response.Error(c, http.StatusInternalServerError, outcome.Reason, nil)
	default:
		response.Success(c, http.StatusOK, "Your message has been sent successfully!", nil)
	}
}
