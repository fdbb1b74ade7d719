package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type PortfolioHandler struct {
	portfolioUC domain.PortfolioUsecase
}

// NewPortfolioHandler registers the site content routes (public)
func NewPortfolioHandler(public *gin.RouterGroup, portfolioUC domain.PortfolioUsecase) {
	handler := &PortfolioHandler{
		portfolioUC: portfolioUC,
	}

	content := public.Group("/portfolio")
	content.GET("/profile", handler.GetProfile)
	content.GET("/skills", handler.ListSkills)
	content.GET("/projects", handler.ListProjects)
	content.GET("/experience", handler.ListExperience)
}

// GetProfile godoc
// @Summary      Owner Profile
// @Tags         portfolio
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Profile}
// @Router       /portfolio/profile [get]
func (h *PortfolioHandler) GetProfile(c *gin.Context) {
	response.Success(c, http.StatusOK, "OK", h.portfolioUC.GetProfile(c.Request.Context()))
}

// ListSkills godoc
// @Summary      Skill List
// @Tags         portfolio
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Skill}
// @Router       /portfolio/skills [get]
func (h *PortfolioHandler) ListSkills(c *gin.Context) {
	response.Success(c, http.StatusOK, "OK", h.portfolioUC.ListSkills(c.Request.Context()))
}

// ListProjects godoc
// @Summary      Project Gallery
// @Tags         portfolio
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Project}
// @Router       /portfolio/projects [get]
func (h *PortfolioHandler) ListProjects(c *gin.Context) {
	response.Success(c, http.StatusOK, "OK", h.portfolioUC.ListProjects(c.Request.Context()))
}

// ListExperience godoc
// @Summary      Experience Timeline
// @Tags         portfolio
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Experience}
// @Router       /portfolio/experience [get]
func (h *PortfolioHandler) ListExperience(c *gin.Context) {
	response.Success(c, http.StatusOK, "OK", h.portfolioUC.ListExperience(c.Request.Context()))
}
