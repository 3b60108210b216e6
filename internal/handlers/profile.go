package handlers

import (
	"net/http"

	"portfolio_backend/internal/models"

	"github.com/gin-gonic/gin"
)

type profileRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Headline string `json:"headline,omitempty"`
	Bio      string `json:"bio,omitempty"`
	Email    string `json:"email,omitempty"`
	Location string `json:"location,omitempty"`
}

// @Summary      Get portfolio profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  models.Profile
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/profile [get]
// @Security     BearerAuth
func (h *Handler) getProfile(c *gin.Context) {
	p, err := h.services.Profile.Get(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, err, "profile_get_failed")
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary      Update portfolio profile
// @Description  ADMIN only.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body      profileRequest  true  "Profile payload"
// @Success      200   {object}  models.Profile
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/profile [put]
// @Security     BearerAuth
func (h *Handler) updateProfile(c *gin.Context) {
	var req profileRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	p, err := h.services.Profile.Update(c.Request.Context(), currentUsername(c), models.Profile{
		FullName: req.FullName,
		Headline: req.Headline,
		Bio:      req.Bio,
		Email:    req.Email,
		Location: req.Location,
	})
	if err != nil {
		h.respondServiceError(c, err, "profile_update_failed")
		return
	}
	c.JSON(http.StatusOK, p)
}
