package handlers

import (
	"net/http"
	"strconv"

	"portfolio_backend/internal/dto"

	"github.com/gin-gonic/gin"
)

// projectRequest is the client payload for create/update. Owner and
// timestamps are never client-supplied.
type projectRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Technologies string `json:"technologies,omitempty"`
	Link         string `json:"link,omitempty"`
}

func (r projectRequest) toDTO() dto.Project {
	return dto.Project{
		Title:        r.Title,
		Description:  r.Description,
		Technologies: r.Technologies,
		Link:         r.Link,
	}
}

// parseIDParam reads the :id path segment; writes a 400 on garbage.
func (h *Handler) parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return 0, false
	}
	return id, true
}

// @Summary      List all projects
// @Tags         projects
// @Produce      json
// @Success      200  {array}   dto.Project
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/projects [get]
// @Security     BearerAuth
func (h *Handler) getAllProjects(c *gin.Context) {
	projects, err := h.services.Projects.GetAll(c.Request.Context(), currentUsername(c))
	if err != nil {
		h.respondServiceError(c, err, "projects_list_failed")
		return
	}
	c.JSON(http.StatusOK, projects)
}

// @Summary      List my projects
// @Tags         projects
// @Produce      json
// @Success      200  {array}   dto.Project
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/projects/my [get]
// @Security     BearerAuth
func (h *Handler) getMyProjects(c *gin.Context) {
	projects, err := h.services.Projects.GetMine(c.Request.Context(), currentUsername(c))
	if err != nil {
		h.respondServiceError(c, err, "projects_list_mine_failed")
		return
	}
	c.JSON(http.StatusOK, projects)
}

// @Summary      Get one project
// @Tags         projects
// @Produce      json
// @Param        id   path      int  true  "Project ID"
// @Success      200  {object}  dto.Project
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/projects/{id} [get]
// @Security     BearerAuth
func (h *Handler) getProjectByID(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}
	project, err := h.services.Projects.GetByID(c.Request.Context(), currentUsername(c), id)
	if err != nil {
		h.respondServiceError(c, err, "project_get_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, project)
}

// @Summary      Create project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        body  body      projectRequest  true  "Project payload"
// @Success      201   {object}  dto.Project
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/projects [post]
// @Security     BearerAuth
func (h *Handler) createProject(c *gin.Context) {
	var req projectRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	project, err := h.services.Projects.Create(c.Request.Context(), currentUsername(c), req.toDTO())
	if err != nil {
		h.respondServiceError(c, err, "project_create_failed")
		return
	}
	c.JSON(http.StatusCreated, project)
}

// @Summary      Update project
// @Description  Owner or ADMIN only. Overwrites title/description/technologies/link.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "Project ID"
// @Param        body  body      projectRequest  true  "Project payload"
// @Success      200   {object}  dto.Project
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/projects/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateProject(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}
	var req projectRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	project, err := h.services.Projects.Update(c.Request.Context(), currentUsername(c), id, req.toDTO())
	if err != nil {
		h.respondServiceError(c, err, "project_update_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, project)
}

// @Summary      Delete project
// @Description  Owner or ADMIN only.
// @Tags         projects
// @Produce      json
// @Param        id   path      int  true  "Project ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/projects/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteProject(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}
	if err := h.services.Projects.Delete(c.Request.Context(), currentUsername(c), id); err != nil {
		h.respondServiceError(c, err, "project_delete_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
