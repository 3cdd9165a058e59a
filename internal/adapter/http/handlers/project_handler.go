package handlers

import (
	"net/http"

	request "salesops/internal/adapter/http/dto/request"
	response "salesops/internal/adapter/http/dto/response"
	"salesops/internal/domain/entities"
	"salesops/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles the account-manager endpoints.

type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

// ListProjects godoc
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Security     Bearer
// @Router       /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	projects, err := h.usecase.ListProjects(c.Request.Context(), actor)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.List(response.FromProjects(projects)))
}

// GetProject godoc
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	project, err := h.usecase.GetProject(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromProject(project)))
}

// UpdateChecklist godoc
// @Summary      Set one project checklist step
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Project ID"
// @Param        payload  body      request.ChecklistStepRequest  true  "Step"
// @Success      200      {object}  response.Envelope
// @Failure      400      {object}  pkg.HTTPError
// @Failure      403      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /projects/{id}/checklist [put]
func (h *ProjectHandler) UpdateChecklist(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.ChecklistStepRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	project, err := h.usecase.UpdateChecklistStep(c.Request.Context(), actor, c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromProject(project)))
}

// CreateQCRequest godoc
// @Summary      Open a QC request
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id       path      string                   true  "Project ID"
// @Param        payload  body      request.QCRequestCreate  true  "Details"
// @Success      201      {object}  response.Envelope
// @Failure      403      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /projects/{id}/qc [post]
func (h *ProjectHandler) CreateQCRequest(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.QCRequestCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	project, err := h.usecase.CreateQCRequest(c.Request.Context(), actor, c.Param("id"), payload.Details)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.OK(response.FromProject(project)))
}

// ResolveQCRequest godoc
// @Summary      Approve or send back a QC request
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Project ID"
// @Param        qcId     path      string                    true  "QC request ID"
// @Param        payload  body      request.QCRequestResolve  true  "Verdict"
// @Success      200      {object}  response.Envelope
// @Failure      400      {object}  pkg.HTTPError
// @Failure      403      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /projects/{id}/qc/{qcId} [put]
func (h *ProjectHandler) ResolveQCRequest(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.QCRequestResolve
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	project, err := h.usecase.ResolveQCRequest(c.Request.Context(), actor, c.Param("id"), c.Param("qcId"),
		entities.QCStatus(payload.Status), payload.Feedback)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromProject(project)))
}

// ToggleStatus godoc
// @Summary      Pause, resume or complete a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Project ID"
// @Param        payload  body      request.ProjectStatusRequest  true  "Status"
// @Success      200      {object}  response.Envelope
// @Failure      400      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /projects/{id}/status [put]
func (h *ProjectHandler) ToggleStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.ProjectStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	project, err := h.usecase.ToggleStatus(c.Request.Context(), actor, c.Param("id"), entities.ProjectStatus(payload.Status))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromProject(project)))
}
