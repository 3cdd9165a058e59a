package handlers

import (
	"net/http"

	request "salesops/internal/adapter/http/dto/request"
	response "salesops/internal/adapter/http/dto/response"
	"salesops/internal/usecase"

	"github.com/gin-gonic/gin"
)

const headerIdempotencyKey = "Idempotency-Key"

// SaleHandler handles the sales pipeline endpoints.

type SaleHandler struct {
	usecase usecase.ISaleUseCase
}

func NewSaleHandler(uc usecase.ISaleUseCase) *SaleHandler {
	return &SaleHandler{usecase: uc}
}

// CreateProspect godoc
// @Summary      Create a prospect
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CreateSaleRequest  true  "Prospect"
// @Success      201      {object}  response.Envelope
// @Failure      400      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /sales [post]
func (h *SaleHandler) CreateProspect(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.CreateSaleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	sale, err := h.usecase.CreateProspect(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.OK(response.FromSale(sale)))
}

// ListSales godoc
// @Summary      List sales (executives see their own)
// @Tags         sales
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Security     Bearer
// @Router       /sales [get]
func (h *SaleHandler) ListSales(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	sales, err := h.usecase.ListSales(c.Request.Context(), actor)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.List(response.FromSales(sales)))
}

// GetSale godoc
// @Summary      Get a sale
// @Tags         sales
// @Produce      json
// @Param        id   path      string  true  "Sale ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /sales/{id} [get]
func (h *SaleHandler) GetSale(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	sale, err := h.usecase.GetSale(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromSale(sale)))
}

// UpdateSale godoc
// @Summary      Edit descriptive fields of a prospect or sale
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "Sale ID"
// @Param        payload  body      request.UpdateSaleRequest  true  "Fields"
// @Success      200      {object}  response.Envelope
// @Failure      403      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /sales/{id} [put]
func (h *SaleHandler) UpdateSale(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.UpdateSaleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	sale, err := h.usecase.UpdateSale(c.Request.Context(), actor, c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromSale(sale)))
}

// ConvertToSale godoc
// @Summary      Convert a prospect into a sale with its payment
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Sale ID"
// @Param        payload  body      request.ConvertSaleRequest  true  "Payment"
// @Success      200      {object}  response.Envelope
// @Failure      400      {object}  pkg.HTTPError
// @Failure      403      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /sales/{id}/convert [put]
func (h *SaleHandler) ConvertToSale(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.ConvertSaleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	sale, err := h.usecase.ConvertToSale(c.Request.Context(), actor, c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromSale(sale)))
}

// AddPayment godoc
// @Summary      Record an incremental payment
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        id               path      string                     true   "Sale ID"
// @Param        Idempotency-Key  header    string                     false  "Retry guard"
// @Param        payload          body      request.AddPaymentRequest  true   "Payment"
// @Success      200              {object}  response.Envelope
// @Failure      400              {object}  pkg.HTTPError
// @Failure      409              {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /sales/{id}/add-payment [put]
func (h *SaleHandler) AddPayment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.AddPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	in := payload.ToInput(c.GetHeader(headerIdempotencyKey))
	sale, err := h.usecase.AddPayment(c.Request.Context(), actor, c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromSale(sale)))
}

// PushToBackend godoc
// @Summary      Hand the sale over to the backend team
// @Description  Locks the sale and creates its project. All four checklist items must be true.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        id       path      string                   true  "Sale ID"
// @Param        payload  body      request.PushSaleRequest  true  "Checklist"
// @Success      200      {object}  response.Envelope
// @Failure      400      {object}  pkg.HTTPError
// @Failure      403      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /sales/{id}/push [put]
func (h *SaleHandler) PushToBackend(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.PushSaleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	sale, project, err := h.usecase.PushToBackend(c.Request.Context(), actor, c.Param("id"), payload.ResolveChecklist())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(response.HandoverResponse{
		Sale:    response.FromSale(sale),
		Project: response.FromProject(project),
	}))
}

// RevertToProspect godoc
// @Summary      Revert an unlocked sale to prospect
// @Tags         sales
// @Produce      json
// @Param        id   path      string  true  "Sale ID"
// @Success      200  {object}  response.Envelope
// @Failure      403  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /sales/{id}/revert [put]
func (h *SaleHandler) RevertToProspect(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	sale, err := h.usecase.RevertToProspect(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromSale(sale)))
}

// UpdateChecklistProgress godoc
// @Summary      Save handover checklist progress without pushing
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        id       path      string                            true  "Sale ID"
// @Param        payload  body      request.ChecklistProgressRequest  true  "Partial checklist"
// @Success      200      {object}  response.Envelope
// @Failure      403      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /sales/{id}/checklist [put]
func (h *SaleHandler) UpdateChecklistProgress(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.ChecklistProgressRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	sale, err := h.usecase.UpdateChecklistProgress(c.Request.Context(), actor, c.Param("id"), payload.ToPatch())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromSale(sale)))
}
