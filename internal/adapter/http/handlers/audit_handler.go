package handlers

import (
	"net/http"
	"strconv"

	response "salesops/internal/adapter/http/dto/response"
	"salesops/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AuditHandler serves the admin audit trail.
type AuditHandler struct {
	usecase usecase.IAuditUseCase
}

func NewAuditHandler(uc usecase.IAuditUseCase) *AuditHandler {
	return &AuditHandler{usecase: uc}
}

// ListAuditLogs godoc
// @Summary      List audit logs
// @Description  Newest first. Invalid or missing paging parameters fall back to page 1 and 20 entries.
// @Tags         admin
// @Produce      json
// @Param        page   query     int  false  "Page, 1-based"
// @Param        limit  query     int  false  "Entries per page (max 100)"
// @Success      200    {object}  response.Envelope
// @Failure      403    {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /audit-logs [get]
func (h *AuditHandler) ListAuditLogs(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	result, err := h.usecase.ListAuditLogs(c.Request.Context(), actor, page, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.AuditPage(result))
}
