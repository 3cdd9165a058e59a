package routes

import (
	"salesops/internal/adapter/http/handlers"
	"salesops/internal/adapter/http/middleware"
	"salesops/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathSales  = "/sales"
	PathEvents = "/events"
)

var (
	salesTeam = []entities.Role{
		entities.RoleSalesExecutive,
		entities.RoleSalesManager,
		entities.RoleAdmin,
		entities.RoleSuperAdmin,
	}
	prospectCreators = []entities.Role{
		entities.RoleSalesExecutive,
		entities.RoleSalesManager,
		entities.RoleSuperAdmin,
	}
)

func addSalesRoutes(rg *gin.RouterGroup, h *handlers.SaleHandler) {
	sales := rg.Group(PathSales)
	{
		sales.GET("", middleware.RequireRoles(salesTeam...), h.ListSales)
		sales.POST("", middleware.RequireRoles(prospectCreators...), h.CreateProspect)
		sales.GET("/:id", middleware.RequireRoles(salesTeam...), h.GetSale)
		sales.PUT("/:id", middleware.RequireRoles(salesTeam...), h.UpdateSale)

		// Pipeline transitions.
		sales.PUT("/:id/convert", middleware.RequireRoles(salesTeam...), h.ConvertToSale)
		sales.PUT("/:id/add-payment", middleware.RequireRoles(salesTeam...), h.AddPayment)
		sales.PUT("/:id/push", middleware.RequireRoles(salesTeam...), h.PushToBackend)
		sales.PUT("/:id/revert", middleware.RequireRoles(salesTeam...), h.RevertToProspect)
		sales.PUT("/:id/checklist", middleware.RequireRoles(salesTeam...), h.UpdateChecklistProgress)
	}
}
