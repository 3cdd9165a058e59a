package routes

import (
	"salesops/internal/adapter/http/handlers"
	"salesops/internal/adapter/http/middleware"
	"salesops/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const PathProjects = "/projects"

var (
	projectViewers = []entities.Role{
		entities.RoleAccountManager,
		entities.RoleSalesManager,
		entities.RoleBackendManager,
		entities.RoleAdmin,
		entities.RoleSuperAdmin,
	}
	projectEditors = []entities.Role{
		entities.RoleAccountManager,
		entities.RoleAdmin,
		entities.RoleSuperAdmin,
	}
	qcReviewers = []entities.Role{
		entities.RoleQC,
		entities.RoleAdmin,
		entities.RoleSuperAdmin,
	}
)

func addProjectRoutes(rg *gin.RouterGroup, h *handlers.ProjectHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.GET("", middleware.RequireRoles(projectViewers...), h.ListProjects)
		projects.GET("/:id", middleware.RequireRoles(projectViewers...), h.GetProject)
		projects.PUT("/:id/checklist", middleware.RequireRoles(projectEditors...), h.UpdateChecklist)
		projects.POST("/:id/qc", middleware.RequireRoles(projectEditors...), h.CreateQCRequest)
		projects.PUT("/:id/qc/:qcId", middleware.RequireRoles(qcReviewers...), h.ResolveQCRequest)
		projects.PUT("/:id/status", middleware.RequireRoles(projectViewers...), h.ToggleStatus)
	}
}
