package routes

import (
	"salesops/internal/adapter/http/handlers"
	"salesops/internal/adapter/http/middleware"
	"salesops/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const PathAuditLogs = "/audit-logs"

var auditReaders = []entities.Role{
	entities.RoleAdmin,
	entities.RoleSuperAdmin,
}

func addAuditRoutes(rg *gin.RouterGroup, h *handlers.AuditHandler) {
	rg.GET(PathAuditLogs, middleware.RequireRoles(auditReaders...), h.ListAuditLogs)
}
