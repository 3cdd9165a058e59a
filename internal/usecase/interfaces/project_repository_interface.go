package interfaces

//go:generate mockgen -source=project_repository_interface.go -destination=mocks/mock_project_repository.go -package=mock_interfaces

import (
	"context"

	"salesops/internal/domain/entities"
)

// IProjectRepository abstracts persistence for Project. A project is unique
// per sale_id.

type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	GetBySaleID(ctx context.Context, saleID string) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
	Update(ctx context.Context, p entities.Project, expectedVersion int64) (entities.Project, error)
}
