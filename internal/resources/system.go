package resources

import (
	"context"

	"github.com/agentdesk/agentdesk/pkg/pagination"
	"github.com/google/uuid"
)

// System defines the interface for resource storage, retrieval, and
// extraction operations.
type System interface {
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Resource], error)
	Find(ctx context.Context, id uuid.UUID) (*Resource, error)
	Upload(ctx context.Context, cmd UploadCommand) (*Resource, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Resource, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
