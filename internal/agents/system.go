package agents

import (
	"context"

	"github.com/agentdesk/agentdesk/pkg/pagination"
	"github.com/google/uuid"
)

// System defines the interface for agent storage and retrieval operations.
type System interface {
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Agent], error)
	Find(ctx context.Context, id uuid.UUID) (*Agent, error)
	Create(ctx context.Context, cmd Command) (*Agent, error)
	Update(ctx context.Context, id uuid.UUID, cmd Command) (*Agent, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
