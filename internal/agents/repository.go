package agents

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/agentdesk/agentdesk/pkg/pagination"
	"github.com/agentdesk/agentdesk/pkg/query"
	"github.com/agentdesk/agentdesk/pkg/repository"
	"github.com/google/uuid"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
	defaults   Defaults
}

// New creates an agents repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config, defaults Defaults) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "agents"),
		pagination: pagination,
		defaults:   defaults,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Agent], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Name", "Description")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count agents: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	agents, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanAgent)
	if err != nil {
		return nil, fmt.Errorf("query agents: %w", err)
	}

	result := pagination.NewPageResult(agents, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Agent, error) {
	q, args := query.NewBuilder(projection).BuildSingle("Id", id)

	a, err := repository.QueryOne(ctx, r.db, q, args, scanAgent)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &a, nil
}

func (r *repo) Create(ctx context.Context, cmd Command) (*Agent, error) {
	model, temperature, maxTokens := cmd.resolve(r.defaults)
	if err := validate(cmd.Name, cmd.SystemPrompt, model, temperature, maxTokens); err != nil {
		return nil, err
	}

	q := `
		INSERT INTO agents (name, description, icon, category, color, system_prompt, model, temperature, max_tokens)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, name, description, icon, category, color, system_prompt, model, temperature, max_tokens, created_at, updated_at`

	a, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Agent, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			cmd.Name, cmd.Description, cmd.Icon, cmd.Category, cmd.Color,
			cmd.SystemPrompt, model, temperature, maxTokens,
		}, scanAgent)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("agent created", "id", a.ID, "name", a.Name, "model", a.Model)
	return &a, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd Command) (*Agent, error) {
	model, temperature, maxTokens := cmd.resolve(r.defaults)
	if err := validate(cmd.Name, cmd.SystemPrompt, model, temperature, maxTokens); err != nil {
		return nil, err
	}

	q := `
		UPDATE agents
		SET name = $1, description = $2, icon = $3, category = $4, color = $5,
			system_prompt = $6, model = $7, temperature = $8, max_tokens = $9,
			updated_at = NOW()
		WHERE id = $10
		RETURNING id, name, description, icon, category, color, system_prompt, model, temperature, max_tokens, created_at, updated_at`

	a, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Agent, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			cmd.Name, cmd.Description, cmd.Icon, cmd.Category, cmd.Color,
			cmd.SystemPrompt, model, temperature, maxTokens, id,
		}, scanAgent)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("agent updated", "id", a.ID, "name", a.Name)
	return &a, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		err := repository.ExecExpectOne(ctx, tx, "DELETE FROM agents WHERE id = $1", id)
		return struct{}{}, err
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("agent deleted", "id", id)
	return nil
}
