package resources

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/agentdesk/agentdesk/internal/extract"
	"github.com/agentdesk/agentdesk/internal/storage"
	"github.com/agentdesk/agentdesk/pkg/pagination"
	"github.com/agentdesk/agentdesk/pkg/query"
	"github.com/agentdesk/agentdesk/pkg/repository"
	"github.com/google/uuid"
)

type repo struct {
	db            *sql.DB
	logger        *slog.Logger
	pagination    pagination.Config
	storage       storage.System
	extractor     extract.System
	maxUploadSize int64
}

// New creates a resources repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config, store storage.System, extractor extract.System, maxUploadSize int64) System {
	return &repo{
		db:            db,
		logger:        logger.With("system", "resources"),
		pagination:    pagination,
		storage:       store,
		extractor:     extractor,
		maxUploadSize: maxUploadSize,
	}
}

const selectColumns = `id, title, description, filename, storage_key, content_type, format, size_bytes, status, extracted_text, page_count, created_at, updated_at`

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Resource], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Title", "Description")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count resources: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanResource)
	if err != nil {
		return nil, fmt.Errorf("query resources: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Resource, error) {
	q, args := query.NewBuilder(projection).BuildSingle("Id", id)

	res, err := repository.QueryOne(ctx, r.db, q, args, scanResource)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &res, nil
}

func (r *repo) Upload(ctx context.Context, cmd UploadCommand) (*Resource, error) {
	if err := r.checkSize(int64(len(cmd.Data))); err != nil {
		return nil, err
	}
	if len(cmd.Data) == 0 {
		return nil, fmt.Errorf("%w: empty upload", ErrInvalidFile)
	}

	title := strings.TrimSpace(cmd.Title)
	if title == "" {
		title = cmd.Filename
	}

	id := uuid.New()
	key := storageKey(id, cmd.Filename)
	format := extract.DetectFormat(cmd.Filename)
	status, text := r.extractText(cmd.Data, format)
	pageCount := countPages(cmd.Data, format)

	// The file lands on disk before the row exists. Keys derive from the
	// freshly generated id, so a failed insert can never leave a file
	// reachable by a future record.
	if err := r.storage.Store(ctx, key, cmd.Data); err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	q := `
		INSERT INTO resources (id, title, description, filename, storage_key, content_type, format, size_bytes, status, extracted_text, page_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + selectColumns

	res, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Resource, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			id, title, cmd.Description, cmd.Filename, key, cmd.ContentType,
			format, int64(len(cmd.Data)), status, text, pageCount,
		}, scanResource)
	})

	if err != nil {
		if delErr := r.storage.Delete(ctx, key); delErr != nil {
			r.logger.Error("failed to remove file after insert failure", "key", key, "error", delErr)
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("resource uploaded", "id", res.ID, "filename", res.Filename, "status", res.Status)
	return &res, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Resource, error) {
	existing, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	if cmd.Data == nil {
		return r.updateMetadata(ctx, id, cmd)
	}

	return r.replaceFile(ctx, existing, cmd)
}

func (r *repo) updateMetadata(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Resource, error) {
	q := `
		UPDATE resources
		SET title = $1, description = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING ` + selectColumns

	res, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Resource, error) {
		return repository.QueryOne(ctx, tx, q, []any{cmd.Title, cmd.Description, id}, scanResource)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("resource updated", "id", res.ID)
	return &res, nil
}

// replaceFile swaps the stored file and re-runs extraction. The previous
// extracted text never survives a replacement, even when the new
// extraction fails.
func (r *repo) replaceFile(ctx context.Context, existing *Resource, cmd UpdateCommand) (*Resource, error) {
	if err := r.checkSize(int64(len(cmd.Data))); err != nil {
		return nil, err
	}
	if len(cmd.Data) == 0 {
		return nil, fmt.Errorf("%w: empty upload", ErrInvalidFile)
	}

	key := storageKey(existing.ID, cmd.Filename)
	format := extract.DetectFormat(cmd.Filename)
	status, text := r.extractText(cmd.Data, format)
	pageCount := countPages(cmd.Data, format)

	if err := r.storage.Store(ctx, key, cmd.Data); err != nil {
		return nil, fmt.Errorf("store replacement: %w", err)
	}

	q := `
		UPDATE resources
		SET title = $1, description = $2, filename = $3, storage_key = $4,
			content_type = $5, format = $6, size_bytes = $7, status = $8,
			extracted_text = $9, page_count = $10, updated_at = NOW()
		WHERE id = $11
		RETURNING ` + selectColumns

	res, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Resource, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			cmd.Title, cmd.Description, cmd.Filename, key, cmd.ContentType,
			format, int64(len(cmd.Data)), status, text, pageCount, existing.ID,
		}, scanResource)
	})

	if err != nil {
		if key != existing.StorageKey {
			if delErr := r.storage.Delete(ctx, key); delErr != nil {
				r.logger.Error("failed to remove replacement after update failure", "key", key, "error", delErr)
			}
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	if key != existing.StorageKey {
		if err := r.storage.Delete(ctx, existing.StorageKey); err != nil {
			r.logger.Warn("failed to remove superseded file", "key", existing.StorageKey, "error", err)
		}
	}

	r.logger.Info("resource file replaced", "id", res.ID, "filename", res.Filename, "status", res.Status)
	return &res, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := r.Find(ctx, id)
	if err != nil {
		return err
	}

	_, err = repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		err := repository.ExecExpectOne(ctx, tx, "DELETE FROM resources WHERE id = $1", id)
		return struct{}{}, err
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	// Row and file removal form one logical delete. A failed file removal
	// is surfaced to the caller rather than logged away.
	if err := r.storage.Delete(ctx, existing.StorageKey); err != nil {
		return fmt.Errorf("resource row deleted but file removal failed: %w", err)
	}

	r.logger.Info("resource deleted", "id", id)
	return nil
}

func (r *repo) checkSize(size int64) error {
	if size > r.maxUploadSize {
		return fmt.Errorf("%w: %d bytes exceeds %d byte limit", ErrFileTooLarge, size, r.maxUploadSize)
	}
	return nil
}

// extractText runs extraction and contains any failure in the returned
// status. No extraction error escapes the upload path.
func (r *repo) extractText(data []byte, format extract.Format) (Status, *string) {
	text, err := r.extractor.Extract(data, format)
	if err != nil {
		r.logger.Warn("extraction failed", "format", format, "error", err)
		return StatusFailed, nil
	}
	return StatusExtracted, &text
}

func storageKey(id uuid.UUID, filename string) string {
	return fmt.Sprintf("resources/%s%s", id, strings.ToLower(filepath.Ext(filename)))
}
