package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/astrolabs/skywatch/internal/app/models"
	"github.com/astrolabs/skywatch/internal/app/models/dto"
	"github.com/astrolabs/skywatch/internal/pkg/apperrors"
	"github.com/astrolabs/skywatch/internal/pkg/dberrors"
	"github.com/astrolabs/skywatch/internal/pkg/helpers"
	"github.com/astrolabs/skywatch/internal/pkg/logger"
)

// ObjectRepository handles object and classification database operations.
type ObjectRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewObjectRepository creates a new ObjectRepository.
func NewObjectRepository(db *pgxpool.Pool) *ObjectRepository {
	return &ObjectRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ListObjects executes the filtered, ordered, paginated outer-join query and
// returns one page of (object, classification) rows flattened into items.
func (r *ObjectRepository) ListObjects(ctx context.Context, q *dto.ObjectListQuery) (*models.ObjectPage, error) {
	page, pageSize := helpers.ClampPagination(q.Page, q.PageSize)

	sql, args, err := buildObjectListSQL(q)
	if err != nil {
		logger.Error().Err(err).Msg("Error building object list SQL")
		return nil, fmt.Errorf("failed to build object list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		if q.HasConeSearch() && dberrors.IsUndefinedFunction(err) {
			logger.Error().Err(err).Msg("Cone search failed, q3c extension not installed")
			return nil, fmt.Errorf("cone search requires the q3c extension: %w", err)
		}
		logger.Error().Err(err).Msg("Error executing object list query")
		return nil, fmt.Errorf("error querying objects: %w", err)
	}
	defer rows.Close()

	items := []models.ObjectListItem{}
	for rows.Next() {
		var item models.ObjectListItem
		err := rows.Scan(
			&item.OID, &item.Ndet, &item.MeanRA, &item.MeanDec,
			&item.SigmaRA, &item.SigmaDec, &item.DeltaJD,
			&item.FirstMJD, &item.LastMJD,
			&item.ClassifierName, &item.ClassName, &item.Probability,
		)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning object row")
			return nil, fmt.Errorf("error scanning object row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating object rows: %w", err)
	}

	// One extra row was fetched to detect the next page.
	hasNext := len(items) > pageSize
	if hasNext {
		items = items[:pageSize]
	}
	next, prev := helpers.PageCursors(page, hasNext)

	result := &models.ObjectPage{
		Items:   items,
		Page:    page,
		HasNext: hasNext,
		NextNum: next,
		HasPrev: prev != nil,
		PrevNum: prev,
	}

	if q.Count {
		total, err := r.countObjects(ctx, q)
		if err != nil {
			return nil, err
		}
		result.Total = &total
	}

	return result, nil
}

func (r *ObjectRepository) countObjects(ctx context.Context, q *dto.ObjectListQuery) (int64, error) {
	sql, args, err := buildObjectCountSQL(q)
	if err != nil {
		return 0, fmt.Errorf("failed to build object count query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error executing object count query")
		return 0, fmt.Errorf("error counting objects: %w", err)
	}
	return total, nil
}

// GetObjectByOID retrieves a single object by its identifier.
func (r *ObjectRepository) GetObjectByOID(ctx context.Context, oid string) (*models.Object, error) {
	sql, args, err := r.sb.Select(
		"oid", "ndet", "meanra", "meandec", "sigmara", "sigmadec",
		"deltajd", "firstmjd", "lastmjd").
		From("objects").
		Where(squirrel.Eq{"oid": oid}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get object query: %w", err)
	}

	object := &models.Object{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&object.OID, &object.Ndet, &object.MeanRA, &object.MeanDec,
		&object.SigmaRA, &object.SigmaDec, &object.DeltaJD,
		&object.FirstMJD, &object.LastMJD,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrObjectNotFound
		}
		logger.Error().Err(err).Str("oid", oid).Msg("Error scanning object row")
		return nil, fmt.Errorf("error getting object by oid: %w", err)
	}

	return object, nil
}

// ObjectExists checks whether an object with the given identifier exists.
func (r *ObjectRepository) ObjectExists(ctx context.Context, oid string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("objects").
		Where(squirrel.Eq{"oid": oid}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build object existence query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Str("oid", oid).Msg("Error checking object existence")
		return false, fmt.Errorf("error checking object existence: %w", err)
	}

	return exists, nil
}
