package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/astrolabs/skywatch/internal/app/models"
	"github.com/astrolabs/skywatch/internal/pkg/logger"
)

// LightcurveRepository handles detection and non-detection database
// operations.
type LightcurveRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewLightcurveRepository creates a new LightcurveRepository.
func NewLightcurveRepository(db *pgxpool.Pool) *LightcurveRepository {
	return &LightcurveRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetDetections retrieves an object's detections ordered by observation time.
func (r *LightcurveRepository) GetDetections(ctx context.Context, oid string) ([]models.Detection, error) {
	sql, args, err := r.sb.Select(
		"candid", "oid", "mjd", "fid", "ra", "dec", "magpsf", "sigmapsf", "rb").
		From("detections").
		Where(squirrel.Eq{"oid": oid}).
		OrderBy("mjd ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build detections query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("oid", oid).Msg("Error executing detections query")
		return nil, fmt.Errorf("error querying detections: %w", err)
	}
	defer rows.Close()

	detections := []models.Detection{}
	for rows.Next() {
		var d models.Detection
		err := rows.Scan(&d.Candid, &d.OID, &d.MJD, &d.FID, &d.RA, &d.Dec,
			&d.MagPSF, &d.SigmaPSF, &d.RB)
		if err != nil {
			return nil, fmt.Errorf("error scanning detection row: %w", err)
		}
		detections = append(detections, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating detection rows: %w", err)
	}

	return detections, nil
}

// GetNonDetections retrieves an object's non-detections ordered by
// observation time.
func (r *LightcurveRepository) GetNonDetections(ctx context.Context, oid string) ([]models.NonDetection, error) {
	sql, args, err := r.sb.Select("oid", "mjd", "fid", "diffmaglim").
		From("non_detections").
		Where(squirrel.Eq{"oid": oid}).
		OrderBy("mjd ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build non-detections query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("oid", oid).Msg("Error executing non-detections query")
		return nil, fmt.Errorf("error querying non-detections: %w", err)
	}
	defer rows.Close()

	nonDetections := []models.NonDetection{}
	for rows.Next() {
		var nd models.NonDetection
		if err := rows.Scan(&nd.OID, &nd.MJD, &nd.FID, &nd.DiffMagLim); err != nil {
			return nil, fmt.Errorf("error scanning non-detection row: %w", err)
		}
		nonDetections = append(nonDetections, nd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating non-detection rows: %w", err)
	}

	return nonDetections, nil
}
