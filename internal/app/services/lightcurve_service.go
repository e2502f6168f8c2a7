package services

import (
	"context"
	"fmt"

	"github.com/astrolabs/skywatch/internal/app/models"
	"github.com/astrolabs/skywatch/internal/app/repositories"
	"github.com/astrolabs/skywatch/internal/pkg/apperrors"
)

// LightcurveService defines the interface for per-object time-series queries.
type LightcurveService interface {
	GetLightcurve(ctx context.Context, oid string) (*models.Lightcurve, error)
	GetDetections(ctx context.Context, oid string) ([]models.Detection, error)
	GetNonDetections(ctx context.Context, oid string) ([]models.NonDetection, error)
}

// lightcurveServiceImpl implements the LightcurveService interface.
type lightcurveServiceImpl struct {
	objectRepo     *repositories.ObjectRepository
	lightcurveRepo *repositories.LightcurveRepository
}

// NewLightcurveService creates a new lightcurve service instance.
func NewLightcurveService(objectRepo *repositories.ObjectRepository, lightcurveRepo *repositories.LightcurveRepository) LightcurveService {
	return &lightcurveServiceImpl{
		objectRepo:     objectRepo,
		lightcurveRepo: lightcurveRepo,
	}
}

// requireObject fails with a not-found error when the oid is unknown. An
// existing object with no detections still answers 200 with empty series.
func (s *lightcurveServiceImpl) requireObject(ctx context.Context, oid string) error {
	exists, err := s.objectRepo.ObjectExists(ctx, oid)
	if err != nil {
		return fmt.Errorf("error checking object existence: %w", err)
	}
	if !exists {
		return apperrors.NewNotFoundError("Object not found")
	}
	return nil
}

// GetLightcurve returns the object's detections and non-detections.
func (s *lightcurveServiceImpl) GetLightcurve(ctx context.Context, oid string) (*models.Lightcurve, error) {
	if err := s.requireObject(ctx, oid); err != nil {
		return nil, err
	}

	detections, err := s.lightcurveRepo.GetDetections(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("error retrieving detections: %w", err)
	}
	nonDetections, err := s.lightcurveRepo.GetNonDetections(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("error retrieving non-detections: %w", err)
	}

	return &models.Lightcurve{
		Detections:    detections,
		NonDetections: nonDetections,
	}, nil
}

// GetDetections returns the object's detections.
func (s *lightcurveServiceImpl) GetDetections(ctx context.Context, oid string) ([]models.Detection, error) {
	if err := s.requireObject(ctx, oid); err != nil {
		return nil, err
	}
	detections, err := s.lightcurveRepo.GetDetections(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("error retrieving detections: %w", err)
	}
	return detections, nil
}

// GetNonDetections returns the object's non-detections.
func (s *lightcurveServiceImpl) GetNonDetections(ctx context.Context, oid string) ([]models.NonDetection, error) {
	if err := s.requireObject(ctx, oid); err != nil {
		return nil, err
	}
	nonDetections, err := s.lightcurveRepo.GetNonDetections(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("error retrieving non-detections: %w", err)
	}
	return nonDetections, nil
}
