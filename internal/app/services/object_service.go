package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/astrolabs/skywatch/internal/app/models"
	"github.com/astrolabs/skywatch/internal/app/models/dto"
	"github.com/astrolabs/skywatch/internal/app/repositories"
	"github.com/astrolabs/skywatch/internal/pkg/apperrors"
)

// ObjectService defines the interface for object catalog queries.
type ObjectService interface {
	ListObjects(ctx context.Context, query *dto.ObjectListQuery) (*models.ObjectPage, error)
	GetObjectByOID(ctx context.Context, oid string) (*models.Object, error)
}

// objectServiceImpl implements the ObjectService interface.
type objectServiceImpl struct {
	objectRepo *repositories.ObjectRepository
}

// NewObjectService creates a new object service instance.
func NewObjectService(objectRepo *repositories.ObjectRepository) ObjectService {
	return &objectServiceImpl{objectRepo: objectRepo}
}

// ListObjects returns one page of objects matching the query. A page with
// zero items is reported as an empty-result error, which the API surfaces as
// 404.
func (s *objectServiceImpl) ListObjects(ctx context.Context, query *dto.ObjectListQuery) (*models.ObjectPage, error) {
	page, err := s.objectRepo.ListObjects(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing objects: %w", err)
	}

	if len(page.Items) == 0 {
		return nil, apperrors.NewEmptyPageError("Objects not found")
	}

	return page, nil
}

// GetObjectByOID returns the unique object with the given identifier.
func (s *objectServiceImpl) GetObjectByOID(ctx context.Context, oid string) (*models.Object, error) {
	if oid == "" {
		return nil, fmt.Errorf("%w: object identifier cannot be empty", apperrors.ErrValidationFailed)
	}

	object, err := s.objectRepo.GetObjectByOID(ctx, oid)
	if err != nil {
		if errors.Is(err, apperrors.ErrObjectNotFound) {
			return nil, apperrors.NewNotFoundError("Object not found")
		}
		return nil, fmt.Errorf("error retrieving object: %w", err)
	}

	return object, nil
}
