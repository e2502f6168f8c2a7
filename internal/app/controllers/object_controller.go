package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/astrolabs/skywatch/internal/app/models/dto"
	"github.com/astrolabs/skywatch/internal/app/services"
	"github.com/astrolabs/skywatch/internal/middleware"
)

// ObjectController handles object catalog queries.
type ObjectController struct {
	objectService services.ObjectService
}

// NewObjectController creates a new ObjectController.
func NewObjectController(objectService services.ObjectService) *ObjectController {
	return &ObjectController{objectService: objectService}
}

// ListObjects handles the filtered, paginated object list
// @Summary List objects
// @Description Lists catalog objects matching the given filters, cone search and ordering
// @Tags objects
// @Accept json
// @Produce json
// @Param classifier query string false "Filter by classifier name"
// @Param class query string false "Filter by class name"
// @Param ndet query []int false "Detection count range: one value for a lower bound, two for inclusive bounds" collectionFormat(multi)
// @Param firstmjd query []number false "First observation time (MJD) range" collectionFormat(multi)
// @Param lastmjd query []number false "Last observation time (MJD) range" collectionFormat(multi)
// @Param probability query number false "Minimum classification probability"
// @Param ra query number false "Cone search right ascension in degrees"
// @Param dec query number false "Cone search declination in degrees"
// @Param radius query number false "Cone search radius in arcseconds"
// @Param order_by query string false "Sort column (object fields first, then classification fields)"
// @Param order_mode query string false "Sort direction" Enums(ASC, DESC)
// @Param page query int false "Page number (default: 1)"
// @Param page_size query int false "Page size (default: 10)"
// @Param count query bool false "Compute the exact total (default: true)"
// @Success 200 {object} dto.ObjectListResponse "Matching objects"
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 404 {object} dto.ErrorResponse "No objects match the filters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /objects [get]
func (c *ObjectController) ListObjects(ctx *gin.Context) {
	var query dto.ObjectListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid query parameters")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	page, err := c.objectService.ListObjects(ctx, &query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.FromObjectPage(page))
}

// GetObjectByOID retrieves an object by its identifier
// @Summary Get an object
// @Description Fetches a single catalog object given its identifier
// @Tags objects
// @Accept json
// @Produce json
// @Param oid path string true "Object identifier"
// @Success 200 {object} models.Object "Object retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Object not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /objects/{oid} [get]
func (c *ObjectController) GetObjectByOID(ctx *gin.Context) {
	oid := ctx.Param("oid")

	object, err := c.objectService.GetObjectByOID(ctx, oid)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, object)
}
