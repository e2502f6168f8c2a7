package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/astrolabs/skywatch/internal/app/services"
	"github.com/astrolabs/skywatch/internal/middleware"
)

// LightcurveController handles per-object time-series queries.
type LightcurveController struct {
	lightcurveService services.LightcurveService
}

// NewLightcurveController creates a new LightcurveController.
func NewLightcurveController(lightcurveService services.LightcurveService) *LightcurveController {
	return &LightcurveController{lightcurveService: lightcurveService}
}

// GetLightcurve retrieves an object's lightcurve
// @Summary Get an object's lightcurve
// @Description Fetches the detections and non-detections of an object
// @Tags lightcurve
// @Accept json
// @Produce json
// @Param oid path string true "Object identifier"
// @Success 200 {object} models.Lightcurve "Lightcurve retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Object not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /objects/{oid}/lightcurve [get]
func (c *LightcurveController) GetLightcurve(ctx *gin.Context) {
	lightcurve, err := c.lightcurveService.GetLightcurve(ctx, ctx.Param("oid"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, lightcurve)
}

// GetDetections retrieves an object's detections
// @Summary Get an object's detections
// @Description Fetches all alert-stream detections of an object ordered by observation time
// @Tags lightcurve
// @Accept json
// @Produce json
// @Param oid path string true "Object identifier"
// @Success 200 {array} models.Detection "Detections retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Object not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /objects/{oid}/detections [get]
func (c *LightcurveController) GetDetections(ctx *gin.Context) {
	detections, err := c.lightcurveService.GetDetections(ctx, ctx.Param("oid"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, detections)
}

// GetNonDetections retrieves an object's non-detections
// @Summary Get an object's non-detections
// @Description Fetches the epochs where the survey found nothing above the limiting magnitude at the object's position
// @Tags lightcurve
// @Accept json
// @Produce json
// @Param oid path string true "Object identifier"
// @Success 200 {array} models.NonDetection "Non-detections retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Object not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /objects/{oid}/non_detections [get]
func (c *LightcurveController) GetNonDetections(ctx *gin.Context) {
	nonDetections, err := c.lightcurveService.GetNonDetections(ctx, ctx.Param("oid"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, nonDetections)
}
