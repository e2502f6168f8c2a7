package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/astrolabs/skywatch/internal/app/controllers"
	"github.com/astrolabs/skywatch/internal/app/models/dto"
)

// SetupRouter configures all application routes.
func SetupRouter(
	router *gin.Engine,
	objectController *controllers.ObjectController,
	lightcurveController *controllers.LightcurveController,
) {
	objects := router.Group("/objects")
	{
		objects.GET("", objectController.ListObjects)
		objects.GET("/:oid", objectController.GetObjectByOID)
		objects.GET("/:oid/lightcurve", lightcurveController.GetLightcurve)
		objects.GET("/:oid/detections", lightcurveController.GetDetections)
		objects.GET("/:oid/non_detections", lightcurveController.GetNonDetections)
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Keep an explicit 404 shape for unknown routes
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeObjectNotFound, "Route not found")))
	})
}
