package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astrolabs/skywatch/internal/app/models"
	"github.com/astrolabs/skywatch/internal/app/models/dto"
	"github.com/astrolabs/skywatch/internal/pkg/apperrors"
)

// mockLightcurveService is a hand-written LightcurveService stub.
type mockLightcurveService struct {
	lightcurveFunc    func(ctx context.Context, oid string) (*models.Lightcurve, error)
	detectionsFunc    func(ctx context.Context, oid string) ([]models.Detection, error)
	nonDetectionsFunc func(ctx context.Context, oid string) ([]models.NonDetection, error)
}

func (m *mockLightcurveService) GetLightcurve(ctx context.Context, oid string) (*models.Lightcurve, error) {
	return m.lightcurveFunc(ctx, oid)
}

func (m *mockLightcurveService) GetDetections(ctx context.Context, oid string) ([]models.Detection, error) {
	return m.detectionsFunc(ctx, oid)
}

func (m *mockLightcurveService) GetNonDetections(ctx context.Context, oid string) ([]models.NonDetection, error) {
	return m.nonDetectionsFunc(ctx, oid)
}

func setupLightcurveRouter(svc *mockLightcurveService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewLightcurveController(svc)
	router.GET("/objects/:oid/lightcurve", controller.GetLightcurve)
	router.GET("/objects/:oid/detections", controller.GetDetections)
	router.GET("/objects/:oid/non_detections", controller.GetNonDetections)
	return router
}

func sampleDetections() []models.Detection {
	return []models.Detection{
		{Candid: 1000151433015015013, OID: "ZTF18aaabcde", MJD: 58300.1, FID: 1, RA: 120.5001, Dec: -33.2001, MagPSF: 18.3, SigmaPSF: 0.05, RB: 0.88},
		{Candid: 1000215433015015017, OID: "ZTF18aaabcde", MJD: 58305.4, FID: 2, RA: 120.5002, Dec: -33.1999, MagPSF: 18.1, SigmaPSF: 0.04, RB: 0.91},
	}
}

func sampleNonDetections() []models.NonDetection {
	return []models.NonDetection{
		{OID: "ZTF18aaabcde", MJD: 58295.2, FID: 1, DiffMagLim: 20.5},
	}
}

func TestGetLightcurve_Success(t *testing.T) {
	svc := &mockLightcurveService{
		lightcurveFunc: func(_ context.Context, oid string) (*models.Lightcurve, error) {
			assert.Equal(t, "ZTF18aaabcde", oid)
			return &models.Lightcurve{
				Detections:    sampleDetections(),
				NonDetections: sampleNonDetections(),
			}, nil
		},
	}
	router := setupLightcurveRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/objects/ZTF18aaabcde/lightcurve", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var lightcurve models.Lightcurve
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lightcurve))
	require.Len(t, lightcurve.Detections, 2)
	require.Len(t, lightcurve.NonDetections, 1)
	assert.InDelta(t, 58300.1, lightcurve.Detections[0].MJD, 1e-9)
	assert.InDelta(t, 20.5, lightcurve.NonDetections[0].DiffMagLim, 1e-9)
}

func TestGetLightcurve_UnknownObjectReturns404(t *testing.T) {
	svc := &mockLightcurveService{
		lightcurveFunc: func(_ context.Context, _ string) (*models.Lightcurve, error) {
			return nil, apperrors.NewNotFoundError("Object not found")
		},
	}
	router := setupLightcurveRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/objects/ZTF99zzzzzzz/lightcurve", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeObjectNotFound, resp.Error.Code)
}

func TestGetDetections_Success(t *testing.T) {
	svc := &mockLightcurveService{
		detectionsFunc: func(_ context.Context, oid string) ([]models.Detection, error) {
			assert.Equal(t, "ZTF18aaabcde", oid)
			return sampleDetections(), nil
		},
	}
	router := setupLightcurveRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/objects/ZTF18aaabcde/detections", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var detections []models.Detection
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detections))
	require.Len(t, detections, 2)
	assert.Equal(t, int64(1000151433015015013), detections[0].Candid)
	assert.Equal(t, 1, detections[0].FID)
}

func TestGetDetections_EmptySeriesStays200(t *testing.T) {
	svc := &mockLightcurveService{
		detectionsFunc: func(_ context.Context, _ string) ([]models.Detection, error) {
			return []models.Detection{}, nil
		},
	}
	router := setupLightcurveRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/objects/ZTF18aaabcde/detections", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGetNonDetections_Success(t *testing.T) {
	svc := &mockLightcurveService{
		nonDetectionsFunc: func(_ context.Context, oid string) ([]models.NonDetection, error) {
			assert.Equal(t, "ZTF18aaabcde", oid)
			return sampleNonDetections(), nil
		},
	}
	router := setupLightcurveRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/objects/ZTF18aaabcde/non_detections", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var nonDetections []models.NonDetection
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &nonDetections))
	require.Len(t, nonDetections, 1)
	assert.Equal(t, "ZTF18aaabcde", nonDetections[0].OID)
}

func TestGetNonDetections_UnknownObjectReturns404(t *testing.T) {
	svc := &mockLightcurveService{
		nonDetectionsFunc: func(_ context.Context, _ string) ([]models.NonDetection, error) {
			return nil, apperrors.NewNotFoundError("Object not found")
		},
	}
	router := setupLightcurveRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/objects/ZTF99zzzzzzz/non_detections", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}
