package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transitmv/linetrack/internal/pkg/models"
	"github.com/transitmv/linetrack/services/catalog/mocks"
)

func strPtr(s string) *string { return &s }

func setupCatalogHandlerTest(t *testing.T) (*CatalogHandler, *mocks.MockCatalogUC, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockCatalogUC(ctrl)
	handler := NewCatalogHandler(mockUC)
	return handler, mockUC, ctrl
}

func newTestContext(method string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestListLines(t *testing.T) {
	handler, mockUC, ctrl := setupCatalogHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		ListActiveLines(gomock.Any()).
		Return([]models.Line{
			{ID: "L12", Name: "Airport Express", ColorHex: strPtr("#0055A4")},
			{ID: "L45", Name: "Coastal Loop"},
		}, nil)

	c, rec := newTestContext(http.MethodGet)
	err := handler.ListLines(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "L12", got[0]["id"])
	assert.Equal(t, "Coastal Loop", got[1]["name"])
	assert.Nil(t, got[1]["color_hex"])
}

func TestListLines_Empty(t *testing.T) {
	handler, mockUC, ctrl := setupCatalogHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().ListActiveLines(gomock.Any()).Return([]models.Line{}, nil)

	c, rec := newTestContext(http.MethodGet)
	err := handler.ListLines(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestListLines_Failure(t *testing.T) {
	handler, mockUC, ctrl := setupCatalogHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().ListActiveLines(gomock.Any()).Return(nil, errors.New("timeout"))

	c, rec := newTestContext(http.MethodGet)
	err := handler.ListLines(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetLineShape(t *testing.T) {
	handler, mockUC, ctrl := setupCatalogHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		GetLineShape(gomock.Any(), "L45").
		Return([]models.LatLng{
			{Lat: -12.0464, Lng: -77.0428},
			{Lat: -12.0470, Lng: -77.0410},
		}, nil)

	c, rec := newTestContext(http.MethodGet)
	c.SetParamNames("line_id")
	c.SetParamValues("L45")

	err := handler.GetLineShape(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var got []models.LatLng
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, -12.0464, got[0].Lat)
}

func TestGetLineShape_UnknownLine(t *testing.T) {
	handler, mockUC, ctrl := setupCatalogHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().GetLineShape(gomock.Any(), "no-such-line").Return([]models.LatLng{}, nil)

	c, rec := newTestContext(http.MethodGet)
	c.SetParamNames("line_id")
	c.SetParamValues("no-such-line")

	err := handler.GetLineShape(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestHeadDriver_Exists(t *testing.T) {
	handler, mockUC, ctrl := setupCatalogHandlerTest(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	mockUC.EXPECT().DriverExists(gomock.Any(), driverID).Return(true, nil)

	c, rec := newTestContext(http.MethodHead)
	c.SetParamNames("driver_id")
	c.SetParamValues(driverID.String())

	err := handler.HeadDriver(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHeadDriver_Unknown(t *testing.T) {
	handler, mockUC, ctrl := setupCatalogHandlerTest(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	mockUC.EXPECT().DriverExists(gomock.Any(), driverID).Return(false, nil)

	c, rec := newTestContext(http.MethodHead)
	c.SetParamNames("driver_id")
	c.SetParamValues(driverID.String())

	err := handler.HeadDriver(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHeadDriver_MalformedID(t *testing.T) {
	handler, _, ctrl := setupCatalogHandlerTest(t)
	defer ctrl.Finish()

	c, rec := newTestContext(http.MethodHead)
	c.SetParamNames("driver_id")
	c.SetParamValues("not-a-uuid")

	err := handler.HeadDriver(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHeadDriver_Failure(t *testing.T) {
	handler, mockUC, ctrl := setupCatalogHandlerTest(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	mockUC.EXPECT().DriverExists(gomock.Any(), driverID).Return(false, errors.New("connection refused"))

	c, rec := newTestContext(http.MethodHead)
	c.SetParamNames("driver_id")
	c.SetParamValues(driverID.String())

	err := handler.HeadDriver(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
