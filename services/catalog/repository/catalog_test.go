package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transitmv/linetrack/internal/pkg/models"
)

func setupCatalogRepoTest(t *testing.T) (*CatalogRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewCatalogRepo(db)

	return repo, mock, func() { mockDB.Close() }
}

func TestListActiveLines(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, lines []models.Line, err error)
	}{
		{
			name: "active lines ordered by id",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "name", "color_hex", "is_active"}).
					AddRow("L12", "Airport Express", "#0055A4", true).
					AddRow("L45", "Coastal Loop", nil, true)
				mock.ExpectQuery("SELECT id, name, color_hex, is_active").
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, lines []models.Line, err error) {
				assert.NoError(t, err)
				require.Len(t, lines, 2)
				assert.Equal(t, "L12", lines[0].ID)
				require.NotNil(t, lines[0].ColorHex)
				assert.Equal(t, "#0055A4", *lines[0].ColorHex)
				assert.Equal(t, "L45", lines[1].ID)
				assert.Nil(t, lines[1].ColorHex)
			},
		},
		{
			name: "no active lines",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT id, name, color_hex, is_active").
					WillReturnRows(sqlmock.NewRows([]string{"id", "name", "color_hex", "is_active"}))
			},
			assertFunc: func(t *testing.T, lines []models.Line, err error) {
				assert.NoError(t, err)
				assert.Empty(t, lines)
			},
		},
		{
			name: "database error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT id, name, color_hex, is_active").
					WillReturnError(errors.New("connection refused"))
			},
			assertFunc: func(t *testing.T, lines []models.Line, err error) {
				assert.Error(t, err)
				assert.Nil(t, lines)
				assert.Contains(t, err.Error(), "failed to list lines")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupCatalogRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			lines, err := repo.ListActiveLines(context.Background())
			tc.assertFunc(t, lines, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetLineShape(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, points []models.LatLng, err error)
	}{
		{
			name: "shape points in sequence order",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"lat", "lng"}).
					AddRow(-12.0464, -77.0428).
					AddRow(-12.0470, -77.0410)
				mock.ExpectQuery("SELECT lat, lng").
					WithArgs("L45").
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, points []models.LatLng, err error) {
				assert.NoError(t, err)
				require.Len(t, points, 2)
				assert.Equal(t, -12.0464, points[0].Lat)
				assert.Equal(t, -77.0410, points[1].Lng)
			},
		},
		{
			name: "unknown line yields no rows",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT lat, lng").
					WithArgs("L45").
					WillReturnRows(sqlmock.NewRows([]string{"lat", "lng"}))
			},
			assertFunc: func(t *testing.T, points []models.LatLng, err error) {
				assert.NoError(t, err)
				assert.Empty(t, points)
			},
		},
		{
			name: "database error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT lat, lng").
					WithArgs("L45").
					WillReturnError(errors.New("timeout"))
			},
			assertFunc: func(t *testing.T, points []models.LatLng, err error) {
				assert.Error(t, err)
				assert.Nil(t, points)
				assert.Contains(t, err.Error(), "failed to get line shape")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupCatalogRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			points, err := repo.GetLineShape(context.Background(), "L45")
			tc.assertFunc(t, points, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDriverExists(t *testing.T) {
	driverID := uuid.New()

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, exists bool, err error)
	}{
		{
			name: "driver exists",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT EXISTS").
					WithArgs(driverID).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
			},
			assertFunc: func(t *testing.T, exists bool, err error) {
				assert.NoError(t, err)
				assert.True(t, exists)
			},
		},
		{
			name: "driver unknown",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT EXISTS").
					WithArgs(driverID).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
			},
			assertFunc: func(t *testing.T, exists bool, err error) {
				assert.NoError(t, err)
				assert.False(t, exists)
			},
		},
		{
			name: "database error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT EXISTS").
					WithArgs(driverID).
					WillReturnError(errors.New("connection refused"))
			},
			assertFunc: func(t *testing.T, exists bool, err error) {
				assert.Error(t, err)
				assert.False(t, exists)
				assert.Contains(t, err.Error(), "failed to check driver existence")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupCatalogRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			exists, err := repo.DriverExists(context.Background(), driverID)
			tc.assertFunc(t, exists, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
