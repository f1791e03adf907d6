package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"travelbook/internal/database"
	"travelbook/internal/domain"
	"travelbook/internal/middleware"
	"travelbook/internal/modules/auth"
	"travelbook/internal/modules/geo"
	"travelbook/internal/modules/hotels"
	"travelbook/internal/modules/packages"
	"travelbook/internal/modules/tours"
	jwtsvc "travelbook/internal/pkg/jwt"
	"travelbook/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type TestSuite struct {
	router     *gin.Engine
	db         *gorm.DB
	jwtService *jwtsvc.Service
	adminToken string
}

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func setupSuite(t *testing.T) *TestSuite {
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")

	models := []interface{}{
		&domain.User{},
		&domain.Country{},
		&domain.City{},
		&domain.Destination{},
		&domain.PackageCategory{},
		&domain.TourCategory{},
		&domain.Hotel{},
		&domain.Room{},
		&domain.Tour{},
		&domain.Package{},
	}
	for _, model := range models {
		require.NoError(t, db.AutoMigrate(model), fmt.Sprintf("Failed to migrate %T", model))
	}

	userRepo := repository.NewUserRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	tourRepo := repository.NewTourRepository(db)
	hotelRepo := repository.NewHotelRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	geoRepo := repository.NewGeoRepository(db)

	j := jwtsvc.New("e2e-test-secret", time.Hour)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	packageHandler := packages.NewHandler(
		packages.NewService(packageRepo, roomRepo, nil, time.Minute, "/static/placeholder.jpg"))
	tourHandler := tours.NewHandler(tours.NewService(tourRepo))
	hotelHandler := hotels.NewHandler(hotels.NewService(hotelRepo, roomRepo))
	geoHandler := geo.NewHandler(geoRepo)

	r := gin.New()
	api := r.Group("/api")
	{
		authHandler.RegisterRoutes(api)
		packageHandler.RegisterPublicRoutes(api)
		geoHandler.RegisterPublicRoutes(api)

		admin := api.Group("/admin")
		admin.Use(middleware.Auth(j), middleware.AdminOnly())
		{
			packageHandler.RegisterAdminRoutes(admin)
			tourHandler.RegisterAdminRoutes(admin)
			hotelHandler.RegisterAdminRoutes(admin)
		}
	}

	suite := &TestSuite{router: r, db: db, jwtService: j}
	suite.seed(t)
	return suite
}

func (s *TestSuite) seed(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	admin := domain.User{
		Email:        "admin@travelbook.app",
		PasswordHash: string(hash),
		Name:         "Admin",
		Role:         domain.RoleAdmin,
		Active:       true,
	}
	require.NoError(t, s.db.Create(&admin).Error)

	token, err := s.jwtService.GenerateToken(admin.ID, string(admin.Role))
	require.NoError(t, err)
	s.adminToken = token

	country := domain.Country{Name: "Egypt", Code: "EG", Active: true}
	require.NoError(t, s.db.Create(&country).Error)
	city := domain.City{CountryID: country.ID, Name: "Luxor", Active: true}
	require.NoError(t, s.db.Create(&city).Error)
	category := domain.PackageCategory{Name: "Cultural", Active: true}
	require.NoError(t, s.db.Create(&category).Error)

	hotel := domain.Hotel{Name: "Nile View Hotel", CityID: &city.ID, Stars: 5, Active: true}
	require.NoError(t, s.db.Create(&hotel).Error)

	two := 2
	four := 4
	rooms := []domain.Room{
		{HotelID: hotel.ID, Name: "Standard Double", Price: 80, MaxOccupancy: &two, Active: true},
		{HotelID: hotel.ID, Name: "Family Suite", Price: 180, MaxOccupancy: &four, Active: true},
	}
	for i := range rooms {
		require.NoError(t, s.db.Create(&rooms[i]).Error)
	}
}

func (s *TestSuite) request(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, *TestResponse) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp TestResponse
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	}
	return w, &resp
}

func validPackagePayload() map[string]interface{} {
	return map[string]interface{}{
		"title":             "Nile Adventure",
		"overview":          "Seven days along the Nile.",
		"price":             "899",
		"adult_count":       "2",
		"children_count":    "0",
		"infant_count":      "0",
		"start_date":        "2027-10-12",
		"end_date":          "2027-10-19",
		"country_id":        1,
		"city_id":           1,
		"category_id":       1,
		"included_features": []string{"Accommodation", "Breakfast"},
	}
}

func TestLoginFlow(t *testing.T) {
	s := setupSuite(t)

	w, resp := s.request(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "admin@travelbook.app",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Data["token"])

	w, resp = s.request(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "admin@travelbook.app",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", resp.Error.Code)
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	s := setupSuite(t)

	w, _ := s.request(t, http.MethodPost, "/api/admin/packages", "", validPackagePayload())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreatePackageHappyPath(t *testing.T) {
	s := setupSuite(t)

	w, resp := s.request(t, http.MethodPost, "/api/admin/packages", s.adminToken, validPackagePayload())
	require.Equal(t, http.StatusCreated, w.Code, "body: %v", resp)
	require.True(t, resp.Success)

	assert.Equal(t, true, resp.Data["created"])
	assert.Equal(t, "idle", resp.Data["draft_status"])

	pkg := resp.Data["package"].(map[string]interface{})
	assert.Equal(t, "Nile Adventure", pkg["title"])
	assert.Equal(t, float64(899), pkg["price"])
	assert.Equal(t, "/static/placeholder.jpg", pkg["main_image"])
	assert.NotZero(t, pkg["id"])
}

func TestCreatePackageValidationFailure(t *testing.T) {
	s := setupSuite(t)

	payload := validPackagePayload()
	payload["title"] = ""
	payload["price"] = ""

	w, resp := s.request(t, http.MethodPost, "/api/admin/packages", s.adminToken, payload)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)

	details := resp.Error.Details.(map[string]interface{})
	assert.Equal(t, "rejected", details["draft_status"])

	validation := details["validation"].(map[string]interface{})
	assert.Equal(t, false, validation["valid"])
	assert.Equal(t, "required", validation["failed_stage"])
	assert.Equal(t, "basic", validation["first_error_tab"])

	// nothing was persisted
	var count int64
	s.db.Model(&domain.Package{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreatePackageLegacyNewlineFeatures(t *testing.T) {
	s := setupSuite(t)

	payload := validPackagePayload()
	payload["included_features"] = "Accommodation\nBreakfast\n"

	w, resp := s.request(t, http.MethodPost, "/api/admin/packages", s.adminToken, payload)
	require.Equal(t, http.StatusCreated, w.Code, "body: %v", resp)

	pkg := resp.Data["package"].(map[string]interface{})
	features := pkg["included_features"].([]interface{})
	assert.Equal(t, []interface{}{"Accommodation", "Breakfast"}, features)
}

func TestUpdatePackageReconcilesRooms(t *testing.T) {
	s := setupSuite(t)

	payload := validPackagePayload()
	payload["hotel_ids"] = []int64{1}
	payload["selected_room_ids"] = []int64{1, 2}

	w, resp := s.request(t, http.MethodPost, "/api/admin/packages", s.adminToken, payload)
	require.Equal(t, http.StatusCreated, w.Code)
	pkgID := int64(resp.Data["package"].(map[string]interface{})["id"].(float64))

	// growing the party beyond the double's capacity prunes room 1
	payload["adult_count"] = "3"
	payload["children_count"] = "1"

	w, resp = s.request(t, http.MethodPut, fmt.Sprintf("/api/admin/packages/%d", pkgID), s.adminToken, payload)
	require.Equal(t, http.StatusOK, w.Code, "body: %v", resp)

	assert.Equal(t, "saved", resp.Data["draft_status"])
	assert.Equal(t, []interface{}{float64(1)}, resp.Data["removed_room_ids"])

	pkg := resp.Data["package"].(map[string]interface{})
	assert.Equal(t, []interface{}{float64(2)}, pkg["selected_room_ids"])
}

func TestEligibleRoomsEndpoint(t *testing.T) {
	s := setupSuite(t)

	w, resp := s.request(t, http.MethodPost, "/api/admin/packages/eligible-rooms", s.adminToken, map[string]interface{}{
		"hotel_ids":         []int64{1},
		"adult_count":       3,
		"children_count":    1,
		"selected_room_ids": []int64{1, 2},
	})
	require.Equal(t, http.StatusOK, w.Code)

	rooms := resp.Data["rooms"].([]interface{})
	require.Len(t, rooms, 1)
	assert.Equal(t, "Family Suite", rooms[0].(map[string]interface{})["name"])
	assert.Equal(t, []interface{}{float64(1)}, resp.Data["removed_room_ids"])
}

func TestGetFormHydration(t *testing.T) {
	s := setupSuite(t)

	w, resp := s.request(t, http.MethodPost, "/api/admin/packages", s.adminToken, validPackagePayload())
	require.Equal(t, http.StatusCreated, w.Code)
	pkgID := int64(resp.Data["package"].(map[string]interface{})["id"].(float64))

	w, resp = s.request(t, http.MethodGet, fmt.Sprintf("/api/admin/packages/%d/form", pkgID), s.adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	form := resp.Data["form"].(map[string]interface{})
	assert.Equal(t, "Nile Adventure", form["title"])
	assert.Equal(t, "899", form["price"])
	assert.Equal(t, "2", form["adult_count"])
	assert.Equal(t, "2027-10-12", form["start_date"])
	assert.Equal(t, []interface{}{"Accommodation", "Breakfast"}, form["included_features"])
}

func TestPublicListAndDelete(t *testing.T) {
	s := setupSuite(t)

	w, resp := s.request(t, http.MethodPost, "/api/admin/packages", s.adminToken, validPackagePayload())
	require.Equal(t, http.StatusCreated, w.Code)
	pkgID := int64(resp.Data["package"].(map[string]interface{})["id"].(float64))

	w, resp = s.request(t, http.MethodGet, "/api/packages", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), resp.Data["total"])

	w, _ = s.request(t, http.MethodDelete, fmt.Sprintf("/api/admin/packages/%d", pkgID), s.adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, resp = s.request(t, http.MethodGet, "/api/packages", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), resp.Data["total"])
}

func TestGeoReferenceEndpoints(t *testing.T) {
	s := setupSuite(t)

	w, resp := s.request(t, http.MethodGet, "/api/countries", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	countries := resp.Data["countries"].([]interface{})
	require.Len(t, countries, 1)
	assert.Equal(t, "Egypt", countries[0].(map[string]interface{})["name"])

	w, resp = s.request(t, http.MethodGet, "/api/cities?country_id=1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp.Data["cities"].([]interface{}), 1)
}

func TestTourCRUD(t *testing.T) {
	s := setupSuite(t)

	w, resp := s.request(t, http.MethodPost, "/api/admin/tours", s.adminToken, map[string]interface{}{
		"name":          "Valley of the Kings",
		"price":         55,
		"duration":      6,
		"duration_unit": "hours",
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %v", resp)
	tour := resp.Data["tour"].(map[string]interface{})
	tourID := int64(tour["id"].(float64))
	assert.Equal(t, "USD", tour["currency"])

	w, resp = s.request(t, http.MethodGet, fmt.Sprintf("/api/admin/tours/%d", tourID), s.adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = s.request(t, http.MethodDelete, fmt.Sprintf("/api/admin/tours/%d", tourID), s.adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = s.request(t, http.MethodGet, fmt.Sprintf("/api/admin/tours/%d", tourID), s.adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
