package server

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Leerling-hub/Booking/database"
	"github.com/Leerling-hub/Booking/events"
	"github.com/Leerling-hub/Booking/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "router-test-secret"

type testAPI struct {
	t      *testing.T
	router *gin.Engine
	tokens *utils.TokenService
	token  string
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open("sqlite", ":memory:?_foreign_keys=on")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	hasher := utils.NewPasswordHasher(bcrypt.MinCost)
	require.NoError(t, database.Seed(context.Background(), db, hasher, rand.New(rand.NewSource(7))))

	tokens := utils.NewTokenService(testSecret, time.Hour)
	router := NewRouter(NewServices(db, hasher, tokens, nil, events.NopPublisher{}))

	api := &testAPI{t: t, router: router, tokens: tokens}
	w := api.do(http.MethodPost, "/login", `{"username":"user0","password":"password123"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	api.token = login.Token
	return api
}

func (a *testAPI) request(method, path, body, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testAPI) do(method, path, body string) *httptest.ResponseRecorder {
	return a.request(method, path, body, "")
}

func (a *testAPI) authed(method, path, body string) *httptest.ResponseRecorder {
	return a.request(method, path, body, a.token)
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestPublicRoutes(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hello world!", w.Body.String())

	w = api.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"booking-api"}`, w.Body.String())

	w = api.do(http.MethodGet, "/nowhere", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":{"message":"Not found","status":404}}`, w.Body.String())
}

func TestLogin(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		name   string
		body   string
		status int
		error  string
	}{
		{"missing password", `{"username":"user0"}`, http.StatusBadRequest, "Username and password are required"},
		{"empty body", ``, http.StatusBadRequest, "Username and password are required"},
		{"not an object", `[1,2]`, http.StatusBadRequest, "Username and password are required"},
		{"wrong password", `{"username":"user0","password":"nope"}`, http.StatusUnauthorized, "Invalid credentials"},
		{"unknown user", `{"username":"ghost","password":"password123"}`, http.StatusUnauthorized, "Invalid credentials"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := api.do(http.MethodPost, "/login", tt.body)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.error, decode[map[string]string](t, w)["error"])
		})
	}

	claims, err := api.tokens.Verify(api.token)
	require.NoError(t, err)
	assert.Equal(t, "user0", claims.Username)
}

func TestAuthGate(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/amenities", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"No token provided"}`, w.Body.String())

	w = api.request(http.MethodGet, "/amenities", "", "garbage")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Failed to authenticate token"}`, w.Body.String())

	expired, err := api.tokens.IssueWithTTL("user0", -time.Minute)
	require.NoError(t, err)
	w = api.request(http.MethodGet, "/amenities", "", expired)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// a valid token for someone who does not exist
	ghost, err := api.tokens.Issue("ghost")
	require.NoError(t, err)
	w = api.request(http.MethodGet, "/amenities", "", ghost)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, w.Body.String())
}

// Test: create, read, replace and delete an amenity through the API
func TestAmenityScenario(t *testing.T) {
	api := newTestAPI(t)

	w := api.authed(http.MethodPost, "/amenities", `{"name":"WiFi"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"error":"Name and description are required"}`, w.Body.String())

	w = api.authed(http.MethodPost, "/amenities", `{"name":"WiFi","description":"Fast internet"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[map[string]string](t, w)
	id := created["id"]
	require.NotEmpty(t, id)

	w = api.authed(http.MethodGet, "/amenities/"+id, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "WiFi", decode[map[string]string](t, w)["name"])

	w = api.authed(http.MethodGet, "/amenities?name=WiFi", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]string](t, w), 1)

	w = api.authed(http.MethodPut, "/amenities/"+id, `{"name":"Fast WiFi","description":"Fiber"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Fast WiFi", decode[map[string]string](t, w)["name"])

	w = api.authed(http.MethodDelete, "/amenities/"+id, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = api.authed(http.MethodGet, "/amenities/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Amenity not found"}`, w.Body.String())

	w = api.authed(http.MethodDelete, "/amenities/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListQueries(t *testing.T) {
	api := newTestAPI(t)

	w := api.authed(http.MethodGet, "/amenities?invalidParam=x", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"error":"Invalid query parameters"}`, w.Body.String())

	w = api.authed(http.MethodGet, "/reviews?rating=abc", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = api.authed(http.MethodGet, "/reviews?rating=3", "")
	require.Equal(t, http.StatusOK, w.Code)
	for _, review := range decode[[]map[string]interface{}](t, w) {
		assert.Equal(t, float64(3), review["rating"])
	}

	w = api.authed(http.MethodGet, "/users?username=user1", "")
	require.Equal(t, http.StatusOK, w.Code)
	// user1 and user10 to user19
	assert.Len(t, decode[[]map[string]interface{}](t, w), 11)

	w = api.authed(http.MethodGet, "/hosts?name=nobody", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

// Test: credentials never leave the API
func TestUsersNeverExposePasswords(t *testing.T) {
	api := newTestAPI(t)

	for _, path := range []string{"/users", "/users/user-id-0", "/hosts", "/hosts/host-id-0"} {
		w := api.authed(http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.NotContains(t, w.Body.String(), "password", path)
		assert.NotContains(t, w.Body.String(), "$2a$", path)
	}

	body := `{"username":"newuser","password":"secret","name":"New","email":"new@example.com","phoneNumber":"1","profilePicture":"p"}`
	w := api.authed(http.MethodPost, "/users", body)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "password")

	// the new user can log in with the password it was created with
	w = api.do(http.MethodPost, "/login", `{"username":"newuser","password":"secret"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReplace_NotFoundBeforeValidation(t *testing.T) {
	api := newTestAPI(t)

	w := api.authed(http.MethodPut, "/properties/missing", `{}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Property not found"}`, w.Body.String())

	w = api.authed(http.MethodPut, "/properties/property-id-0", `{}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"error":"All fields are required"}`, w.Body.String())
}

func TestBookingRoundTrip(t *testing.T) {
	api := newTestAPI(t)

	body := `{"checkinDate":"2025-07-01T14:00:00Z","checkoutDate":"2025-07-03T10:00:00Z","numberOfGuests":2,"totalPrice":300.5,"bookingStatus":"pending","userId":"user-id-1","propertyId":"property-id-1"}`
	w := api.authed(http.MethodPost, "/bookings", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[map[string]interface{}](t, w)

	w = api.authed(http.MethodGet, "/bookings?bookingStatus=pend", "")
	require.Equal(t, http.StatusOK, w.Code)
	rows := decode[[]map[string]interface{}](t, w)
	require.Len(t, rows, 1)
	assert.Equal(t, created["id"], rows[0]["id"])
	assert.Equal(t, 300.5, rows[0]["totalPrice"])
}

// Test: the full CRUD contract holds for every resource
func TestResourceCRUD(t *testing.T) {
	tests := []struct {
		path     string
		name     string
		create   string
		missing  string
		message  string
		replace  string
		field    string
		replaced interface{}
	}{
		{
			path:     "/users",
			name:     "User",
			create:   `{"username":"newuser","password":"password123","name":"New User","email":"newuser@example.com","phoneNumber":"1234567890","profilePicture":"newuser.jpg"}`,
			missing:  `{"username":"newuser","password":"password123"}`,
			message:  "All fields are required",
			replace:  `{"username":"updateduser","password":"password123","name":"Updated User","email":"updateduser@example.com","phoneNumber":"1234567890","profilePicture":"updateduser.jpg"}`,
			field:    "username",
			replaced: "updateduser",
		},
		{
			path:     "/hosts",
			name:     "Host",
			create:   `{"username":"newhost","password":"password123","name":"New Host","email":"newhost@example.com","phoneNumber":"1234567890","profilePicture":"newhost.jpg","aboutMe":"About New Host","userId":"user-id-20"}`,
			missing:  `{"username":"newhost","password":"password123","name":"New Host","email":"newhost@example.com","phoneNumber":"1234567890","profilePicture":"newhost.jpg","aboutMe":"About New Host"}`,
			message:  "All fields are required",
			replace:  `{"username":"updatedhost","password":"password123","name":"Updated Host","email":"updatedhost@example.com","phoneNumber":"1234567890","profilePicture":"updatedhost.jpg","aboutMe":"About Updated Host"}`,
			field:    "username",
			replaced: "updatedhost",
		},
		{
			path:     "/properties",
			name:     "Property",
			create:   `{"title":"New Property","description":"A beautiful new property","location":"123 Main St, Anytown, USA","pricePerNight":100,"bedroomCount":3,"bathroomCount":2,"maxGuestCount":6,"rating":4.5,"hostId":"host-id-4"}`,
			missing:  `{"title":"New Property","rating":4.5}`,
			message:  "All fields are required",
			replace:  `{"title":"Updated Property","description":"An updated property","location":"456 Elm St, Anytown, USA","pricePerNight":150,"bedroomCount":4,"bathroomCount":3,"maxGuestCount":8,"rating":4.8,"hostId":"host-id-4"}`,
			field:    "rating",
			replaced: 4.8,
		},
		{
			path:     "/bookings",
			name:     "Booking",
			create:   `{"checkinDate":"2025-07-01T14:00:00Z","checkoutDate":"2025-07-03T10:00:00Z","numberOfGuests":2,"totalPrice":300,"bookingStatus":"confirmed","userId":"user-id-1","propertyId":"property-id-1"}`,
			missing:  `{"numberOfGuests":2,"userId":"user-id-1"}`,
			message:  "All fields are required",
			replace:  `{"checkinDate":"2025-08-01T14:00:00Z","checkoutDate":"2025-08-05T10:00:00Z","numberOfGuests":3,"totalPrice":600,"bookingStatus":"cancelled","userId":"user-id-1","propertyId":"property-id-1"}`,
			field:    "bookingStatus",
			replaced: "cancelled",
		},
		{
			path:     "/reviews",
			name:     "Review",
			create:   `{"rating":5,"comment":"Great property!","userId":"user-id-1","propertyId":"property-id-2"}`,
			missing:  `{"rating":0,"comment":"Great property!","userId":"user-id-1","propertyId":"property-id-2"}`,
			message:  "All fields are required",
			replace:  `{"rating":4,"comment":"Good property","userId":"user-id-1","propertyId":"property-id-2"}`,
			field:    "rating",
			replaced: float64(4),
		},
		{
			path:     "/amenities",
			name:     "Amenity",
			create:   `{"name":"Sauna","description":"Finnish sauna"}`,
			missing:  `{"description":"Finnish sauna"}`,
			message:  "Name and description are required",
			replace:  `{"name":"Steam room","description":"Turkish bath"}`,
			field:    "name",
			replaced: "Steam room",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			api := newTestAPI(t)
			notFound := `{"error":"` + tc.name + ` not found"}`

			w := api.authed(http.MethodPost, tc.path, tc.missing)
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.JSONEq(t, `{"error":"`+tc.message+`"}`, w.Body.String())

			w = api.authed(http.MethodPost, tc.path, tc.create)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
			id, _ := decode[map[string]interface{}](t, w)["id"].(string)
			require.NotEmpty(t, id)

			w = api.authed(http.MethodGet, tc.path+"/"+id, "")
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, id, decode[map[string]interface{}](t, w)["id"])

			w = api.authed(http.MethodPut, tc.path+"/"+id, tc.replace)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			updated := decode[map[string]interface{}](t, w)
			assert.Equal(t, id, updated["id"])
			assert.Equal(t, tc.replaced, updated[tc.field])

			w = api.authed(http.MethodDelete, tc.path+"/"+id, "")
			assert.Equal(t, http.StatusNoContent, w.Code)
			assert.Empty(t, w.Body.String())

			for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
				body := ""
				if method == http.MethodPut {
					body = tc.replace
				}
				w = api.authed(method, tc.path+"/"+id, body)
				assert.Equal(t, http.StatusNotFound, w.Code, method)
				assert.JSONEq(t, notFound, w.Body.String(), method)
			}
		})
	}
}

// Test: fractional property ratings are accepted on create and replace
func TestPropertyFractionalRating(t *testing.T) {
	api := newTestAPI(t)

	w := api.authed(http.MethodPost, "/properties", `{"title":"New Property","description":"A beautiful new property","location":"123 Main St, Anytown, USA","pricePerNight":100,"bedroomCount":3,"bathroomCount":2,"maxGuestCount":6,"rating":4.5,"hostId":"host-id-4"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, 4.5, decode[map[string]interface{}](t, w)["rating"])

	w = api.authed(http.MethodPut, "/properties/property-id-0", `{"title":"Updated Property","description":"An updated property","location":"456 Elm St, Anytown, USA","pricePerNight":150,"bedroomCount":4,"bathroomCount":3,"maxGuestCount":8,"rating":4.8,"hostId":"host-id-0"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = api.authed(http.MethodGet, "/properties/property-id-0", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 4.8, decode[map[string]interface{}](t, w)["rating"])
}

func TestLongPasswordRejected(t *testing.T) {
	api := newTestAPI(t)

	password := strings.Repeat("p", 80)
	w := api.authed(http.MethodPost, "/users", `{"username":"longpass","password":"`+password+`","name":"Long","email":"longpass@example.com","phoneNumber":"1","profilePicture":"p.jpg"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"error":"Password must be at most 72 bytes"}`, w.Body.String())
}
