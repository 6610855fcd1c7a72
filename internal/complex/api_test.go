package complex_test

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/binagroup/complex-api-server/internal/complex"
	"github.com/binagroup/complex-api-server/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestEnvironment creates all dependencies needed for complex handler tests
func setupTestEnvironment(t *testing.T) (*gin.Engine, *gorm.DB, *complex.ComplexRepository) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	complexRepo := complex.NewComplexRepository()
	complexService := complex.NewComplexService(db, complexRepo)
	complexHandler := complex.NewComplexHandler(complexService)

	router := testutil.SetupTestRouter()
	router.POST("/complexes/create", complexHandler.Create)
	router.GET("/complexes/get", complexHandler.List)
	router.PUT("/complexes/update/:id", complexHandler.Update)
	router.DELETE("/complexes/delete/:id", complexHandler.Delete)

	return router, db, complexRepo
}

func createComplex(t *testing.T, router *gin.Engine, title string) complex.ComplexResponse {
	t.Helper()

	form := url.Values{}
	form.Set("title", title)
	form.Set("phone", "+994501234567")
	form.Set("openYear", "2010-01-01")

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/complexes/create",
		Form:   form,
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var details complex.ComplexResponse
	testutil.ParseEnvelope(t, recorder).ParseDetails(t, &details)
	return details
}

func TestCreateComplex_Success(t *testing.T) {
	router, _, _ := setupTestEnvironment(t)

	details := createComplex(t, router, "Park View")

	assert.NotZero(t, details.ID)
	assert.Equal(t, "Park View", details.Title)
	assert.Equal(t, "+994501234567", details.Phone)
	assert.Equal(t, "2010-01-01", details.OpenYear)
	assert.True(t, details.IsActive)
	assert.NotEmpty(t, details.CreatedDate)
	assert.Nil(t, details.UpdatedDate)
}

func TestCreateComplex_IDsNeverRepeat(t *testing.T) {
	router, _, _ := setupTestEnvironment(t)

	seen := map[uint32]bool{}
	for i := 0; i < 4; i++ {
		details := createComplex(t, router, fmt.Sprintf("Complex %d", i))
		assert.False(t, seen[details.ID], "id %d returned twice", details.ID)
		seen[details.ID] = true
	}
}

func TestCreateComplex_ValidationErrors(t *testing.T) {
	router, _, _ := setupTestEnvironment(t)

	testCases := []struct {
		name string
		form url.Values
	}{
		{
			name: "Missing title",
			form: url.Values{"phone": {"+994501234567"}},
		},
		{
			name: "Missing phone",
			form: url.Values{"title": {"Park View"}},
		},
		{
			name: "Foreign operator prefix",
			form: url.Values{"title": {"Park View"}, "phone": {"+994201234567"}},
		},
		{
			name: "Malformed email",
			form: url.Values{"title": {"Park View"}, "phone": {"+994501234567"}, "email": {"not-an-email"}},
		},
		{
			name: "Malformed web",
			form: url.Values{"title": {"Park View"}, "phone": {"+994501234567"}, "web": {"no dots here"}},
		},
		{
			name: "Malformed openYear",
			form: url.Values{"title": {"Park View"}, "phone": {"+994501234567"}, "openYear": {"01/01/2010"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/complexes/create",
				Form:   tc.form,
			})

			assert.Equal(t, http.StatusBadRequest, recorder.Code)

			env := testutil.ParseEnvelope(t, recorder)
			require.NotEmpty(t, env.Messages)
			assert.Equal(t, "VALIDATION_ERROR", env.Messages[0].Code)
			assert.Equal(t, http.StatusBadRequest, env.Messages[0].Status)
		})
	}
}

func TestCreateComplex_AllFailedFieldsReported(t *testing.T) {
	router, _, _ := setupTestEnvironment(t)

	// Both the phone and the email are invalid, both must be reported
	form := url.Values{}
	form.Set("title", "Park View")
	form.Set("phone", "12345")
	form.Set("email", "broken")

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/complexes/create",
		Form:   form,
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	env := testutil.ParseEnvelope(t, recorder)
	assert.Len(t, env.Messages, 2)
}

func TestListComplexes_Pagination(t *testing.T) {
	router, _, _ := setupTestEnvironment(t)

	for i := 0; i < 5; i++ {
		createComplex(t, router, fmt.Sprintf("Complex %d", i))
	}

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/complexes/get?limit=2&page=1",
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	env := testutil.ParseEnvelope(t, recorder)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, 1, env.Pagination.CurrentPage)
	assert.Equal(t, 3, env.Pagination.TotalPages)
	assert.Equal(t, int64(5), env.Pagination.TotalCount)

	var details []complex.ComplexResponse
	env.ParseDetails(t, &details)
	require.Len(t, details, 2)
	assert.Greater(t, details[0].ID, details[1].ID, "rows must be ordered by id descending")

	// Last page carries the remainder
	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/complexes/get?limit=2&page=3",
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	testutil.ParseEnvelope(t, recorder).ParseDetails(t, &details)
	assert.Len(t, details, 1)
}

func TestListComplexes_InvalidPage(t *testing.T) {
	router, _, _ := setupTestEnvironment(t)

	for i := 0; i < 3; i++ {
		createComplex(t, router, fmt.Sprintf("Complex %d", i))
	}

	testCases := []struct {
		name string
		url  string
	}{
		{name: "Page below one", url: "/complexes/get?limit=2&page=0"},
		{name: "Page beyond maximum", url: "/complexes/get?limit=2&page=3"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodGet,
				URL:    tc.url,
			})

			assert.Equal(t, http.StatusBadRequest, recorder.Code)

			env := testutil.ParseEnvelope(t, recorder)
			require.NotEmpty(t, env.Messages)
			assert.Equal(t, "INVALID_PAGE", env.Messages[0].Code)
		})
	}
}

func TestListComplexes_EmptyTable(t *testing.T) {
	router, _, _ := setupTestEnvironment(t)

	// With zero rows the maximum page is 0, so even page 1 is out of range
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/complexes/get?limit=3&page=1",
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	env := testutil.ParseEnvelope(t, recorder)
	require.NotEmpty(t, env.Messages)
	assert.Equal(t, "INVALID_PAGE", env.Messages[0].Code)
	assert.Contains(t, env.Messages[0].Message, "maximum of 0")
}

func TestUpdateComplex_Success(t *testing.T) {
	router, _, _ := setupTestEnvironment(t)

	created := createComplex(t, router, "Park View")

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    fmt.Sprintf("/complexes/update/%d", created.ID),
		Body:   map[string]string{"title": "Park View Residence"},
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var details complex.ComplexResponse
	testutil.ParseEnvelope(t, recorder).ParseDetails(t, &details)
	assert.Equal(t, "Park View Residence", details.Title)
	assert.Equal(t, "+994501234567", details.Phone, "untouched fields keep their value")
	require.NotNil(t, details.UpdatedDate)
	assert.NotEmpty(t, *details.UpdatedDate)
}

func TestUpdateComplex_NoChange(t *testing.T) {
	router, _, _ := setupTestEnvironment(t)

	created := createComplex(t, router, "Park View")

	// Same title, same openYear: nothing differs from the stored record
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    fmt.Sprintf("/complexes/update/%d", created.ID),
		Body:   map[string]string{"title": "Park View", "openYear": "2010-01-01"},
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	env := testutil.ParseEnvelope(t, recorder)
	require.NotEmpty(t, env.Messages)
	assert.Equal(t, "NO_UPDATE", env.Messages[0].Code)
}

func TestUpdateComplex_NotFound(t *testing.T) {
	router, _, _ := setupTestEnvironment(t)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    "/complexes/update/9999",
		Body:   map[string]string{"title": "Ghost"},
	})

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var body struct {
		ErrorCode     string  `json:"errorCode"`
		Status        int     `json:"status"`
		RejectedValue float64 `json:"rejectedValue"`
	}
	testutil.ParseResponse(t, recorder, &body)
	assert.Equal(t, "RESOURCE_NOT_FOUND", body.ErrorCode)
	assert.Equal(t, http.StatusNotFound, body.Status)
	assert.Equal(t, float64(9999), body.RejectedValue)
}

func TestDeleteComplex_SoftDelete(t *testing.T) {
	router, db, complexRepo := setupTestEnvironment(t)

	created := createComplex(t, router, "Park View")

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    fmt.Sprintf("/complexes/delete/%d", created.ID),
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	env := testutil.ParseEnvelope(t, recorder)
	require.NotEmpty(t, env.Messages)
	assert.Equal(t, "SUCCESS", env.Messages[0].Code)
	assert.Empty(t, env.Details)

	// Excluded from listing: the table is now "empty" for the list endpoint
	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/complexes/get?limit=3&page=1",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	// Still reachable by direct id lookup at the storage layer
	row, err := complexRepo.FindByID(context.Background(), db, created.ID)
	require.NoError(t, err)
	assert.False(t, row.IsActive)
	assert.NotNil(t, row.UpdatedDate, "deactivation must stamp updated_date")
}

func TestDeleteComplex_NotFound(t *testing.T) {
	router, _, _ := setupTestEnvironment(t)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    "/complexes/delete/424242",
	})

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var body struct {
		RejectedValue float64 `json:"rejectedValue"`
	}
	testutil.ParseResponse(t, recorder, &body)
	assert.Equal(t, float64(424242), body.RejectedValue)
}
