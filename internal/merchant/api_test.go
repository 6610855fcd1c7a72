package merchant_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/binagroup/complex-api-server/internal/merchant"
	"github.com/binagroup/complex-api-server/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestEnvironment(t *testing.T) *gin.Engine {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	merchantRepo := merchant.NewMerchantRepository()
	merchantService := merchant.NewMerchantService(db, merchantRepo)
	merchantHandler := merchant.NewMerchantHandler(merchantService)

	router := testutil.SetupTestRouter()
	router.POST("/merchants/create", merchantHandler.Create)
	router.GET("/merchants/get", merchantHandler.List)
	router.PUT("/merchants/update/:id", merchantHandler.Update)
	router.DELETE("/merchants/delete/:id", merchantHandler.Delete)

	return router
}

func createMerchant(t *testing.T, router *gin.Engine, title string) merchant.MerchantResponse {
	t.Helper()

	form := url.Values{}
	form.Set("title", title)
	form.Set("phone", "+994702345678")

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/merchants/create",
		Form:   form,
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var details merchant.MerchantResponse
	testutil.ParseEnvelope(t, recorder).ParseDetails(t, &details)
	return details
}

func TestCreateMerchant_Success(t *testing.T) {
	router := setupTestEnvironment(t)

	details := createMerchant(t, router, "Bravo Market")

	assert.NotZero(t, details.ID)
	assert.Equal(t, "Bravo Market", details.Title)
	assert.Equal(t, "+994702345678", details.Phone)
	assert.True(t, details.IsActive)
	assert.Nil(t, details.UpdatedDate)
}

func TestCreateMerchant_InvalidPhone(t *testing.T) {
	router := setupTestEnvironment(t)

	form := url.Values{}
	form.Set("title", "Bravo Market")
	form.Set("phone", "+99470234567") // one digit short

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/merchants/create",
		Form:   form,
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	env := testutil.ParseEnvelope(t, recorder)
	require.NotEmpty(t, env.Messages)
	assert.Equal(t, "VALIDATION_ERROR", env.Messages[0].Code)
}

func TestListMerchants_Pagination(t *testing.T) {
	router := setupTestEnvironment(t)

	for i := 0; i < 7; i++ {
		createMerchant(t, router, fmt.Sprintf("Merchant %d", i))
	}

	// Default limit is 6, so 7 rows make two pages
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/merchants/get?page=2",
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	env := testutil.ParseEnvelope(t, recorder)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, 2, env.Pagination.CurrentPage)
	assert.Equal(t, 2, env.Pagination.TotalPages)

	var details []merchant.MerchantResponse
	env.ParseDetails(t, &details)
	assert.Len(t, details, 1)
}

func TestUpdateMerchant_PartialChange(t *testing.T) {
	router := setupTestEnvironment(t)

	created := createMerchant(t, router, "Bravo Market")

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    fmt.Sprintf("/merchants/update/%d", created.ID),
		Body:   map[string]string{"address": "28 May street 4"},
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var details merchant.MerchantResponse
	testutil.ParseEnvelope(t, recorder).ParseDetails(t, &details)
	assert.Equal(t, "28 May street 4", details.Address)
	assert.Equal(t, "Bravo Market", details.Title)
	assert.NotNil(t, details.UpdatedDate)
}

func TestUpdateMerchant_NoChange(t *testing.T) {
	router := setupTestEnvironment(t)

	created := createMerchant(t, router, "Bravo Market")

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    fmt.Sprintf("/merchants/update/%d", created.ID),
		Body:   map[string]string{},
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	env := testutil.ParseEnvelope(t, recorder)
	require.NotEmpty(t, env.Messages)
	assert.Equal(t, "NO_UPDATE", env.Messages[0].Code)
}

func TestDeleteMerchant_ExcludedFromList(t *testing.T) {
	router := setupTestEnvironment(t)

	kept := createMerchant(t, router, "Kept Market")
	removed := createMerchant(t, router, "Removed Market")

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    fmt.Sprintf("/merchants/delete/%d", removed.ID),
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/merchants/get?page=1",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	env := testutil.ParseEnvelope(t, recorder)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, int64(1), env.Pagination.TotalCount)

	var details []merchant.MerchantResponse
	env.ParseDetails(t, &details)
	require.Len(t, details, 1)
	assert.Equal(t, kept.ID, details[0].ID)
}
