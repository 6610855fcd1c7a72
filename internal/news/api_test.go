package news_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/binagroup/complex-api-server/internal/news"
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

	newsRepo := news.NewNewsRepository()
	newsService := news.NewNewsService(db, newsRepo)
	newsHandler := news.NewNewsHandler(newsService)

	router := testutil.SetupTestRouter()
	router.POST("/latestNews/create", newsHandler.Create)
	router.GET("/latestNews/get", newsHandler.List)
	router.PUT("/latestNews/update/:id", newsHandler.Update)
	router.DELETE("/latestNews/delete/:id", newsHandler.Delete)

	return router
}

func createNews(t *testing.T, router *gin.Engine, title, newsTime string) news.NewsResponse {
	t.Helper()

	form := url.Values{}
	form.Set("title", title)
	form.Set("description", "Annual residents meeting announcement")
	form.Set("newsTime", newsTime)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/latestNews/create",
		Form:   form,
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var details news.NewsResponse
	testutil.ParseEnvelope(t, recorder).ParseDetails(t, &details)
	return details
}

func TestCreateNews_Success(t *testing.T) {
	router := setupTestEnvironment(t)

	details := createNews(t, router, "Meeting", "2024-06-15")

	assert.NotZero(t, details.ID)
	assert.Equal(t, "2024-06-15", details.NewsTime)
	assert.True(t, details.IsActive)
}

func TestCreateNews_NewsTimeRequired(t *testing.T) {
	router := setupTestEnvironment(t)

	form := url.Values{}
	form.Set("title", "Meeting")
	form.Set("description", "Annual residents meeting announcement")

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/latestNews/create",
		Form:   form,
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	env := testutil.ParseEnvelope(t, recorder)
	require.NotEmpty(t, env.Messages)
	assert.Equal(t, "VALIDATION_ERROR", env.Messages[0].Code)
}

func TestUpdateNews_NewsTimeChanged(t *testing.T) {
	router := setupTestEnvironment(t)

	created := createNews(t, router, "Meeting", "2024-06-15")

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    fmt.Sprintf("/latestNews/update/%d", created.ID),
		Body:   map[string]string{"newsTime": "2024-06-22"},
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var details news.NewsResponse
	testutil.ParseEnvelope(t, recorder).ParseDetails(t, &details)
	assert.Equal(t, "2024-06-22", details.NewsTime)
	assert.NotNil(t, details.UpdatedDate)
}

func TestUpdateNews_SameNewsTimeIsNoChange(t *testing.T) {
	router := setupTestEnvironment(t)

	created := createNews(t, router, "Meeting", "2024-06-15")

	// Sending the stored date again must not count as an update
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    fmt.Sprintf("/latestNews/update/%d", created.ID),
		Body:   map[string]string{"newsTime": "2024-06-15"},
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	env := testutil.ParseEnvelope(t, recorder)
	require.NotEmpty(t, env.Messages)
	assert.Equal(t, "NO_UPDATE", env.Messages[0].Code)
}

func TestListNews_DefaultPageSize(t *testing.T) {
	router := setupTestEnvironment(t)

	for i := 0; i < 6; i++ {
		createNews(t, router, fmt.Sprintf("News %d", i), "2024-06-15")
	}

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/latestNews/get",
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	env := testutil.ParseEnvelope(t, recorder)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, 2, env.Pagination.TotalPages)

	var details []news.NewsResponse
	env.ParseDetails(t, &details)
	assert.Len(t, details, 5)
}

func TestDeleteNews_SoftDelete(t *testing.T) {
	router := setupTestEnvironment(t)

	created := createNews(t, router, "Meeting", "2024-06-15")

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    fmt.Sprintf("/latestNews/delete/%d", created.ID),
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    fmt.Sprintf("/latestNews/delete/%d", created.ID),
	})
	// A second delete still finds the row: direct lookups ignore the flag
	assert.Equal(t, http.StatusOK, recorder.Code)
}
