package meta_test

import (
	"net/http"
	"testing"

	"github.com/binagroup/complex-api-server/internal/meta"
	"github.com/binagroup/complex-api-server/internal/shared/database"
	"github.com/binagroup/complex-api-server/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	cfg := testutil.NewTestConfig()
	metaHandler := meta.NewHandler(cfg, &database.DB{DB: db})

	router := testutil.SetupTestRouter()
	router.GET("/health", metaHandler.Health)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/health",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Status  string `json:"status"`
		Service struct {
			Name string `json:"name"`
		} `json:"service"`
		Checks struct {
			Database struct {
				Status string `json:"status"`
			} `json:"database"`
		} `json:"checks"`
	}
	testutil.ParseResponse(t, recorder, &body)

	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, cfg.App.Name, body.Service.Name)
	assert.Equal(t, "up", body.Checks.Database.Status)
}
