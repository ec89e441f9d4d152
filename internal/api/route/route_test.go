package route

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexeykadochnik0v/nextlevel-backend/internal/api/response"
	"github.com/alexeykadochnik0v/nextlevel-backend/internal/application"
	"github.com/alexeykadochnik0v/nextlevel-backend/internal/dispatch"
	"github.com/alexeykadochnik0v/nextlevel-backend/internal/docstore"
	"github.com/alexeykadochnik0v/nextlevel-backend/internal/notification"
	"github.com/alexeykadochnik0v/nextlevel-backend/internal/offers"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	store := docstore.NewMemory()
	notifications := notification.NewService(store, nil, log)
	dispatcher := dispatch.New(store, notifications, log)
	ledger := application.NewLedger(store, dispatcher, nil, log)
	offerSvc := offers.NewService(store)

	app := fiber.New()
	app.Use(RecoverPanic())
	app.Use(RequestID())
	require.NoError(t, RegisterApplicationRoutes(app, ledger, offerSvc))
	require.NoError(t, RegisterNotificationRoutes(app, notifications))
	require.NoError(t, RegisterOfferRoutes(app, offerSvc))

	t.Cleanup(notifications.Close)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, headers map[string]string) (int, response.CommonResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var common response.CommonResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&common))
	return resp.StatusCode, common
}

var (
	employerHeaders = map[string]string{
		"X-User-Id":   "employer-1",
		"X-User-Name": "Acme HR",
		"X-User-Role": "employer",
	}
	studentHeaders = map[string]string{
		"X-User-Id":   "student-1",
		"X-User-Name": "Dana",
		"X-User-Role": "student",
	}
)

func TestIdentityRequired(t *testing.T) {
	app := newTestApp(t)

	code, common := doJSON(t, app, http.MethodGet, "/notifications/", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.False(t, common.Success)
}

func TestSubmitJobUnknownVacancy(t *testing.T) {
	app := newTestApp(t)

	code, _ := doJSON(t, app, http.MethodPost, "/applications/job/", fiber.Map{
		"jobId":       "nope",
		"coverLetter": "hi",
	}, studentHeaders)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestJobApplicationFlow(t *testing.T) {
	app := newTestApp(t)

	code, common := doJSON(t, app, http.MethodPost, "/vacancies/", fiber.Map{
		"title": "Go developer",
	}, employerHeaders)
	require.Equal(t, http.StatusOK, code)
	vacancy := common.Data.(map[string]interface{})
	vacancyID := vacancy["id"].(string)

	code, common = doJSON(t, app, http.MethodPost, "/applications/job/", fiber.Map{
		"jobId":       vacancyID,
		"coverLetter": "I want this job",
	}, studentHeaders)
	require.Equal(t, http.StatusOK, code)
	require.True(t, common.Success)
	submitted := common.Data.(map[string]interface{})
	appID := submitted["id"].(string)
	assert.Equal(t, "pending", submitted["status"])
	assert.Equal(t, "Go developer", submitted["jobTitle"])

	// The submission lands in the employer's inbox and notification list.
	code, common = doJSON(t, app, http.MethodGet, "/applications/job/inbox", nil, employerHeaders)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, common.Data.([]interface{}), 1)

	code, common = doJSON(t, app, http.MethodGet, "/notifications/", nil, employerHeaders)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, common.Data.([]interface{}), 1)

	// Only the vacancy owner may approve.
	code, _ = doJSON(t, app, http.MethodPost, "/applications/job/"+appID+"/approve", nil, studentHeaders)
	assert.Equal(t, http.StatusForbidden, code)

	code, common = doJSON(t, app, http.MethodPost, "/applications/job/"+appID+"/approve", nil, employerHeaders)
	require.Equal(t, http.StatusOK, code)
	require.True(t, common.Success)

	// A repeated approval conflicts instead of duplicating the fan-out.
	code, _ = doJSON(t, app, http.MethodPost, "/applications/job/"+appID+"/approve", nil, employerHeaders)
	assert.Equal(t, http.StatusConflict, code)

	// The applicant sees the decision and the chat notice, both unread.
	code, common = doJSON(t, app, http.MethodGet, "/notifications/feed", nil, studentHeaders)
	require.Equal(t, http.StatusOK, code)
	feed := common.Data.(map[string]interface{})
	assert.Len(t, feed["notifications"].([]interface{}), 2)
	assert.Equal(t, float64(2), feed["unreadCount"])

	code, common = doJSON(t, app, http.MethodPost, "/notifications/read-all", nil, studentHeaders)
	require.Equal(t, http.StatusOK, code)

	code, common = doJSON(t, app, http.MethodGet, "/notifications/feed", nil, studentHeaders)
	require.Equal(t, http.StatusOK, code)
	feed = common.Data.(map[string]interface{})
	assert.Equal(t, float64(0), feed["unreadCount"])
}

func TestRejectWithEmptyBody(t *testing.T) {
	app := newTestApp(t)

	code, common := doJSON(t, app, http.MethodPost, "/vacancies/", fiber.Map{
		"title": "Go developer",
	}, employerHeaders)
	require.Equal(t, http.StatusOK, code)
	vacancyID := common.Data.(map[string]interface{})["id"].(string)

	code, common = doJSON(t, app, http.MethodPost, "/applications/job/", fiber.Map{
		"jobId":       vacancyID,
		"coverLetter": "hi",
	}, studentHeaders)
	require.Equal(t, http.StatusOK, code)
	appID := common.Data.(map[string]interface{})["id"].(string)

	// The reject reason is optional; no body at all still works.
	req := httptest.NewRequest(http.MethodPost, "/applications/job/"+appID+"/reject", nil)
	for k, v := range employerHeaders {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSubmitJobValidationStatus(t *testing.T) {
	app := newTestApp(t)

	code, common := doJSON(t, app, http.MethodPost, "/vacancies/", fiber.Map{
		"title": "Go developer",
	}, employerHeaders)
	require.Equal(t, http.StatusOK, code)
	vacancyID := common.Data.(map[string]interface{})["id"].(string)

	code, common = doJSON(t, app, http.MethodPost, "/applications/job/", fiber.Map{
		"jobId":       vacancyID,
		"coverLetter": "   ",
	}, studentHeaders)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, common.Success)
}
