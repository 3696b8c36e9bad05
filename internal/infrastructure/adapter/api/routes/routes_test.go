package routes_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreport "github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/usecase/ocr"
	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/usecase/user"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/idgen"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/repository"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

// scriptedModel answers detection with a fixed reply and echoes extraction
type scriptedModel struct {
	mu           sync.Mutex
	detectReply  string
	instructions []string
}

func (m *scriptedModel) Infer(_ context.Context, req coreport.InferenceRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.instructions = append(m.instructions, req.Instruction)
	if strings.Contains(req.Instruction, "Regions to process") {
		return "  first block\n\nsecond block  ", nil
	}
	return m.detectReply, nil
}

func (m *scriptedModel) Name() string { return "scripted" }

func newTestServer(t *testing.T, model coreport.VisionModel) *gin.Engine {
	return newTestServerWithCredits(t, model, 5)
}

func newTestServerWithCredits(t *testing.T, model coreport.VisionModel, initialCredits int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewNoopLogger()

	testDB := database.NewTestDBManager(t, log)
	db := testDB.Manager.DB()
	tp := testDB.TimeProvider
	ids := idgen.NewUUIDGenerator(tp)

	userRepo := repository.NewUserRepository(db, log)
	txRepo := repository.NewTransactionRepository(db, log)
	logRepo := repository.NewProcessingLogRepository(db, log)

	userUseCase := user.NewUserUseCase(testDB.Manager.CreateUnitOfWork(), userRepo, txRepo, ids, tp, log, initialCredits)
	ocrUseCase := ocr.NewOCRUseCase(model, userRepo, logRepo, ids, tp, log, ocr.Config{})

	router := gin.New()
	routes.SetupMiddlewares(router, log, routes.MiddlewareConfig{
		CORSOrigins:  []string{"http://localhost:5173"},
		MaxBodyBytes: 1 << 20,
	})
	routes.SetupRoutes(router,
		handler.NewHealthHandler(testDB.Manager),
		handler.NewUserHandler(userUseCase, log),
		handler.NewOCRHandler(ocrUseCase, log),
	)
	return router
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouter_Health(t *testing.T) {
	router := newTestServer(t, nil)

	w := doJSON(t, router, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","version":"1.0.0"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_RequestIDIsEchoed(t *testing.T) {
	router := newTestServer(t, nil)

	w := doJSON(t, router, http.MethodGet, "/", nil, "X-Request-ID", "req-42")

	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
	var info dto.InfoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "SmartLensOCR Backend API", info.Name)
}

func TestRouter_ZeroInitialCreditsRoundTrip(t *testing.T) {
	router := newTestServerWithCredits(t, nil, 0)

	w := doJSON(t, router, http.MethodPost, "/api/users", map[string]string{"email": "empty@example.com"})
	require.Equal(t, http.StatusOK, w.Code)
	var created dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, int64(0), created.Credits)

	w = doJSON(t, router, http.MethodGet, "/api/users/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, created.Credits, fetched.Credits)
}

func TestRouter_CreditLedger(t *testing.T) {
	router := newTestServer(t, nil)

	w := doJSON(t, router, http.MethodPost, "/api/users", map[string]string{"email": "reader@example.com"})
	require.Equal(t, http.StatusOK, w.Code)
	var created dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, int64(5), created.Credits)

	w = doJSON(t, router, http.MethodPost, "/api/users", map[string]string{"email": "Reader@Example.com"})
	require.Equal(t, http.StatusOK, w.Code)
	var again dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &again))
	assert.Equal(t, created.ID, again.ID)

	for _, step := range []struct {
		amount   int64
		expected int64
	}{
		{10, 15},
		{-2, 13},
		{-100, 0},
	} {
		w = doJSON(t, router, http.MethodPost, "/api/users/"+created.ID+"/credits", map[string]any{"amount": step.amount})
		require.Equal(t, http.StatusOK, w.Code)
		var updated dto.UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		assert.Equal(t, step.expected, updated.Credits)
	}

	w = doJSON(t, router, http.MethodGet, "/api/users/"+created.ID+"/transactions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history dto.TransactionListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	require.Len(t, history.Transactions, 3)
	assert.Equal(t, int64(-100), history.Transactions[0].Amount)
	assert.Equal(t, "debit", history.Transactions[0].Type)

	w = doJSON(t, router, http.MethodGet, "/api/users/"+created.ID+"/usage", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":"`+created.ID+`","totalDebited":102}`, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/api/users/usr_unknown", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/users/usr_unknown/credits", map[string]any{"amount": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_OCRWithoutModel(t *testing.T) {
	router := newTestServer(t, nil)

	w := doJSON(t, router, http.MethodPost, "/api/detect-regions",
		map[string]string{"imageBase64": base64.StdEncoding.EncodeToString(pngBytes)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Gemini API key not configured", resp.Message)
}

func TestRouter_DetectThenExtract(t *testing.T) {
	model := &scriptedModel{
		detectReply: "```json\n" + `[{"description":"Heading","ymin":10,"xmin":20,"ymax":30,"xmax":40},{"ymin":50,"xmin":60,"ymax":70,"xmax":80}]` + "\n```",
	}
	router := newTestServer(t, model)

	w := doJSON(t, router, http.MethodPost, "/api/users", map[string]string{"email": "ocr@example.com"})
	var account dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &account))

	image := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes)
	w = doJSON(t, router, http.MethodPost, "/api/detect-regions", map[string]string{"imageBase64": image}, "X-User-ID", account.ID)
	require.Equal(t, http.StatusOK, w.Code)

	var detected dto.RegionsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detected))
	require.Len(t, detected.Regions, 2)
	assert.Equal(t, "Heading", detected.Regions[0].Description)
	assert.Equal(t, "Untitled", detected.Regions[1].Description)
	assert.Equal(t, 1, detected.Regions[0].Order)
	assert.Equal(t, 2, detected.Regions[1].Order)

	regions := []map[string]any{
		{"id": "c", "box": map[string]float64{"ymin": 1, "xmin": 1, "ymax": 2, "xmax": 2}, "order": 3, "description": "Footer", "isActive": false},
		{"id": "b", "box": map[string]float64{"ymin": 50, "xmin": 60, "ymax": 70, "xmax": 80}, "order": 2, "description": "Body", "isActive": true},
		{"id": "a", "box": map[string]float64{"ymin": 10, "xmin": 20, "ymax": 30, "xmax": 40}, "order": 1, "description": "Heading", "isActive": true},
	}
	w = doJSON(t, router, http.MethodPost, "/api/extract-text", map[string]any{"imageBase64": image, "regions": regions}, "X-User-ID", account.ID)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"extractedText":"first block\n\nsecond block"}`, w.Body.String())

	require.Len(t, model.instructions, 2)
	instruction := model.instructions[1]
	first := strings.Index(instruction, "Region 1:")
	second := strings.Index(instruction, "Region 2:")
	assert.True(t, first >= 0 && second > first)
	assert.NotContains(t, instruction, "Region 3:")
	assert.NotContains(t, instruction, "Footer")

	w = doJSON(t, router, http.MethodGet, "/api/users/"+account.ID+"/processing-logs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var logs dto.ProcessingLogListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logs))
	require.Len(t, logs.Logs, 2)
	assert.Equal(t, "extract_text", logs.Logs[0].Operation)
	assert.Equal(t, "detect_regions", logs.Logs[1].Operation)
}
