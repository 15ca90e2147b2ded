package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"pocketledger/internal/insight"
	"pocketledger/internal/logger"
	"pocketledger/internal/models"
	"pocketledger/internal/pagination"
	"pocketledger/internal/services"
	"pocketledger/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

func testNow() time.Time {
	return time.Date(2024, time.March, 17, 15, 30, 0, 0, time.UTC)
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

// --- mock transaction service ---

type mockTransactionService struct {
	createTransactionFn  func(rawAmount string, date models.Date, category models.Category, txType models.TransactionType, note string) (*models.Transaction, error)
	listTransactionsFn   func(page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	recentTransactionsFn func(limit int) []models.Transaction
	getTransactionByIDFn func(id string) (*models.Transaction, error)
	deleteTransactionFn  func(id string) error
}

func (m *mockTransactionService) CreateTransaction(_ context.Context, rawAmount string, date models.Date, category models.Category, txType models.TransactionType, note string) (*models.Transaction, error) {
	if m.createTransactionFn != nil {
		return m.createTransactionFn(rawAmount, date, category, txType, note)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) ListTransactions(page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	if m.listTransactionsFn != nil {
		return m.listTransactionsFn(page)
	}
	resp := pagination.NewPageResponse([]models.Transaction{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockTransactionService) RecentTransactions(limit int) []models.Transaction {
	if m.recentTransactionsFn != nil {
		return m.recentTransactionsFn(limit)
	}
	return []models.Transaction{}
}

func (m *mockTransactionService) GetTransactionByID(id string) (*models.Transaction, error) {
	if m.getTransactionByIDFn != nil {
		return m.getTransactionByIDFn(id)
	}
	return &models.Transaction{ID: id}, nil
}

func (m *mockTransactionService) DeleteTransaction(_ context.Context, id string) error {
	if m.deleteTransactionFn != nil {
		return m.deleteTransactionFn(id)
	}
	return nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

// --- mock analysis service ---

type mockAnalysisService struct {
	analyzeFn func(filter models.FilterState, now time.Time) (*services.Analysis, error)
}

func (m *mockAnalysisService) FilteredTransactions(models.FilterState, time.Time) []models.Transaction {
	return []models.Transaction{}
}

func (m *mockAnalysisService) Analyze(filter models.FilterState, now time.Time) (*services.Analysis, error) {
	if m.analyzeFn != nil {
		return m.analyzeFn(filter, now)
	}
	return &services.Analysis{Filter: filter, Context: filter.ContextLabel(), Summary: services.Aggregate(nil)}, nil
}

var _ services.AnalysisServicer = (*mockAnalysisService)(nil)

// --- mock insight service ---

type mockInsightService struct {
	requestInsightFn func(filter models.FilterState) (insight.Snapshot, error)
	resetInsightFn   func() (insight.Snapshot, error)
	status           insight.Snapshot
}

func (m *mockInsightService) RequestInsight(_ context.Context, filter models.FilterState, _ time.Time) (insight.Snapshot, error) {
	if m.requestInsightFn != nil {
		return m.requestInsightFn(filter)
	}
	return insight.Snapshot{State: insight.StateSucceeded}, nil
}

func (m *mockInsightService) Status() insight.Snapshot {
	return m.status
}

func (m *mockInsightService) ResetInsight() (insight.Snapshot, error) {
	if m.resetInsightFn != nil {
		return m.resetInsightFn()
	}
	return insight.Snapshot{State: insight.StateIdle}, nil
}

var _ services.InsightServicer = (*mockInsightService)(nil)
