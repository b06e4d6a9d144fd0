package sales

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-sfm/internal/middleware"
)

type stubService struct {
	recordCalls int
	recordFn    func(ctx context.Context, executiveID string, req RecordSaleRequest) (SaleResponse, error)
}

func (s *stubService) Record(ctx context.Context, executiveID string, req RecordSaleRequest) (SaleResponse, error) {
	s.recordCalls++
	return s.recordFn(ctx, executiveID, req)
}
func (s *stubService) MySales(ctx context.Context, executiveID string, filter SalesFilterRequest) ([]SaleResponse, error) {
	return nil, nil
}
func (s *stubService) TeamSales(ctx context.Context, managerID string, filter TeamSalesFilterRequest) ([]SaleResponse, error) {
	return nil, nil
}
func (s *stubService) SumForExecutiveBetween(ctx context.Context, executiveID string, start, end time.Time) (float64, error) {
	return 0, nil
}

func recordBody(t *testing.T) string {
	t.Helper()
	body, err := json.Marshal(RecordSaleRequest{
		Date:     "2026-03-10",
		Location: "Riverside Market",
		Items:    []SaleItemRequest{{ProductID: uuid.New().String(), Quantity: 2}},
	})
	require.NoError(t, err)
	return string(body)
}

func TestHandler_Record_CachesResponseAndReleasesLock(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rdb, mock := redismock.NewClientMock()

	executiveID := uuid.New().String()
	resp := SaleResponse{
		ID:        uuid.New().String(),
		ReceiptNo: "SLS-000001",
		Date:      "2026-03-10",
		Amount:    600,
		Location:  "Riverside Market",
	}
	svc := &stubService{recordFn: func(ctx context.Context, execID string, req RecordSaleRequest) (SaleResponse, error) {
		return resp, nil
	}}

	r := gin.New()
	h := NewHandlerWithRedis(svc, rdb)
	r.POST("/sales",
		func(c *gin.Context) { c.Set("user_id", executiveID); c.Next() },
		middleware.Idempotency(rdb),
		h.Record,
	)

	cacheKey := "idemp:/sales:" + executiveID + ":req-42"
	lockKey := cacheKey + ":lock"
	cached, err := json.Marshal(resp)
	require.NoError(t, err)

	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
	mock.ExpectSet(cacheKey, cached, 24*time.Hour).SetVal("OK")
	mock.ExpectDel(lockKey).SetVal(1)

	req := httptest.NewRequest(http.MethodPost, "/sales", strings.NewReader(recordBody(t)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, svc.recordCalls)
	assert.Contains(t, w.Body.String(), "SLS-000001")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Record_RetryReplaysCachedResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rdb, mock := redismock.NewClientMock()

	executiveID := uuid.New().String()
	svc := &stubService{recordFn: func(ctx context.Context, execID string, req RecordSaleRequest) (SaleResponse, error) {
		return SaleResponse{ReceiptNo: "SLS-000001"}, nil
	}}

	r := gin.New()
	h := NewHandlerWithRedis(svc, rdb)
	r.POST("/sales",
		func(c *gin.Context) { c.Set("user_id", executiveID); c.Next() },
		middleware.Idempotency(rdb),
		h.Record,
	)

	cacheKey := "idemp:/sales:" + executiveID + ":req-42"
	cached, err := json.Marshal(SaleResponse{ReceiptNo: "SLS-000001", Amount: 600})
	require.NoError(t, err)
	mock.ExpectGet(cacheKey).SetVal(string(cached))

	req := httptest.NewRequest(http.MethodPost, "/sales", strings.NewReader(recordBody(t)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// Served from the cache: the sale is not recorded a second time.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, svc.recordCalls)
	assert.Contains(t, w.Body.String(), "SLS-000001")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Record_FailureKeepsNothingCached(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rdb, mock := redismock.NewClientMock()

	executiveID := uuid.New().String()
	svc := &stubService{recordFn: func(ctx context.Context, execID string, req RecordSaleRequest) (SaleResponse, error) {
		return SaleResponse{}, context.DeadlineExceeded
	}}

	r := gin.New()
	h := NewHandlerWithRedis(svc, rdb)
	r.POST("/sales",
		func(c *gin.Context) { c.Set("user_id", executiveID); c.Next() },
		middleware.Idempotency(rdb),
		h.Record,
	)

	cacheKey := "idemp:/sales:" + executiveID + ":req-42"
	lockKey := cacheKey + ":lock"
	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
	// No cache write on failure; the lock still releases so the client can retry.
	mock.ExpectDel(lockKey).SetVal(1)

	req := httptest.NewRequest(http.MethodPost, "/sales", strings.NewReader(recordBody(t)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 1, svc.recordCalls)
	assert.NoError(t, mock.ExpectationsWereMet())
}
