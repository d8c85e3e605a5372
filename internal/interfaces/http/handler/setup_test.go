package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	ledgerapp "github.com/findash/backend/internal/application/ledger"
	marketapp "github.com/findash/backend/internal/application/market"
	reportapp "github.com/findash/backend/internal/application/report"
	"github.com/findash/backend/internal/domain/statement"
	"github.com/findash/backend/internal/infrastructure/cache"
	"github.com/findash/backend/internal/infrastructure/persistence/memory"
	"github.com/findash/backend/internal/interfaces/http/middleware"
	"github.com/findash/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const topicABC = "บริษัท ABC จำกัด"

// testEnv serves every API route over a freshly seeded store
type testEnv struct {
	engine *gin.Engine
	store  *memory.Storage
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	middleware.SetupValidator()

	store, err := memory.NewSeededStorage(context.Background(), "")
	require.NoError(t, err)

	queryCache := cache.NewQueryCache(time.Minute, time.Minute)
	reportService := reportapp.NewReportService(
		store.ProfitLoss(), store.BalanceSheets(), store.CashFlows(),
		reportapp.WithQueryCache(queryCache),
	)
	ledgerService := ledgerapp.NewLedgerService(store.PlAccounts(), store.IoMappings(), nil)
	marketService := marketapp.NewMarketService(store.Companies(), store.Market(), nil)

	engine := gin.New()
	engine.GET("/health", NewSystemHandler("findash-test", "test", store).Health)

	r := router.NewRouter(engine)
	r.RegisterGroups(StatementRoutes(NewReportHandler(reportService))...)
	r.RegisterGroups(LedgerRoutes(NewLedgerHandler(ledgerService))...)
	r.RegisterGroups(CompanyRoutes(NewCompanyHandler(marketService)))
	r.RegisterGroups(MarketRoutes(NewMarketHandler(marketService))...)
	r.Setup()

	return &testEnv{engine: engine, store: store}
}

func (e *testEnv) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

// findProfitLoss returns the seeded statement for topic and period
func (e *testEnv) findProfitLoss(t *testing.T, topic string, period statement.Period) statement.ProfitLossStatement {
	t.Helper()
	for _, s := range e.store.ProfitLoss().FindAll(context.Background()) {
		if s.Topic == topic && s.Period == period {
			return s
		}
	}
	require.Failf(t, "statement not seeded", "%s %s", topic, period)
	return statement.ProfitLossStatement{}
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func query(path string, params map[string]string) string {
	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}
	if len(values) == 0 {
		return path
	}
	return path + "?" + values.Encode()
}

