package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"freightdesk/internal/domain"
	"freightdesk/internal/freight"
	"freightdesk/internal/handler"
	"freightdesk/internal/router"
	"freightdesk/mocks"
)

type fixture struct {
	engine   *gin.Engine
	health   *mocks.MockHealthChecker
	ewayBill *mocks.MockEwayBillService
}

func newFixture() *fixture {
	gin.SetMode(gin.TestMode)
	f := &fixture{
		health:   new(mocks.MockHealthChecker),
		ewayBill: new(mocks.MockEwayBillService),
	}
	f.engine = router.Setup(router.Handlers{
		Health:      handler.NewHealthHandler(f.health),
		Freight:     handler.NewFreightHandler(new(mocks.MockFreightService)),
		Consignment: handler.NewConsignmentHandler(new(mocks.MockConsignmentService)),
		Invoice:     handler.NewInvoiceHandler(new(mocks.MockInvoiceService)),
		EwayBill:    handler.NewEwayBillHandler(f.ewayBill),
	}, []string{"http://localhost:3000"}, zap.NewNop())
	return f
}

func TestSetup_RegistersRoutes(t *testing.T) {
	f := newFixture()

	want := map[string]bool{
		"GET /healthz":                     true,
		"GET /readyz":                      true,
		"GET /swagger/*any":                true,
		"POST /api/v1/freight/quote":       true,
		"POST /api/v1/freight/tax":         true,
		"GET /api/v1/consignments":         true,
		"POST /api/v1/invoices/preview":    true,
		"POST /api/v1/invoices":            true,
		"GET /api/v1/invoices":             true,
		"GET /api/v1/invoices/:id":         true,
		"POST /api/v1/invoices/:id/export": true,
		"GET /api/v1/eway-bills":           true,
		"GET /api/v1/eway-bills/summary":   true,
		"GET /api/v1/eway-bills/export":    true,
		"POST /api/v1/eway-bills":          true,
	}
	for _, r := range f.engine.Routes() {
		delete(want, r.Method+" "+r.Path)
	}
	assert.Empty(t, want, "missing routes")
}

func TestSetup_SummaryThroughMiddleware(t *testing.T) {
	f := newFixture()
	f.ewayBill.On("Summary", mock.Anything).Return(&freight.ExpirySummary{Total: 1, Active: 1}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/eway-bills/summary", http.NoBody)
	req.Header.Set("Origin", "http://localhost:3000")
	f.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Body.String(), `"active":1`)
}

func TestSetup_ErrorEnvelope(t *testing.T) {
	f := newFixture()
	f.ewayBill.On("List", mock.Anything, domain.EwayBillFilter{Status: "soon"}).Return(nil, domain.ErrInvalidStatusFilter)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/eway-bills?status=soon", http.NoBody)
	f.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"error":{"code":"INVALID_STATUS","message":"unknown status filter"}}`, w.Body.String())
}
