package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/DanielPopoola/doga-whatsapp-agent/internal/application/services"
	"github.com/DanielPopoola/doga-whatsapp-agent/internal/application/services/testhelpers"
	"github.com/DanielPopoola/doga-whatsapp-agent/internal/interfaces/rest/handlers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	mux     *http.ServeMux
	orders  *testhelpers.MemoryOrderLedger
	gateway *testhelpers.MockGateway
}

func newFixture(t *testing.T, withGateway bool) *fixture {
	t.Helper()
	logger := testhelpers.DiscardLogger()
	f := &fixture{
		mux:    http.NewServeMux(),
		orders: testhelpers.NewMemoryOrderLedger(),
	}

	dispatcher := services.NewDispatcher(nil, testhelpers.OperatorNumber, logger)
	if withGateway {
		f.gateway = new(testhelpers.MockGateway)
		dispatcher = services.NewDispatcher(f.gateway, testhelpers.OperatorNumber, logger)
	}

	router := services.NewRouter(
		testhelpers.DefaultCatalog(t),
		f.orders,
		testhelpers.NewMemoryPaymentLedger(),
		dispatcher,
		&testhelpers.RecordingPrinter{},
		testhelpers.OperatorNumber,
		10,
		logger,
	)
	handlers.NewHandlers(router, logger).Register(f.mux)
	return f
}

func postForm(mux http.Handler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/whatsapp", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestInbound_FallbackReplyIsOneMessage(t *testing.T) {
	f := newFixture(t, false)

	rec := postForm(f.mux, url.Values{"Body": {"1"}, "From": {testhelpers.CustomerFrom}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/xml", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "<Response>")
	assert.Equal(t, 1, strings.Count(body, "<Message"))
	assert.Contains(t, body, "Logo Design")
	assert.Contains(t, body, "KES 1500.00")

	orders := f.orders.All()
	require.Len(t, orders, 1)
	assert.Equal(t, testhelpers.CustomerNumber, orders[0].CustomerAddress.String())
}

func TestInbound_EnrichedPathRepliesEmpty(t *testing.T) {
	f := newFixture(t, true)
	f.gateway.On("SendText", mock.Anything, testhelpers.OperatorFrom, mock.Anything).Return(nil).Once()
	f.gateway.On("SendTextWithAction", mock.Anything, testhelpers.CustomerFrom, mock.Anything, mock.Anything).
		Return(nil).Once()

	rec := postForm(f.mux, url.Values{"Body": {"1"}, "From": {testhelpers.CustomerFrom}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<Response")
	assert.NotContains(t, rec.Body.String(), "<Message")
	f.gateway.AssertExpectations(t)
}

func TestInbound_Menu(t *testing.T) {
	f := newFixture(t, false)

	rec := postForm(f.mux, url.Values{"Body": {"menu"}, "From": {testhelpers.CustomerFrom}})

	assert.Equal(t, 1, strings.Count(rec.Body.String(), "<Message"))
	assert.Contains(t, rec.Body.String(), "Social Media Kit")
	assert.Empty(t, f.orders.All())
}

func TestInbound_MalformedFormGetsHelp(t *testing.T) {
	f := newFixture(t, false)
	req := httptest.NewRequest(http.MethodPost, "/whatsapp", strings.NewReader("Body=%zz"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	f.mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "menu")
	assert.Empty(t, f.orders.All())
}

func TestInbound_RejectsGet(t *testing.T) {
	f := newFixture(t, false)
	rec := httptest.NewRecorder()

	f.mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/whatsapp", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHealth(t *testing.T) {
	f := newFixture(t, false)
	rec := httptest.NewRecorder()

	f.mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
