package fixture_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpsilva/oanda-api-v20/pkg/endpoints/orders"
	"github.com/hpsilva/oanda-api-v20/pkg/fixture"
)

func do(t *testing.T, server *httptest.Server, method, path, body string) (int, string) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, server.URL+path, reader)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(data)
}

func TestServer(t *testing.T) {
	server := httptest.NewServer(fixture.NewServer(orders.Endpoints(), orders.Fixtures))
	defer server.Close()

	listFixture, _ := orders.Fixtures.Lookup(orders.KeyOrderList)
	replaceFixture, _ := orders.Fixtures.Lookup(orders.KeyOrderReplace)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		want   string
	}{
		{"list", "GET", "/v3/accounts/001/orders", "", 200, string(listFixture.Response)},
		{"create", "POST", "/v3/accounts/001/orders", `{"order":{}}`, 201, "{}"},
		{"pending", "GET", "/v3/accounts/001/pendingOrders", "", 200, "{}"},
		{"details", "GET", "/v3/accounts/001/orders/2125", "", 200, "{}"},
		{"replace", "PUT", "/v3/accounts/001/orders/2125", `{"order":{}}`, 201, string(replaceFixture.Response)},
		{"cancel", "PUT", "/v3/accounts/001/orders/2125/cancel", "", 200, "{}"},
		{"client_extensions", "PUT", "/v3/accounts/001/orders/2125/clientExtensions", `{}`, 200, "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := do(t, server, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.want, body)
		})
	}
}

func TestServer_Errors(t *testing.T) {
	server := httptest.NewServer(fixture.NewServer(orders.Endpoints(), orders.Fixtures))
	defer server.Close()

	status, body := do(t, server, "POST", "/v3/accounts/001/orders", "not json")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, `"errorCode":"INVALID_BODY"`)

	status, body = do(t, server, "GET", "/v3/accounts/001/trades", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, body, "errorMessage")

	status, _ = do(t, server, "DELETE", "/v3/accounts/001/orders", "")
	assert.Equal(t, http.StatusMethodNotAllowed, status)
}
