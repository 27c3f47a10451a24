package orders

import (
	"net/http"

	"github.com/hpsilva/oanda-api-v20/pkg/core"
)

// Placeholder names used by the order templates.
const (
	AccountID = "accountID"
	OrderID   = "orderID"
)

var endpoints = [...]core.Endpoint{
	core.OpOrderCreate: {
		Op:             core.OpOrderCreate,
		Template:       "v3/accounts/{accountID}/orders",
		Method:         http.MethodPost,
		ExpectedStatus: http.StatusCreated,
		Attribute:      core.AttrData,
	},
	core.OpOrderList: {
		Op:             core.OpOrderList,
		Template:       "v3/accounts/{accountID}/orders",
		Method:         http.MethodGet,
		ExpectedStatus: http.StatusOK,
		Attribute:      core.AttrParams,
		FixtureKey:     KeyOrderList,
	},
	core.OpOrdersPending: {
		Op:             core.OpOrdersPending,
		Template:       "v3/accounts/{accountID}/pendingOrders",
		Method:         http.MethodGet,
		ExpectedStatus: http.StatusOK,
		Attribute:      core.AttrNone,
	},
	core.OpOrderDetails: {
		Op:             core.OpOrderDetails,
		Template:       "v3/accounts/{accountID}/orders/{orderID}",
		Method:         http.MethodGet,
		ExpectedStatus: http.StatusOK,
		Attribute:      core.AttrNone,
	},
	core.OpOrderReplace: {
		Op:             core.OpOrderReplace,
		Template:       "v3/accounts/{accountID}/orders/{orderID}",
		Method:         http.MethodPut,
		ExpectedStatus: http.StatusCreated,
		Attribute:      core.AttrData,
		FixtureKey:     KeyOrderReplace,
	},
	core.OpOrderCancel: {
		Op:             core.OpOrderCancel,
		Template:       "v3/accounts/{accountID}/orders/{orderID}/cancel",
		Method:         http.MethodPut,
		ExpectedStatus: http.StatusOK,
		Attribute:      core.AttrNone,
	},
	core.OpOrderClientExtensions: {
		Op:             core.OpOrderClientExtensions,
		Template:       "v3/accounts/{accountID}/orders/{orderID}/clientExtensions",
		Method:         http.MethodPut,
		ExpectedStatus: http.StatusOK,
		Attribute:      core.AttrData,
	},
}

// Endpoint returns the descriptor of op.
func Endpoint(op core.Operation) (core.Endpoint, bool) {
	if op < 0 || int(op) >= len(endpoints) {
		return core.Endpoint{}, false
	}
	return endpoints[op], true
}

// Endpoints returns a copy of all descriptors in operation order.
func Endpoints() []core.Endpoint {
	out := make([]core.Endpoint, len(endpoints))
	copy(out, endpoints[:])
	return out
}

// New builds a request for op. orderID is ignored by endpoints whose
// template has no order placeholder.
func New(op core.Operation, accountID, orderID string) (*core.Request, error) {
	ep, ok := Endpoint(op)
	if !ok {
		return nil, core.ErrUnknownOperation
	}
	return core.NewRequest(ep, core.PathParams{
		AccountID: accountID,
		OrderID:   orderID,
	})
}

// NewOrderCreate builds a request that creates an order for an account.
// The order specification is set with SetData.
func NewOrderCreate(accountID string) (*core.Request, error) {
	return New(core.OpOrderCreate, accountID, "")
}

// NewOrderList builds a request that lists the orders of an account.
// Filters such as instrument, state or count are set with SetParams.
func NewOrderList(accountID string) (*core.Request, error) {
	return New(core.OpOrderList, accountID, "")
}

// NewOrdersPending builds a request that lists the pending orders of an account.
func NewOrdersPending(accountID string) (*core.Request, error) {
	return New(core.OpOrdersPending, accountID, "")
}

// NewOrderDetails builds a request for a single order.
func NewOrderDetails(accountID, orderID string) (*core.Request, error) {
	return New(core.OpOrderDetails, accountID, orderID)
}

// NewOrderReplace builds a request that cancels an order and creates its
// replacement. The replacing order is set with SetData.
func NewOrderReplace(accountID, orderID string) (*core.Request, error) {
	return New(core.OpOrderReplace, accountID, orderID)
}

// NewOrderCancel builds a request that cancels a pending order.
func NewOrderCancel(accountID, orderID string) (*core.Request, error) {
	return New(core.OpOrderCancel, accountID, orderID)
}

// NewOrderClientExtensions builds a request that updates the client
// extensions of an order. Accounts associated with MT4 must not set,
// modify or delete client extensions.
func NewOrderClientExtensions(accountID, orderID string) (*core.Request, error) {
	return New(core.OpOrderClientExtensions, accountID, orderID)
}
