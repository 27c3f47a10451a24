// Package orders describes the order endpoints of the v20 REST API.
//
// Every operation is one immutable core.Endpoint in a table; the
// constructors bind account and order identifiers to produce a
// core.Request:
//
//   - NewOrderCreate: POST v3/accounts/{accountID}/orders, 201, data
//   - NewOrderList: GET v3/accounts/{accountID}/orders, 200, params
//   - NewOrdersPending: GET v3/accounts/{accountID}/pendingOrders, 200
//   - NewOrderDetails: GET v3/accounts/{accountID}/orders/{orderID}, 200
//   - NewOrderReplace: PUT v3/accounts/{accountID}/orders/{orderID}, 201, data
//   - NewOrderCancel: PUT v3/accounts/{accountID}/orders/{orderID}/cancel, 200
//   - NewOrderClientExtensions: PUT v3/accounts/{accountID}/orders/{orderID}/clientExtensions, 200, data
//
// Example usage:
//
//	req, err := orders.NewOrderCreate("101-004-1234567-001")
//	if err != nil {
//		return err
//	}
//	err = req.SetData(core.Params{"order": map[string]any{
//		"instrument": "EUR_USD",
//		"units":      "100",
//		"type":       "MARKET",
//	}})
package orders
