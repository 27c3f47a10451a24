package orders

import "github.com/hpsilva/oanda-api-v20/pkg/fixture"

// Fixture keys of the order endpoints.
const (
	KeyOrderList    = "_v3_accounts_accountID_orders"
	KeyOrderReplace = "_v3_accounts_accountID_order_replace"
)

// Fixtures holds example responses of the order endpoints.
var Fixtures = fixture.MustTable(map[string]string{
	KeyOrderList: `{
  "orders": [
    {
      "triggerCondition": "TRIGGER_DEFAULT",
      "partialFill": "DEFAULT_FILL",
      "price": "1.20000",
      "stopLossOnFill": {
        "timeInForce": "GTC",
        "price": "1.22000"
      },
      "createTime": "2016-10-05T10:25:47.627003645Z",
      "timeInForce": "GTC",
      "instrument": "EUR_USD",
      "state": "PENDING",
      "units": "-100",
      "id": "2125",
      "type": "LIMIT",
      "positionFill": "POSITION_DEFAULT"
    }
  ],
  "lastTransactionID": "2129"
}`,
	KeyOrderReplace: `{
  "orders": [
    {
      "triggerCondition": "TRIGGER_DEFAULT",
      "replacesOrderID": "2125",
      "partialFill": "DEFAULT_FILL",
      "price": "1.25000",
      "createTime": "2016-10-05T10:52:43.742347417Z",
      "timeInForce": "GTC",
      "instrument": "EUR_USD",
      "state": "PENDING",
      "units": "-50000",
      "id": "2133",
      "type": "LIMIT",
      "positionFill": "POSITION_DEFAULT"
    }
  ],
  "lastTransactionID": "2133"
}`,
})
