package core

// Operation identifies one callable REST operation of the trading platform.
type Operation int

// Operation constants define all supported order operations.
const (
	// OpOrderCreate creates an order for an account.
	OpOrderCreate Operation = iota
	// OpOrderList lists orders of an account, filtered by query parameters.
	OpOrderList
	// OpOrdersPending lists all pending orders of an account.
	OpOrdersPending
	// OpOrderDetails retrieves a single order of an account.
	OpOrderDetails
	// OpOrderReplace cancels an order and creates its replacement in one call.
	OpOrderReplace
	// OpOrderCancel cancels a pending order.
	OpOrderCancel
	// OpOrderClientExtensions updates the client extensions of an order.
	OpOrderClientExtensions
)

// String returns the string representation of the operation.
func (o Operation) String() string {
	if o < OpOrderCreate || o > OpOrderClientExtensions {
		return "UNKNOWN"
	}
	return [...]string{
		"ORDER_CREATE",
		"ORDER_LIST",
		"ORDERS_PENDING",
		"ORDER_DETAILS",
		"ORDER_REPLACE",
		"ORDER_CANCEL",
		"ORDER_CLIENT_EXTENSIONS",
	}[o]
}
