package core

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/apd/v3"
)

// OrderType represents the kind of an order on the platform.
type OrderType int

// TypeUnknown holds order types the platform sent that are not listed below.
const TypeUnknown OrderType = -1

// Order type constants.
const (
	TypeMarket OrderType = iota
	TypeLimit
	TypeStop
	TypeMarketIfTouched
	TypeTakeProfit
	TypeStopLoss
	TypeTrailingStopLoss
	TypeFixedPrice
	TypeGuaranteedStopLoss
)

var orderTypeNames = [...]string{
	"MARKET",
	"LIMIT",
	"STOP",
	"MARKET_IF_TOUCHED",
	"TAKE_PROFIT",
	"STOP_LOSS",
	"TRAILING_STOP_LOSS",
	"FIXED_PRICE",
	"GUARANTEED_STOP_LOSS",
}

// String returns the platform name of the order type.
func (t OrderType) String() string {
	if t < TypeMarket || int(t) >= len(orderTypeNames) {
		return "UNKNOWN"
	}
	return orderTypeNames[t]
}

// MarshalJSON implements json.Marshaler for OrderType.
func (t OrderType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for OrderType.
// Unknown names decode as TypeUnknown.
func (t *OrderType) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var name string
	if err := sonic.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("order type: %w", err)
	}
	*t = TypeUnknown
	for i, n := range orderTypeNames {
		if n == name {
			*t = OrderType(i)
			break
		}
	}
	return nil
}

// OrderState represents the current state of an order.
type OrderState int

// StateUnknown holds states the platform sent that are not listed below.
const StateUnknown OrderState = -1

// Order state constants.
const (
	// StatePending indicates the order is waiting to be filled or triggered.
	StatePending OrderState = iota
	// StateFilled indicates the order has been filled.
	StateFilled
	// StateTriggered indicates the order has been triggered.
	StateTriggered
	// StateCancelled indicates the order has been cancelled.
	StateCancelled
)

var orderStateNames = [...]string{"PENDING", "FILLED", "TRIGGERED", "CANCELLED"}

// String returns the platform name of the order state.
func (s OrderState) String() string {
	if s < StatePending || int(s) >= len(orderStateNames) {
		return "UNKNOWN"
	}
	return orderStateNames[s]
}

// IsTerminal returns true if the order can no longer change.
func (s OrderState) IsTerminal() bool {
	return s == StateFilled || s == StateCancelled
}

// MarshalJSON implements json.Marshaler for OrderState.
func (s OrderState) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for OrderState.
// Unknown names decode as StateUnknown.
func (s *OrderState) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var name string
	if err := sonic.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("order state: %w", err)
	}
	*s = StateUnknown
	for i, n := range orderStateNames {
		if n == name {
			*s = OrderState(i)
			break
		}
	}
	return nil
}

// ClientExtensions are the client-owned id, tag and comment of an order.
type ClientExtensions struct {
	ID      string `json:"id,omitempty"`
	Tag     string `json:"tag,omitempty"`
	Comment string `json:"comment,omitempty"`
}

// StopLossDetails describes a stop loss attached to an order when it fills.
type StopLossDetails struct {
	Price       apd.Decimal `json:"price"`
	TimeInForce string      `json:"timeInForce"`
}

// Order is an order as returned by the order endpoints.
// Units is negative for short orders.
type Order struct {
	ID               string            `json:"id"`
	Type             OrderType         `json:"type"`
	State            OrderState        `json:"state"`
	Instrument       string            `json:"instrument"`
	Units            apd.Decimal       `json:"units"`
	Price            apd.Decimal       `json:"price"`
	TimeInForce      string            `json:"timeInForce"`
	PositionFill     string            `json:"positionFill"`
	TriggerCondition string            `json:"triggerCondition"`
	PartialFill      string            `json:"partialFill,omitempty"`
	ReplacesOrderID  string            `json:"replacesOrderID,omitempty"`
	CreateTime       time.Time         `json:"createTime"`
	StopLossOnFill   *StopLossDetails  `json:"stopLossOnFill,omitempty"`
	ClientExtensions *ClientExtensions `json:"clientExtensions,omitempty"`
}

// IsShort returns true if the order sells units.
func (o *Order) IsShort() bool {
	return o.Units.Sign() < 0
}

// OrderList is the body of the list and pending orders endpoints.
type OrderList struct {
	Orders            []Order `json:"orders"`
	LastTransactionID string  `json:"lastTransactionID"`
}

// OrderDetails is the body of the order details endpoint.
type OrderDetails struct {
	Order             Order  `json:"order"`
	LastTransactionID string `json:"lastTransactionID"`
}
