package core

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderType_String(t *testing.T) {
	tests := []struct {
		orderType OrderType
		want      string
	}{
		{TypeMarket, "MARKET"},
		{TypeLimit, "LIMIT"},
		{TypeStop, "STOP"},
		{TypeMarketIfTouched, "MARKET_IF_TOUCHED"},
		{TypeTakeProfit, "TAKE_PROFIT"},
		{TypeStopLoss, "STOP_LOSS"},
		{TypeTrailingStopLoss, "TRAILING_STOP_LOSS"},
		{TypeFixedPrice, "FIXED_PRICE"},
		{TypeGuaranteedStopLoss, "GUARANTEED_STOP_LOSS"},
		{TypeUnknown, "UNKNOWN"},
		{OrderType(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.orderType.String())
		})
	}
}

func TestOrderState(t *testing.T) {
	tests := []struct {
		state    OrderState
		want     string
		terminal bool
	}{
		{StatePending, "PENDING", false},
		{StateTriggered, "TRIGGERED", false},
		{StateFilled, "FILLED", true},
		{StateCancelled, "CANCELLED", true},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.String())
			assert.Equal(t, tt.terminal, tt.state.IsTerminal())

			data, err := tt.state.MarshalJSON()
			require.NoError(t, err)
			var decoded OrderState
			require.NoError(t, decoded.UnmarshalJSON(data))
			assert.Equal(t, tt.state, decoded)
		})
	}
}

func TestOrder_Unmarshal(t *testing.T) {
	body := []byte(`{
		"triggerCondition": "TRIGGER_DEFAULT",
		"partialFill": "DEFAULT_FILL",
		"price": "1.20000",
		"stopLossOnFill": {"timeInForce": "GTC", "price": "1.22000"},
		"createTime": "2016-10-05T10:25:47.627003645Z",
		"timeInForce": "GTC",
		"instrument": "EUR_USD",
		"state": "PENDING",
		"units": "-100",
		"id": "2125",
		"type": "LIMIT",
		"positionFill": "POSITION_DEFAULT"
	}`)

	var order Order
	require.NoError(t, sonic.Unmarshal(body, &order))

	assert.Equal(t, "2125", order.ID)
	assert.Equal(t, TypeLimit, order.Type)
	assert.Equal(t, StatePending, order.State)
	assert.Equal(t, "EUR_USD", order.Instrument)
	assert.True(t, order.IsShort())
	assert.Equal(t, 0, order.Price.Cmp(apd.New(12, -1)))
	assert.Equal(t, 0, order.Units.Cmp(apd.New(-100, 0)))
	require.NotNil(t, order.StopLossOnFill)
	assert.Equal(t, "1.22000", order.StopLossOnFill.Price.String())
	assert.Equal(t, time.Date(2016, 10, 5, 10, 25, 47, 627003645, time.UTC), order.CreateTime.UTC())
	assert.Nil(t, order.ClientExtensions)
}

func TestOrderType_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input string
		want  OrderType
	}{
		{`"LIMIT"`, TypeLimit},
		{`"GUARANTEED_STOP_LOSS"`, TypeGuaranteedStopLoss},
		{`"LIMIT_ORDER"`, TypeUnknown},
		{`""`, TypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var got OrderType
			require.NoError(t, got.UnmarshalJSON([]byte(tt.input)))
			assert.Equal(t, tt.want, got)
		})
	}

	var got OrderType
	assert.Error(t, got.UnmarshalJSON([]byte(`7`)))
}

func TestOrderState_UnmarshalJSON(t *testing.T) {
	var state OrderState
	require.NoError(t, state.UnmarshalJSON([]byte(`"BOGUS"`)))
	assert.Equal(t, StateUnknown, state)
	assert.Equal(t, "UNKNOWN", state.String())
	assert.False(t, state.IsTerminal())

	data, err := state.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"UNKNOWN"`, string(data))

	state = StateFilled
	require.NoError(t, state.UnmarshalJSON([]byte(`null`)))
	assert.Equal(t, StateFilled, state)
}

func TestOrder_UnmarshalUnlistedNames(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		typ   OrderType
		state OrderState
	}{
		{
			name:  "guaranteed stop loss",
			body:  `{"id":"2130","type":"GUARANTEED_STOP_LOSS","state":"FILLED","units":"10","price":"1.10000"}`,
			typ:   TypeGuaranteedStopLoss,
			state: StateFilled,
		},
		{
			name:  "unknown state",
			body:  `{"id":"2131","type":"LIMIT","state":"BOGUS","units":"10","price":"1.10000"}`,
			typ:   TypeLimit,
			state: StateUnknown,
		},
		{
			name:  "unknown type",
			body:  `{"id":"2132","type":"NEW_KIND","state":"PENDING","units":"10"}`,
			typ:   TypeUnknown,
			state: StatePending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var order Order
			require.NoError(t, sonic.Unmarshal([]byte(tt.body), &order))
			assert.Equal(t, tt.typ, order.Type)
			assert.Equal(t, tt.state, order.State)
		})
	}
}
