package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperation_String(t *testing.T) {
	tests := []struct {
		name string
		op   Operation
		want string
	}{
		{"order_create", OpOrderCreate, "ORDER_CREATE"},
		{"order_list", OpOrderList, "ORDER_LIST"},
		{"orders_pending", OpOrdersPending, "ORDERS_PENDING"},
		{"order_details", OpOrderDetails, "ORDER_DETAILS"},
		{"order_replace", OpOrderReplace, "ORDER_REPLACE"},
		{"order_cancel", OpOrderCancel, "ORDER_CANCEL"},
		{"order_client_extensions", OpOrderClientExtensions, "ORDER_CLIENT_EXTENSIONS"},
		{"out_of_range", Operation(42), "UNKNOWN"},
		{"negative", Operation(-1), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.op.String())
		})
	}
}
