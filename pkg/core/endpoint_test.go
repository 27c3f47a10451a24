package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var detailsEndpoint = Endpoint{
	Op:             OpOrderDetails,
	Template:       "v3/accounts/{accountID}/orders/{orderID}",
	Method:         "GET",
	ExpectedStatus: 200,
	Attribute:      AttrNone,
}

func TestAttribute_String(t *testing.T) {
	assert.Equal(t, "none", AttrNone.String())
	assert.Equal(t, "data", AttrData.String())
	assert.Equal(t, "params", AttrParams.String())
	assert.Equal(t, "unknown", Attribute(7).String())
}

func TestEndpoint_Placeholders(t *testing.T) {
	assert.Equal(t, []string{"accountID", "orderID"}, detailsEndpoint.Placeholders())

	ep := detailsEndpoint
	ep.Template = "v3/accounts"
	assert.Empty(t, ep.Placeholders())
}

func TestEndpoint_Render(t *testing.T) {
	tests := []struct {
		name    string
		ids     PathParams
		want    string
		wantErr string
	}{
		{
			name: "all_bound",
			ids:  PathParams{"accountID": "001", "orderID": "2125"},
			want: "v3/accounts/001/orders/2125",
		},
		{
			name: "extra_ids_ignored",
			ids:  PathParams{"accountID": "001", "orderID": "2125", "tradeID": "9"},
			want: "v3/accounts/001/orders/2125",
		},
		{
			name: "escaped",
			ids:  PathParams{"accountID": "101-004-1/2", "orderID": "@my id"},
			want: "v3/accounts/101-004-1%2F2/orders/@my%20id",
		},
		{
			name:    "missing_order",
			ids:     PathParams{"accountID": "001"},
			wantErr: "orderID",
		},
		{
			name:    "empty_account",
			ids:     PathParams{"accountID": "", "orderID": "2125"},
			wantErr: "accountID",
		},
		{
			name:    "nil_ids",
			ids:     nil,
			wantErr: "accountID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := detailsEndpoint.Render(tt.ids)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, IsConfigurationError(err))
				assert.ErrorIs(t, err, ErrUnboundPlaceholder)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "{")
		})
	}
}

func TestEndpoint_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Endpoint)
		wantErr string
	}{
		{"valid", func(*Endpoint) {}, ""},
		{"missing_template", func(e *Endpoint) { e.Template = "" }, "Template"},
		{"bad_method", func(e *Endpoint) { e.Method = "FETCH" }, "Method"},
		{"zero_status", func(e *Endpoint) { e.ExpectedStatus = 0 }, "ExpectedStatus"},
		{"bad_attribute", func(e *Endpoint) { e.Attribute = Attribute(5) }, "Attribute"},
		{"unterminated", func(e *Endpoint) { e.Template = "v3/accounts/{accountID" }, "unterminated"},
		{"stray_brace", func(e *Endpoint) { e.Template = "v3/accounts/accountID}" }, "unbalanced"},
		{"empty_placeholder", func(e *Endpoint) { e.Template = "v3/accounts/{}" }, "invalid placeholder"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ep := detailsEndpoint
			tt.mutate(&ep)
			err := ep.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
