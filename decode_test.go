package expressTrace

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestDecodeShipmentDetails(t *testing.T) {
	body := `{"shipmentType":"Express","expectedDeliveryDate":1700000000000,"sourceCity":"pune","destinationCity":"delhi","receiverName":"A. Sharma","shipmentTrackingDetails":[{"city":"pune","date":1699000000000,"statusDetails":" Picked up "}]}`

	got, err := DecodeShipmentDetails([]byte(body))
	require.NoError(t, err)

	want := &ShipmentDetails{
		ShipmentType:         ptr("Express"),
		ExpectedDeliveryDate: ptr(int64(1700000000000)),
		SourceCity:           ptr("pune"),
		DestinationCity:      ptr("delhi"),
		ReceiverName:         ptr("A. Sharma"),
		ShipmentTrackingDetails: []TrackingEvent{
			{City: ptr("pune"), Date: ptr(int64(1699000000000)), StatusDetails: ptr(" Picked up ")},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("DecodeShipmentDetails() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeShipmentDetails_Lenient(t *testing.T) {
	body := `{
		"shipmentType": null,
		"expectedDeliveryDate": "tomorrow",
		"sourceCity": 42,
		"receiverName": "Ravi",
		"extra": {"nested": [1, 2, 3]},
		"shipmentTrackingDetails": [
			{"city": "goa", "date": 1.6990000001e12},
			"garbage",
			{"statusDetails": "Delivered", "date": false, "unknown": true}
		]
	}`

	got, err := DecodeShipmentDetails([]byte(body))
	require.NoError(t, err)

	want := &ShipmentDetails{
		ReceiverName: ptr("Ravi"),
		ShipmentTrackingDetails: []TrackingEvent{
			{City: ptr("goa"), Date: ptr(int64(1699000000100))},
			{StatusDetails: ptr("Delivered")},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("DecodeShipmentDetails() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeShipmentDetails_EventsNotArray(t *testing.T) {
	got, err := DecodeShipmentDetails([]byte(`{"receiverName":"x","shipmentTrackingDetails":"none"}`))
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Nil(t, got.ShipmentTrackingDetails)
}

func TestDecodeShipmentDetails_EmptyEvents(t *testing.T) {
	got, err := DecodeShipmentDetails([]byte(`{"shipmentTrackingDetails":[]}`))
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.ShipmentTrackingDetails)
	require.Empty(t, got.ShipmentTrackingDetails)
}

func TestDecodeShipmentDetails_Empty(t *testing.T) {
	for _, body := range []string{`{}`, `null`, ` { } `} {
		got, err := DecodeShipmentDetails([]byte(body))
		require.NoError(t, err, body)
		require.Nil(t, got, body)
	}
}

func TestDecodeShipmentDetails_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "array", body: `[{"shipmentType":"x"}]`},
		{name: "string", body: `"hello"`},
		{name: "html", body: `<html>Service Unavailable</html>`},
		{name: "truncated", body: `{"shipmentType":"x",`},
		{name: "empty", body: ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeShipmentDetails([]byte(tt.body))
			require.Error(t, err)
			require.Nil(t, got)
		})
	}
}

func TestDecodeShipmentDetails_Millis(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *int64
	}{
		{name: "integer", raw: `1700000000000`, want: ptr(int64(1700000000000))},
		{name: "above 2^53", raw: `9007199254740993`, want: ptr(int64(9007199254740993))},
		{name: "max int64", raw: `9223372036854775807`, want: ptr(int64(math.MaxInt64))},
		{name: "negative", raw: `-1000`, want: ptr(int64(-1000))},
		{name: "fraction truncated", raw: `1699000000000.9`, want: ptr(int64(1699000000000))},
		{name: "exponent", raw: `1.7e12`, want: ptr(int64(1700000000000))},
		{name: "integer overflow", raw: `99999999999999999999`},
		{name: "float overflow", raw: `1e30`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeShipmentDetails([]byte(`{"receiverName":"x","expectedDeliveryDate":` + tt.raw + `}`))
			require.NoError(t, err)
			require.NotNil(t, got)
			if diff := cmp.Diff(tt.want, got.ExpectedDeliveryDate); diff != "" {
				t.Fatalf("expectedDeliveryDate mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
