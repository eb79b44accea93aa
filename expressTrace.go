package expressTrace

import "context"

type TrackReq struct {
	TrackingId string `json:"trackingId" validate:"required"`
}

// ShipmentDetails is the best-effort view of a tracking response. Every field
// is optional; nil means the provider omitted it or sent something unusable.
type ShipmentDetails struct {
	ShipmentType            *string         `json:"shipmentType"`
	ExpectedDeliveryDate    *int64          `json:"expectedDeliveryDate"` //epoch ms
	SourceCity              *string         `json:"sourceCity"`
	DestinationCity         *string         `json:"destinationCity"`
	ReceiverName            *string         `json:"receiverName"`
	ShipmentTrackingDetails []TrackingEvent `json:"shipmentTrackingDetails"`
}

type TrackingEvent struct {
	City          *string `json:"city"`
	Date          *int64  `json:"date"` //epoch ms
	StatusDetails *string `json:"statusDetails"`
}

//go:generate mockgen -package mocktrace -source=expressTrace.go -destination=mock/mocktrace.go
type ExpressTrace interface {
	Track(context.Context, *TrackReq) (*ShipmentDetails, error)
}
