package expressTrace

import (
	"math"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// DecodeShipmentDetails parses a tracking response body. Fields are read one
// by one: a known key holding a value of the wrong type is left nil instead of
// failing the whole document. It returns nil, nil for `null` and `{}`.
func DecodeShipmentDetails(data []byte) (*ShipmentDetails, error) {
	d := jx.DecodeBytes(data)
	switch t := d.Next(); t {
	case jx.Null:
		return nil, nil
	case jx.Object:
	default:
		return nil, errors.Errorf("expected object, got %v", t)
	}

	var (
		res  ShipmentDetails
		keys int
	)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		keys++
		switch key {
		case "shipmentType":
			return decodeStr(d, &res.ShipmentType)
		case "expectedDeliveryDate":
			return decodeMillis(d, &res.ExpectedDeliveryDate)
		case "sourceCity":
			return decodeStr(d, &res.SourceCity)
		case "destinationCity":
			return decodeStr(d, &res.DestinationCity)
		case "receiverName":
			return decodeStr(d, &res.ReceiverName)
		case "shipmentTrackingDetails":
			return decodeEvents(d, &res.ShipmentTrackingDetails)
		default:
			return d.Skip()
		}
	}); err != nil {
		return nil, errors.Wrap(err, "decode shipment details")
	}
	if keys == 0 {
		return nil, nil
	}
	return &res, nil
}

func decodeEvents(d *jx.Decoder, v *[]TrackingEvent) error {
	if d.Next() != jx.Array {
		return d.Skip()
	}
	events := make([]TrackingEvent, 0)
	if err := d.Arr(func(d *jx.Decoder) error {
		if d.Next() != jx.Object {
			return d.Skip()
		}
		var e TrackingEvent
		if err := d.Obj(func(d *jx.Decoder, key string) error {
			switch key {
			case "city":
				return decodeStr(d, &e.City)
			case "date":
				return decodeMillis(d, &e.Date)
			case "statusDetails":
				return decodeStr(d, &e.StatusDetails)
			default:
				return d.Skip()
			}
		}); err != nil {
			return err
		}
		events = append(events, e)
		return nil
	}); err != nil {
		return errors.Wrap(err, "shipmentTrackingDetails")
	}
	*v = events
	return nil
}

func decodeStr(d *jx.Decoder, v **string) error {
	if d.Next() != jx.String {
		return d.Skip()
	}
	s, err := d.Str()
	if err != nil {
		return err
	}
	*v = &s
	return nil
}

// decodeMillis accepts any JSON number. Integers are read exactly; fractions
// of a millisecond are dropped. Values outside the int64 range are left nil.
func decodeMillis(d *jx.Decoder, v **int64) error {
	if d.Next() != jx.Number {
		return d.Skip()
	}
	n, err := d.Num()
	if err != nil {
		return err
	}
	if n.IsInt() {
		if ms, err := n.Int64(); err == nil {
			*v = &ms
			return nil
		}
	}
	f, err := n.Float64()
	if err != nil || math.IsNaN(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return nil
	}
	ms := int64(f)
	*v = &ms
	return nil
}
