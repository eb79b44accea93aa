package console

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	expressTrace "github.com/go-tron/ekart-trace"
)

// FailureMessage is printed when a lookup yields nothing to show.
const FailureMessage = "Failed to retrieve data. Please check the tracking ID and try again."

// Presenter looks up one shipment and prints its report.
type Presenter struct {
	Tracker expressTrace.ExpressTrace
	Out     io.Writer
	// Location used for timestamps; nil means time.Local.
	Location *time.Location
}

func NewPresenter(tracker expressTrace.ExpressTrace, out io.Writer) *Presenter {
	return &Presenter{Tracker: tracker, Out: out, Location: time.Local}
}

// Present fetches trackingId and writes the report. A failed lookup prints
// FailureMessage only; a lookup aborted by ctx prints nothing.
func (p *Presenter) Present(ctx context.Context, trackingId string) {
	details, err := p.Tracker.Track(ctx, &expressTrace.TrackReq{TrackingId: trackingId})
	if err != nil && ctx.Err() != nil {
		return
	}
	if err != nil || details == nil {
		fmt.Fprintln(p.Out, FailureMessage)
		return
	}

	w := p.Out
	fmt.Fprintf(w, "\n%s\n", heading("Shipment Overview for "+trackingId+":"))
	fmt.Fprintf(w, "  Type: %s\n", OrPlaceholder(details.ShipmentType))
	fmt.Fprintf(w, "  Expected Delivery: %s\n", FormatTimestamp(details.ExpectedDeliveryDate, p.Location))
	fmt.Fprintf(w, "  Route: From %s to %s\n",
		titleOrPlaceholder(details.SourceCity),
		titleOrPlaceholder(details.DestinationCity),
	)
	fmt.Fprintf(w, "  Receiver: %s\n", OrPlaceholder(details.ReceiverName))

	fmt.Fprintf(w, "\n%s\n", heading("Tracking Progress:"))
	events := details.ShipmentTrackingDetails
	width := CityWidth(events)
	for _, e := range events {
		fmt.Fprintf(w, "  - %-20s | %-*s | %s\n",
			FormatTimestamp(e.Date, p.Location),
			width, eventCity(e),
			eventStatus(e),
		)
	}
}

// CityWidth is the widest raw city value among events, counting an absent
// city as Placeholder. It is 3 when there are no events.
func CityWidth(events []expressTrace.TrackingEvent) int {
	if len(events) == 0 {
		return utf8.RuneCountInString(Placeholder)
	}
	width := 0
	for _, e := range events {
		if n := utf8.RuneCountInString(OrPlaceholder(e.City)); n > width {
			width = n
		}
	}
	return width
}

func eventCity(e expressTrace.TrackingEvent) string {
	if e.City == nil || *e.City == "" {
		return Placeholder
	}
	return Title(strings.TrimSpace(*e.City))
}

func eventStatus(e expressTrace.TrackingEvent) string {
	if e.StatusDetails == nil {
		return Placeholder
	}
	return strings.TrimSpace(*e.StatusDetails)
}
