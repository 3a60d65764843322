package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event is one raw telemetry record submitted by a client session. Every
// field is optional: clients ship whatever they captured, and absence of a
// field simply contributes nothing to the derived metrics.
type Event struct {
	ID             uuid.UUID  `json:"id,omitempty"`
	SessionID      FlexString `json:"sessionId,omitempty"`
	CurrentPage    FlexString `json:"currentPage,omitempty"`
	PageURL        FlexString `json:"pageUrl,omitempty"`
	EventType      FlexString `json:"eventType,omitempty"`
	SessionStatus  FlexString `json:"sessionStatus,omitempty"`
	Clicks         PointList  `json:"clicks,omitempty"`
	MouseMovements PointList  `json:"mouseMovements,omitempty"`
	Scrolls        PointList  `json:"scrolls,omitempty"`
	RageClicks     PointList  `json:"rageClicks,omitempty"`
	TimeOnPage     FlexNumber `json:"timeOnPage,omitempty"`
	ConversionTime FlexNumber `json:"conversionTime,omitempty"`
	Viewport       *Viewport  `json:"viewport,omitempty"`
	ReceivedAt     time.Time  `json:"receivedAt,omitempty"`
}

// Session status values recognized by the aggregator. Anything else
// (including absence) counts toward none of the three buckets.
const (
	SessionCompleted = "completed"
	SessionActive    = "active"
	SessionAbandoned = "abandoned"
)

// Page returns the page identifier of the event, preferring currentPage
// over the legacy pageUrl alias.
func (e *Event) Page() string {
	if e.CurrentPage != "" {
		return string(e.CurrentPage)
	}
	return string(e.PageURL)
}

// Point is a point-like sub-record of an event (a click, a mouse movement
// sample, a scroll position or a rage-click burst center).
type Point struct {
	X           json.Number `json:"x,omitempty"`
	Y           json.Number `json:"y,omitempty"`
	Timestamp   json.Number `json:"timestamp,omitempty"`
	CurrentPage FlexString  `json:"currentPage,omitempty"`
}

// PointList decodes a JSON array of points. Non-array payloads and
// malformed elements are dropped instead of failing the whole event.
type PointList []Point

func (p *PointList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*p = nil
		return nil
	}
	pts := make(PointList, 0, len(raw))
	for _, r := range raw {
		var pt Point
		if err := json.Unmarshal(r, &pt); err != nil {
			continue
		}
		pts = append(pts, pt)
	}
	*p = pts
	return nil
}

// Viewport carries the reported browser viewport dimensions.
type Viewport struct {
	Width  FlexNumber `json:"width,omitempty"`
	Height FlexNumber `json:"height,omitempty"`
}

type viewportAlias Viewport

func (v *Viewport) UnmarshalJSON(data []byte) error {
	var alias viewportAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		*v = Viewport{}
		return nil
	}
	*v = Viewport(alias)
	return nil
}

// FlexNumber accepts JSON numbers and numeric strings; any other shape
// decodes to absent.
type FlexNumber json.Number

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		*n = ""
		return nil
	}
	*n = FlexNumber(num)
	return nil
}

func (n FlexNumber) MarshalJSON() ([]byte, error) {
	if n == "" {
		return []byte("null"), nil
	}
	return []byte(n), nil
}

// Value reports the numeric value of n and whether one is present.
func (n FlexNumber) Value() (float64, bool) {
	v, err := json.Number(n).Float64()
	if err != nil {
		return 0, false
	}
	return v, true
}

// FlexString accepts JSON strings as-is and coerces numbers to their
// literal form; any other shape decodes to the empty string.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = FlexString(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		*s = FlexString(num.String())
		return nil
	}
	*s = ""
	return nil
}

// EventAck is the response to a stored event submission.
type EventAck struct {
	Message  string `json:"message"`
	Received Event  `json:"received"`
}

// TallyAck is the response to an event submission in tally mode.
type TallyAck struct {
	Message string      `json:"message"`
	Counts  TallyCounts `json:"counts"`
}
