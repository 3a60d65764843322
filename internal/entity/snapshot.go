package entity

// Snapshot is the full set of derived metrics computed from the event store
// at a point in time. It has no lifecycle of its own: every query recomputes
// it from scratch, so two queries with no ingestion in between are identical.
type Snapshot struct {
	TotalSessions        int                  `json:"totalSessions"`
	TotalClicks          int                  `json:"totalClicks"`
	TotalMouseMovements  int                  `json:"totalMouseMovements"`
	TotalScrolls         int                  `json:"totalScrolls"`
	TotalRageClicks      int                  `json:"totalRageClicks"`
	TotalTimeOnPage      float64              `json:"totalTimeOnPage"`
	Clicks               []Point              `json:"clicks"`
	MouseMovements       []Point              `json:"mouseMovements"`
	Scrolls              []Point              `json:"scrolls"`
	RageClicks           []Point              `json:"rageClicks"`
	Pages                map[string]PageStats `json:"pages"`
	AverageViewport      ViewportAverage      `json:"averageViewport"`
	ActiveSessions       int                  `json:"activeSessions"`
	CompletedSessions    int                  `json:"completedSessions"`
	AbandonedSessions    int                  `json:"abandonedSessions"`
	AverageTimeToConvert *int64               `json:"averageTimeToConvert"`
	DropOffRate          float64              `json:"dropOffRate"`
	ConversionRate       float64              `json:"conversionRate"`
	AverageClicks        float64              `json:"averageClicks"`
	AverageTimeOnPage    int64                `json:"averageTimeOnPage"`
}

// PageStats is the per-page breakdown: how many clicks landed on the page
// and how many events reported it as their current page.
type PageStats struct {
	Clicks   int `json:"clicks"`
	Sessions int `json:"sessions"`
}

// ViewportAverage is the mean reported viewport, rounded to whole pixels.
type ViewportAverage struct {
	Width  int64 `json:"width"`
	Height int64 `json:"height"`
}

// TallyCounts is the counter map maintained by the incremental-tally
// aggregation mode. It is the whole query result in that mode: raw events
// are not retained, so no recent-N views exist.
type TallyCounts struct {
	TotalEvents int64            `json:"totalEvents"`
	Sessions    int64            `json:"sessions"`
	EventTypes  map[string]int64 `json:"eventTypes"`
	PageEvents  map[string]int64 `json:"pageEvents"`
	PageClicks  map[string]int64 `json:"pageClicks"`
}
