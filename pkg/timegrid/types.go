package timegrid

// HourGuide is one horizontal hour line of a day column.
type HourGuide struct {
	Hour       int
	Label      string
	TopPercent float64
}

// Cell is the vertical placement of an entry inside a day column,
// expressed as percent of the column height.
type Cell struct {
	TopPercent    float64
	HeightPercent float64
}
