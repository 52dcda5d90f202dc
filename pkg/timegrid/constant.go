package timegrid

const (
	HoursPerDay   = 24
	MinutesPerDay = HoursPerDay * 60
	SnapMinutes   = 15
	SlotsPerDay   = MinutesPerDay / SnapMinutes
)
