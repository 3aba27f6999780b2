package types

type Cadence string

const (
	Daily    Cadence = "daily"
	Weekly   Cadence = "weekly"
	Biweekly Cadence = "every_two_weeks"
	// FourWeekly steps a fixed 28 days, not a calendar month. The wire
	// value "monthly" is kept for compatibility with existing clients.
	FourWeekly Cadence = "monthly"
)

// CadenceToDays maps a cadence to its step size in days.
var CadenceToDays = map[Cadence]int{
	Daily:      1,
	Weekly:     7,
	Biweekly:   14,
	FourWeekly: 28,
}

var ConvertCadence = map[string]Cadence{
	"daily":           Daily,
	"weekly":          Weekly,
	"every_two_weeks": Biweekly,
	"biweekly":        Biweekly,
	"monthly":         FourWeekly,
	"every_4_weeks":   FourWeekly,
}
