package difficulty

type HitResult int

const (
	Great HitResult = iota
	Ok
	Meh
	Miss
)

// window holds the hit window half-widths in ms at OD 10, 5 and 0.
type window struct {
	od10, od5, od0 float64
}

var osuWindows = map[HitResult]window{
	Great: {20, 50, 80},
	Ok:    {60, 100, 140},
	Meh:   {100, 150, 200},
}

var taikoWindows = map[HitResult]window{
	Great: {20, 35, 50},
	Ok:    {50, 80, 120},
	Miss:  {70, 95, 135},
}

func lookup(table map[HitResult]window, od float64, result HitResult) float64 {
	w, ok := table[result]
	if !ok {
		return 0
	}

	return DifficultyRange(od, w.od10, w.od5, w.od0)
}

// OsuHitWindow returns the osu!standard window for result, 0 for results the mode does not judge by time.
func (s Settings) OsuHitWindow(result HitResult) float64 {
	return lookup(osuWindows, s.OverallDifficulty, result)
}

// TaikoHitWindow returns the osu!taiko window for result, 0 for Meh.
func (s Settings) TaikoHitWindow(result HitResult) float64 {
	return lookup(taikoWindows, s.OverallDifficulty, result)
}
