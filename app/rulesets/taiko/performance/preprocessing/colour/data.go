package colour

// Note is a hit circle as seen by the colour encoder.
type Note interface {
	IsDon() bool
}

// MonoStreak is a maximal run of consecutive notes of the same colour.
type MonoStreak struct {
	// Index within Parent
	Index  int
	Parent *AlternatingMonoPattern

	HitObjects []Note
}

func (s *MonoStreak) FirstHitObject() Note { return s.HitObjects[0] }

func (s *MonoStreak) LastHitObject() Note { return s.HitObjects[len(s.HitObjects)-1] }

func (s *MonoStreak) AreDons() bool { return s.HitObjects[0].IsDon() }

func (s *MonoStreak) RunLength() int { return len(s.HitObjects) }

// AlternatingMonoPattern is a run of consecutive MonoStreaks of equal length, alternating colours.
type AlternatingMonoPattern struct {
	// Index within Parent
	Index  int
	Parent *RepeatingHitPatterns

	MonoStreaks []*MonoStreak
}

func (p *AlternatingMonoPattern) FirstHitObject() Note { return p.MonoStreaks[0].FirstHitObject() }

// IsRepetitionOf reports whether other has the same streak lengths, streak count and starting colour.
func (p *AlternatingMonoPattern) IsRepetitionOf(other *AlternatingMonoPattern) bool {
	return p.HasIdenticalMonoLength(other) &&
		len(other.MonoStreaks) == len(p.MonoStreaks) &&
		other.MonoStreaks[0].AreDons() == p.MonoStreaks[0].AreDons()
}

func (p *AlternatingMonoPattern) HasIdenticalMonoLength(other *AlternatingMonoPattern) bool {
	return other.MonoStreaks[0].RunLength() == p.MonoStreaks[0].RunLength()
}

// MaxRepetitionInterval is the furthest back a repeated pattern is looked for.
const MaxRepetitionInterval = 16

// RepeatingHitPatterns groups AlternatingMonoPatterns that repeat in an interleaved fashion.
type RepeatingHitPatterns struct {
	AlternatingMonoPatterns []*AlternatingMonoPattern

	// Previous is the group before this one, nil for the first
	Previous *RepeatingHitPatterns

	// RepetitionInterval is how many groups back an identical one appears, MaxRepetitionInterval+1 if none does
	RepetitionInterval int
}

func newRepeatingHitPatterns(previous *RepeatingHitPatterns) *RepeatingHitPatterns {
	return &RepeatingHitPatterns{
		Previous:           previous,
		RepetitionInterval: MaxRepetitionInterval + 1,
	}
}

func (r *RepeatingHitPatterns) FirstHitObject() Note {
	return r.AlternatingMonoPatterns[0].FirstHitObject()
}

func (r *RepeatingHitPatterns) isRepetitionOf(other *RepeatingHitPatterns) bool {
	if len(r.AlternatingMonoPatterns) != len(other.AlternatingMonoPatterns) {
		return false
	}

	for i := 0; i < min(len(r.AlternatingMonoPatterns), 2); i++ {
		if !r.AlternatingMonoPatterns[i].HasIdenticalMonoLength(other.AlternatingMonoPatterns[i]) {
			return false
		}
	}

	return true
}

// FindRepetitionInterval searches previous groups for the closest repetition.
func (r *RepeatingHitPatterns) FindRepetitionInterval() {
	r.RepetitionInterval = MaxRepetitionInterval + 1

	other := r.Previous

	for interval := 1; other != nil && interval < MaxRepetitionInterval; interval++ {
		if r.isRepetitionOf(other) {
			r.RepetitionInterval = interval
			return
		}

		other = other.Previous
	}
}

// Data links a note to the structures it belongs to.
type Data struct {
	MonoStreak             *MonoStreak
	AlternatingMonoPattern *AlternatingMonoPattern
	RepeatingHitPattern    *RepeatingHitPatterns
}
