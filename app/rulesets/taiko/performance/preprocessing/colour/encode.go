package colour

// Encode groups notes into MonoStreaks, AlternatingMonoPatterns and RepeatingHitPatterns and assigns parents and indices.
func Encode(notes []Note) []*RepeatingHitPatterns {
	patterns := encodeRepeatingHitPatterns(encodeAlternatingMonoPatterns(encodeMonoStreaks(notes)))

	for _, repeating := range patterns {
		for i, monoPattern := range repeating.AlternatingMonoPatterns {
			monoPattern.Parent = repeating
			monoPattern.Index = i

			for j, monoStreak := range monoPattern.MonoStreaks {
				monoStreak.Parent = monoPattern
				monoStreak.Index = j
			}
		}
	}

	return patterns
}

// Assign resolves the structures each note belongs to.
func Assign(patterns []*RepeatingHitPatterns) map[Note]Data {
	out := make(map[Note]Data)

	for _, repeating := range patterns {
		for _, monoPattern := range repeating.AlternatingMonoPatterns {
			for _, monoStreak := range monoPattern.MonoStreaks {
				for _, note := range monoStreak.HitObjects {
					out[note] = Data{
						MonoStreak:             monoStreak,
						AlternatingMonoPattern: monoPattern,
						RepeatingHitPattern:    repeating,
					}
				}
			}
		}
	}

	return out
}

func encodeMonoStreaks(notes []Note) []*MonoStreak {
	var (
		streaks []*MonoStreak
		current *MonoStreak
	)

	for i, note := range notes {
		if current == nil || note.IsDon() != notes[i-1].IsDon() {
			current = &MonoStreak{}
			streaks = append(streaks, current)
		}

		current.HitObjects = append(current.HitObjects, note)
	}

	return streaks
}

func encodeAlternatingMonoPatterns(streaks []*MonoStreak) []*AlternatingMonoPattern {
	var (
		patterns []*AlternatingMonoPattern
		current  *AlternatingMonoPattern
	)

	for i, streak := range streaks {
		if current == nil || streak.RunLength() != streaks[i-1].RunLength() {
			current = &AlternatingMonoPattern{}
			patterns = append(patterns, current)
		}

		current.MonoStreaks = append(current.MonoStreaks, streak)
	}

	return patterns
}

func encodeRepeatingHitPatterns(data []*AlternatingMonoPattern) []*RepeatingHitPatterns {
	var (
		groups  []*RepeatingHitPatterns
		current *RepeatingHitPatterns
	)

	isCoupled := func(i int) bool {
		return i < len(data)-2 && data[i].IsRepetitionOf(data[i+2])
	}

	for i := 0; i < len(data); i++ {
		current = newRepeatingHitPatterns(current)

		if !isCoupled(i) {
			current.AlternatingMonoPatterns = append(current.AlternatingMonoPatterns, data[i])
		} else {
			for isCoupled(i) {
				current.AlternatingMonoPatterns = append(current.AlternatingMonoPatterns, data[i])
				i++
			}

			// the remaining two patterns of the last repetition
			current.AlternatingMonoPatterns = append(current.AlternatingMonoPatterns, data[i], data[i+1])
			i++
		}

		groups = append(groups, current)
	}

	for _, group := range groups {
		group.FindRepetitionInterval()
	}

	return groups
}
