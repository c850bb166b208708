package difficulty

import (
	"fmt"
	"strings"
)

// Tier is the difficulty name a star rating falls under.
type Tier int

const (
	Easy Tier = iota
	Normal
	Hard
	Insane
	Expert
	Ultra
)

var tierNames = [...]string{"Easy", "Normal", "Hard", "Insane", "Expert", "Ultra"}

func (t Tier) String() string {
	if t < Easy || t > Ultra {
		return "Unknown"
	}

	return tierNames[t]
}

var tierBounds = []struct {
	below float64
	tier  Tier
}{
	{2, Easy},
	{2.7, Normal},
	{4, Hard},
	{5.3, Insane},
	{6.5, Expert},
}

func TierFromStarRating(stars float64) Tier {
	for _, b := range tierBounds {
		if stars < b.below {
			return b.tier
		}
	}

	return Ultra
}

// ParseTier matches a tier name regardless of case.
func ParseTier(name string) (Tier, error) {
	for t := Easy; t <= Ultra; t++ {
		if strings.EqualFold(tierNames[t], name) {
			return t, nil
		}
	}

	return 0, fmt.Errorf("unknown difficulty tier %q", name)
}
