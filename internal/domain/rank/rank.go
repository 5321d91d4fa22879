package rank

// Tier is a named point bracket. Color is the role color used when the
// corresponding guild role has to be created.
type Tier struct {
	Name      string
	MinPoints int
	Color     int
}

var Tiers = []Tier{
	{Name: "Bronze", MinPoints: 0, Color: 0xE67E22},
	{Name: "Silver", MinPoints: 100, Color: 0xBCC0C0},
	{Name: "Gold", MinPoints: 500, Color: 0xF1C40F},
	{Name: "Platinum", MinPoints: 1000, Color: 0x3498DB},
	{Name: "Diamond", MinPoints: 2000, Color: 0x1ABC9C},
	{Name: "Champion", MinPoints: 4000, Color: 0x9B59B6},
	{Name: "Grand Champion", MinPoints: 7000, Color: 0xE74C3C},
	{Name: "Supersonic Legend", MinPoints: 11000, Color: 0xFFFFFF},
}

// TierFor returns the highest tier whose threshold is <= points.
// Negative totals stay in the lowest tier.
func TierFor(points int) Tier {
	best := Tiers[0]
	for _, t := range Tiers {
		if points >= t.MinPoints {
			best = t
		}
	}
	return best
}

func IsTierName(name string) bool {
	for _, t := range Tiers {
		if t.Name == name {
			return true
		}
	}
	return false
}
