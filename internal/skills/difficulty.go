package skills

// Difficulty is a named DC tier
type Difficulty struct {
	Name string
	DC   int
}

// Difficulty tiers in ascending order
var (
	Trivial     = Difficulty{Name: "Trivial", DC: 6}
	Easy        = Difficulty{Name: "Easy", DC: 8}
	Medium      = Difficulty{Name: "Medium", DC: 10}
	Challenging = Difficulty{Name: "Challenging", DC: 12}
	Formidable  = Difficulty{Name: "Formidable", DC: 14}
	Legendary   = Difficulty{Name: "Legendary", DC: 16}
	Impossible  = Difficulty{Name: "Impossible", DC: 18}
)

// Tiers lists every tier from easiest to hardest
var Tiers = []Difficulty{Trivial, Easy, Medium, Challenging, Formidable, Legendary, Impossible}

// DifficultyForDC returns the lowest tier whose DC is at least dc
func DifficultyForDC(dc int) Difficulty {
	for _, tier := range Tiers[:len(Tiers)-1] {
		if dc <= tier.DC {
			return tier
		}
	}
	return Impossible
}
