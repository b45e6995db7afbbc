package scoring

// CanonicalRating is one of the six rating values that carry a description.
type CanonicalRating struct {
	Value       float64 `json:"value"`
	Probability string  `json:"probability"`
	Frequency   string  `json:"frequency"`
}

// Ordered from the most to the least likely.
var canonicalRatings = []CanonicalRating{
	{Value: 10, Probability: "Beklenir, kesin", Frequency: "Hemen hemen sürekli (Hergün)"},
	{Value: 8, Probability: "Yüksek/oldukça mümkün", Frequency: "Sık (Ayda bir veya birkaç defa)"},
	{Value: 6, Probability: "Olası", Frequency: "Ara sıra (6 ayda 1)"},
	{Value: 3, Probability: "Mümkün, fakat düşük", Frequency: "Sık değil (Yılda birkaç defa)"},
	{Value: 1, Probability: "Beklenmez fakat mümkün", Frequency: "Seyrek (3 yılda 1)"},
	{Value: 0.1, Probability: "Beklenmez", Frequency: "Çok seyrek (>3 yıl)"},
}

// CanonicalRatings returns the described rating values, highest first.
func CanonicalRatings() []CanonicalRating {
	out := make([]CanonicalRating, len(canonicalRatings))
	copy(out, canonicalRatings)
	return out
}

// DescribeProbability returns the description of a canonical probability
// rating. Values outside the canonical set have no description.
func DescribeProbability(value float64) string {
	if r, ok := lookup(value); ok {
		return r.Probability
	}
	return ""
}

// DescribeFrequency returns the description of a canonical frequency rating.
// Values outside the canonical set have no description.
func DescribeFrequency(value float64) string {
	if r, ok := lookup(value); ok {
		return r.Frequency
	}
	return ""
}

// lookup matches exactly; 0.1 compares equal to the parsed literal "0.1".
func lookup(value float64) (CanonicalRating, bool) {
	for _, r := range canonicalRatings {
		if r.Value == value {
			return r, true
		}
	}
	return CanonicalRating{}, false
}
