package risk

import "fmt"

type Profile string

const (
	Conservative Profile = "Conservative"
	Moderate     Profile = "Moderate"
	Aggressive   Profile = "Aggressive"
)

// ParseProfile accepts the exact profile names.
func ParseProfile(s string) (Profile, error) {
	switch p := Profile(s); p {
	case Conservative, Moderate, Aggressive:
		return p, nil
	}
	return "", fmt.Errorf("unknown risk profile: %q", s)
}

type Allocation struct {
	AssetClass string `json:"asset_class"`
	Percentage int    `json:"percentage"`
}

type ProfileData struct {
	Profile     Profile      `json:"profile"`
	Description string       `json:"description"`
	Summary     string       `json:"summary"`
	Allocation  []Allocation `json:"allocation"`
	KeyPoints   []string     `json:"key_points"`
	SuitableFor string       `json:"suitable_for"`
}

// Profiles holds the fixed payload of every profile. Lookups through
// DataFor return copies so callers cannot alter the table.
var Profiles = map[Profile]ProfileData{
	Conservative: {
		Profile:     Conservative,
		Description: "You prefer stability and lower risk. Your portfolio is designed to preserve capital while generating modest growth and income.",
		Summary:     "Capital preservation first, with modest income-driven growth.",
		Allocation: []Allocation{
			{AssetClass: "Bonds", Percentage: 50},
			{AssetClass: "Large Cap Stocks", Percentage: 25},
			{AssetClass: "Cash", Percentage: 15},
			{AssetClass: "International", Percentage: 10},
		},
		KeyPoints: []string{
			"Focus on capital preservation and income",
			"Lower volatility and risk exposure",
			"Emphasis on high-quality bonds and dividend stocks",
			"More stable, predictable returns",
		},
		SuitableFor: "Investors nearing retirement or with short time horizons (1-3 years)",
	},
	Moderate: {
		Profile:     Moderate,
		Description: "You seek a balance between growth and safety. Your portfolio aims for long-term growth while managing volatility through diversification.",
		Summary:     "Balanced growth with volatility kept in check through diversification.",
		Allocation: []Allocation{
			{AssetClass: "Large Cap Stocks", Percentage: 40},
			{AssetClass: "Bonds", Percentage: 30},
			{AssetClass: "International", Percentage: 15},
			{AssetClass: "Mid Cap Stocks", Percentage: 10},
			{AssetClass: "Cash", Percentage: 5},
		},
		KeyPoints: []string{
			"Balance between growth and income",
			"Moderate volatility with diversification",
			"Mix of growth assets and defensive positions",
			"Reasonable returns with controlled risk",
		},
		SuitableFor: "Investors with medium time horizons (3-10 years) seeking balanced returns",
	},
	Aggressive: {
		Profile:     Aggressive,
		Description: "You prioritize growth potential and can tolerate higher volatility. Your portfolio is positioned for maximum long-term capital appreciation.",
		Summary:     "Maximum long-term growth, accepting large swings along the way.",
		Allocation: []Allocation{
			{AssetClass: "Large Cap Stocks", Percentage: 45},
			{AssetClass: "International", Percentage: 25},
			{AssetClass: "Mid Cap Stocks", Percentage: 15},
			{AssetClass: "Small Cap Stocks", Percentage: 10},
			{AssetClass: "Bonds", Percentage: 5},
		},
		KeyPoints: []string{
			"Focus on capital appreciation and growth",
			"Higher volatility with greater return potential",
			"Emphasis on equities across market caps",
			"International diversification for growth opportunities",
		},
		SuitableFor: "Younger investors with long time horizons (10+ years) and higher risk tolerance",
	},
}

// ProfileOrder lists the profiles from lowest to highest risk.
var ProfileOrder = []Profile{Conservative, Moderate, Aggressive}

// DataFor returns a copy of the static payload for p.
func DataFor(p Profile) ProfileData {
	d := Profiles[p]
	d.Allocation = append([]Allocation(nil), d.Allocation...)
	d.KeyPoints = append([]string(nil), d.KeyPoints...)
	return d
}
