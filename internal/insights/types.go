// Package insights generates and caches AI market analysis per
// industry. One insight exists per industry slug and refreshes on a
// weekly cadence.
package insights

import "time"

// RefreshInterval is how long a generated insight stays fresh.
const RefreshInterval = 7 * 24 * time.Hour

// SalaryRange describes pay for one role in the industry.
type SalaryRange struct {
	Role     string  `json:"role"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Median   float64 `json:"median"`
	Location string  `json:"location"`
}

// Insight is an AI market analysis for one industry.
type Insight struct {
	SalaryRanges      []SalaryRange `json:"salaryRanges"`
	GrowthRate        float64       `json:"growthRate"` // percentage
	DemandLevel       string        `json:"demandLevel"`
	TopSkills         []string      `json:"topSkills"`
	MarketOutlook     string        `json:"marketOutlook"`
	KeyTrends         []string      `json:"keyTrends"`
	RecommendedSkills []string      `json:"recommendedSkills"`
}

// Report is an insight with its freshness metadata.
type Report struct {
	Industry    string
	Insight     Insight
	LastUpdated time.Time
	NextUpdate  time.Time

	// Stale is true when regeneration failed and an expired cached
	// copy is being served instead.
	Stale bool
}
