package schema

// GrowthPoint is one year of an indicator with its year-over-year growth.
// HasGrowth is false for the first observation, which has no prior year.
type GrowthPoint struct {
	Year      int     `json:"year"`
	Value     float64 `json:"value"`
	GrowthPct float64 `json:"growth_pct"`
	HasGrowth bool    `json:"has_growth"`
}

// TrendSummary reports the fitted trend for one indicator alongside its
// observed growth, used by the trends table.
type TrendSummary struct {
	Indicator   string        `json:"indicator"`
	Points      []GrowthPoint `json:"points"`
	AnnualDrift float64       `json:"annual_drift"`
	Coverage    string        `json:"coverage"`
}

// CategoryCount is one value of a categorical column with its row count.
type CategoryCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// CoverageCell counts the observations for one indicator in one year.
type CoverageCell struct {
	Indicator string `json:"indicator"`
	Year      int    `json:"year"`
	Count     int    `json:"count"`
}

// GenderGapResult holds mean indicator values split by gender.
// Gap is Male minus Female and only meaningful when HasBoth is true.
type GenderGapResult struct {
	Indicator string  `json:"indicator"`
	Male      float64 `json:"male"`
	Female    float64 `json:"female"`
	Gap       float64 `json:"gap"`
	HasBoth   bool    `json:"has_both"`
}

// HeadlineMetric is the latest observed value for one indicator.
type HeadlineMetric struct {
	Indicator string  `json:"indicator"`
	Year      int     `json:"year"`
	Value     float64 `json:"value"`
}

// OverviewResult bundles the descriptive summary shown by the overview
// command and the dashboard overview page.
type OverviewResult struct {
	TotalRecords    int             `json:"total_records"`
	Indicators      []string        `json:"indicators"`
	YearRange       [2]int          `json:"year_range"`
	RecordTypes     []CategoryCount `json:"record_types"`
	Pillars         []CategoryCount `json:"pillars"`
	ConfidenceLevel []CategoryCount `json:"confidence_levels"`
	Coverage        []CoverageCell  `json:"coverage"`
	Headlines       []HeadlineMetric `json:"headlines"`
}
