package output

// Chart is renderable chart data derived from a ranked guide table. It
// carries no rendering concerns; the presentation layer decides how to draw
// it.
type Chart struct {
	// Scores is the rank-vs-efficiency series, in rank order.
	Scores []ChartPoint `json:"scores"`

	// GCBuckets is a histogram of guide GC content in 10-point bins
	// (0-10, 10-20, ... 90-100).
	GCBuckets []ChartBucket `json:"gc_buckets"`

	// StrandCounts tallies guides per strand.
	StrandCounts map[string]int `json:"strand_counts"`
}

// ChartPoint is one rank/score pair.
type ChartPoint struct {
	Rank       int     `json:"rank"`
	Efficiency float64 `json:"efficiency_score"`
}

// ChartBucket is one histogram bin, labelled by its inclusive lower bound.
type ChartBucket struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Count int     `json:"count"`
}

// BuildChart derives chart data from a ranked table. Pure function of its
// input; the row order is assumed to be rank order (as ScoreAll emits).
func BuildChart(rows []Row) Chart {
	c := Chart{StrandCounts: map[string]int{}}

	c.GCBuckets = make([]ChartBucket, 10)
	for i := range c.GCBuckets {
		c.GCBuckets[i] = ChartBucket{From: float64(i * 10), To: float64((i + 1) * 10)}
	}

	for _, r := range rows {
		c.Scores = append(c.Scores, ChartPoint{Rank: r.Rank, Efficiency: r.Efficiency})
		bin := int(r.GCContent / 10)
		if bin > 9 { // GC == 100 lands in the last bin
			bin = 9
		}
		c.GCBuckets[bin].Count++
		c.StrandCounts[r.Strand]++
	}
	return c
}
