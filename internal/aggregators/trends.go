package aggregators

import (
	"math"
	"sort"
	"time"

	"netops-dashboard/internal/models"
)

const (
	hourBucketLayout  = "2006-01-02T15"
	dayBucketLayout   = "2006-01-02"
	monthBucketLayout = "2006-01"
)

type TrendBucket struct {
	Key   string    `json:"key"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type TrendSeries struct {
	Provider models.ProviderKey `json:"provider"`
	Label    string             `json:"label"`
	Values   []int              `json:"values"`
	Total    int                `json:"total"`
}

type Trends struct {
	Granularity models.Granularity `json:"granularity"`
	Buckets     []TrendBucket      `json:"buckets"`
	Series      []TrendSeries      `json:"series"`
	MaxValue    int                `json:"maxValue"`
	Drilldown   DrilldownIndex     `json:"-"`
}

// trendBuckets generates the trailing buckets for granularity, oldest first:
// 24 hours for day, 7 days for week, 30 days for month, 12 months for year.
func trendBuckets(granularity models.Granularity, now time.Time) ([]TrendBucket, string) {
	loc := now.Location()
	y, m, d := now.Date()
	h := now.Hour()

	var buckets []TrendBucket
	switch granularity {
	case models.GranularityDay:
		buckets = make([]TrendBucket, 24)
		for i := range buckets {
			start := time.Date(y, m, d, h-(23-i), 0, 0, 0, loc)
			buckets[i] = TrendBucket{Key: start.Format(hourBucketLayout), Start: start, End: start.Add(time.Hour)}
		}
		return buckets, hourBucketLayout
	case models.GranularityWeek, models.GranularityMonth:
		n := 7
		if granularity == models.GranularityMonth {
			n = 30
		}
		buckets = make([]TrendBucket, n)
		for i := range buckets {
			start := time.Date(y, m, d-(n-1-i), 0, 0, 0, 0, loc)
			buckets[i] = TrendBucket{Key: start.Format(dayBucketLayout), Start: start, End: time.Date(y, m, d-(n-1-i)+1, 0, 0, 0, 0, loc)}
		}
		return buckets, dayBucketLayout
	default:
		buckets = make([]TrendBucket, 12)
		for i := range buckets {
			start := time.Date(y, m-time.Month(11-i), 1, 0, 0, 0, 0, loc)
			buckets[i] = TrendBucket{Key: start.Format(monthBucketLayout), Start: start, End: start.AddDate(0, 1, 0)}
		}
		return buckets, monthBucketLayout
	}
}

// BuildTrends counts, per selected provider key, the records falling in each
// trailing bucket. Records whose key is not selected contribute nothing.
func BuildTrends(records []models.IncidentRecord, granularity models.Granularity, selected []models.ProviderKey, now time.Time, th Thresholds) *Trends {
	granularity = granularity.OrDefault()
	buckets, layout := trendBuckets(granularity, now)

	out := &Trends{
		Granularity: granularity,
		Buckets:     buckets,
		Series:      []TrendSeries{},
		Drilldown:   DrilldownIndex{},
	}

	bucketIndex := make(map[string]int, len(buckets))
	for i, b := range buckets {
		bucketIndex[b.Key] = i
	}

	seriesIndex := make(map[models.ProviderKey]int, len(selected))
	for _, k := range selected {
		key := models.NewProviderKey(k.Provider, k.Country)
		if _, dup := seriesIndex[key]; dup {
			continue
		}
		seriesIndex[key] = len(out.Series)
		out.Series = append(out.Series, TrendSeries{Provider: key, Label: key.Label(), Values: make([]int, len(buckets))})
	}

	for i := range records {
		rec := &records[i]
		if !rec.HasStartTime() {
			continue
		}
		key := rec.ProviderKey()
		s, ok := seriesIndex[key]
		if !ok {
			continue
		}
		bucketKey := rec.StartTime.In(now.Location()).Format(layout)
		b, ok := bucketIndex[bucketKey]
		if !ok {
			continue
		}
		out.Series[s].Values[b]++
		out.Series[s].Total++
		out.Drilldown.add(CellKey{View: ViewTrends, Provider: key, Bucket: bucketKey}, rec)
	}

	maxValue := 0
	for _, s := range out.Series {
		for _, v := range s.Values {
			if v > maxValue {
				maxValue = v
			}
		}
	}
	if maxValue == 0 {
		out.MaxValue = th.TrendEmptyAxis
	} else {
		out.MaxValue = int(math.Ceil(float64(maxValue) * th.TrendHeadroom))
	}

	return out
}

type ProviderOption struct {
	Key       models.ProviderKey `json:"key"`
	Value     string             `json:"value"`
	Label     string             `json:"label"`
	Incidents int                `json:"incidents"`
}

// ProviderOptions lists the selectable trend series. Keys are built with the
// same ProviderKey function used for bucketing.
func ProviderOptions(records []models.IncidentRecord) []ProviderOption {
	index := map[models.ProviderKey]int{}
	options := []ProviderOption{}
	for i := range records {
		key := records[i].ProviderKey()
		pos, ok := index[key]
		if !ok {
			pos = len(options)
			index[key] = pos
			options = append(options, ProviderOption{Key: key, Value: key.String(), Label: key.Label()})
		}
		options[pos].Incidents++
	}
	sort.SliceStable(options, func(i, j int) bool {
		if options[i].Incidents != options[j].Incidents {
			return options[i].Incidents > options[j].Incidents
		}
		return options[i].Label < options[j].Label
	})
	return options
}
