package aggregators

import (
	"fmt"
	"strconv"

	"netops-dashboard/internal/models"
)

type View string

const (
	ViewComparative View = "comparative"
	ViewHeatmap     View = "heatmap"
	ViewSLAHistory  View = "sla_history"
	ViewWeekday     View = "weekday"
	ViewTrends      View = "trends"
)

func ParseView(s string) (View, error) {
	switch v := View(s); v {
	case ViewComparative, ViewHeatmap, ViewSLAHistory, ViewWeekday, ViewTrends:
		return v, nil
	}
	return "", fmt.Errorf("invalid view: %q", s)
}

const (
	GroupCurrent  = "current"
	GroupPrevious = "previous"
)

// CellKey addresses one rendered cell of a view. Unused parts stay zero:
//   - comparative: Group current|previous, optional Provider, optional Bucket site impact
//   - heatmap:     Group provider name, Bucket day ("" for the row total)
//   - sla_history: Bucket month
//   - weekday:     Bucket weekday index, 0 is Sunday
//   - trends:      Provider, Bucket bucket key
type CellKey struct {
	View     View               `json:"view"`
	Group    string             `json:"group,omitempty"`
	Provider models.ProviderKey `json:"provider"`
	Bucket   string             `json:"bucket,omitempty"`
}

// DrilldownIndex maps every cell to the records that produced it. It is
// filled in the same pass that computes the cell values.
type DrilldownIndex map[CellKey][]*models.IncidentRecord

func (d DrilldownIndex) add(key CellKey, rec *models.IncidentRecord) {
	d[key] = append(d[key], rec)
}

// Lookup returns the contributing records of key, or nil for an empty cell.
func (d DrilldownIndex) Lookup(key CellKey) []*models.IncidentRecord {
	return d[key]
}

func weekdayBucket(day int) string {
	return strconv.Itoa(day)
}
