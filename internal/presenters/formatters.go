package presenters

import (
	"fmt"
	"math"
	"time"

	"netops-dashboard/internal/aggregators"
	"netops-dashboard/internal/models"

	"github.com/dustin/go-humanize"
)

const (
	LabelBaseline = "Estableciendo línea base"
	LabelNoData   = "Sin datos"
)

var weekdayNames = [7]string{"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"}

var weekdayShort = [7]string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"}

var monthNames = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

var monthShort = [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"}

// Percent renders v with two decimals, e.g. "99.53%".
func Percent(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return LabelNoData
	}
	return humanize.FormatFloat("#,###.##", v) + "%"
}

// Growth renders a period-over-period change with an explicit sign.
func Growth(g aggregators.Growth) string {
	switch g.State {
	case aggregators.GrowthBaseline:
		return LabelBaseline
	case aggregators.GrowthNoData:
		return LabelNoData
	}
	return humanize.FormatFloat("+#,###.#", g.Percent) + "%"
}

// Duration renders minutes as hours and minutes, e.g. "2h 15m" or "45m".
func Duration(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return humanize.Comma(int64(h)) + "h"
	default:
		return fmt.Sprintf("%sh %dm", humanize.Comma(int64(h)), m)
	}
}

// Hours renders a fractional hour count with one decimal, e.g. "1.5 h".
func Hours(h float64) string {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return LabelNoData
	}
	return humanize.FormatFloat("#,###.#", h) + " h"
}

// Count renders an integer with thousands separators.
func Count(n int) string {
	return humanize.Comma(int64(n))
}

// Minutes renders a minute count with thousands separators, e.g. "12,345 min".
func Minutes(n int) string {
	return humanize.Comma(int64(n)) + " min"
}

func WeekdayName(weekday int) string {
	if weekday < 0 || weekday > 6 {
		return ""
	}
	return weekdayNames[weekday]
}

// ShortDate renders a day as "Lun 16 mar".
func ShortDate(t time.Time) string {
	return fmt.Sprintf("%s %d %s", weekdayShort[t.Weekday()], t.Day(), monthShort[t.Month()-1])
}

// MonthLabel turns a "2006-01" key into "Marzo 2026". Unknown keys are returned as is.
func MonthLabel(key string) string {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return fmt.Sprintf("%s %d", monthNames[t.Month()-1], t.Year())
}

// PeriodLabel names the window starting at start for the given granularity.
func PeriodLabel(g models.Granularity, start time.Time) string {
	switch g {
	case models.GranularityDay:
		return fmt.Sprintf("%d %s %d", start.Day(), monthShort[start.Month()-1], start.Year())
	case models.GranularityWeek:
		return fmt.Sprintf("Semana del %d %s", start.Day(), monthShort[start.Month()-1])
	case models.GranularityYear:
		return fmt.Sprintf("%d", start.Year())
	default:
		return fmt.Sprintf("%s %d", monthNames[start.Month()-1], start.Year())
	}
}

// TrendBucketLabel renders a trend bucket start the way its granularity reads.
func TrendBucketLabel(g models.Granularity, start time.Time) string {
	switch g {
	case models.GranularityDay:
		return start.Format("15:04")
	case models.GranularityYear:
		return fmt.Sprintf("%s %d", monthShort[start.Month()-1], start.Year()%100)
	default:
		return fmt.Sprintf("%d %s", start.Day(), monthShort[start.Month()-1])
	}
}

func SeverityLabel(s aggregators.Severity) string {
	switch s {
	case aggregators.SeverityLow:
		return "Baja"
	case aggregators.SeverityMedium:
		return "Media"
	case aggregators.SeverityHigh:
		return "Alta"
	case aggregators.SeverityCritical:
		return "Crítica"
	default:
		return "Sin caídas"
	}
}

func SLAStatusLabel(s aggregators.SLAStatus) string {
	switch s {
	case aggregators.SLAStatusCritical:
		return "Crítico"
	case aggregators.SLAStatusWarning:
		return "Advertencia"
	default:
		return "Óptimo"
	}
}

func SourceLabel(s models.SnapshotSource) string {
	if s == models.SnapshotSourceSample {
		return "Datos de muestra"
	}
	return "En vivo"
}

// Ago renders the time elapsed since t in Spanish, e.g. "hace 5 min".
func Ago(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "hace instantes"
	case d < time.Hour:
		return fmt.Sprintf("hace %d min", int(d/time.Minute))
	case d < 24*time.Hour:
		return fmt.Sprintf("hace %d h", int(d/time.Hour))
	default:
		days := int(d / (24 * time.Hour))
		return "hace " + humanize.Comma(int64(days)) + " " + plural(days, "día", "días")
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
