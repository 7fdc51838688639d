package overtop

import (
	"fmt"
	"strconv"

	"github.com/saemrnt59/Dam-Overtopping-Frequency-Analysis/model"
	"github.com/saemrnt59/Dam-Overtopping-Frequency-Analysis/utils"
)

// Header returns the output column names for the given window count:
// the five metadata columns, then KS_PValue_W1..WK, then OverRisk_W1..WK.
func Header(windowCount int) []string {
	cols := make([]string, 0, 5+2*windowCount)
	cols = append(cols, "Name", "Hazard", "Lat", "Lon", "Agency")
	for n := 1; n <= windowCount; n++ {
		cols = append(cols, fmt.Sprintf("KS_PValue_W%d", n))
	}
	for n := 1; n <= windowCount; n++ {
		cols = append(cols, fmt.Sprintf("OverRisk_W%d", n))
	}
	return cols
}

// AssembleTable flattens per structure results into the output table,
// header first then one row per structure in input order. absent
// statistics are written as the missing marker, never coerced to zero.
func AssembleTable(results []model.StructureResult, step int) [][]string {
	windowCount := WindowCount(step)
	table := make([][]string, 0, len(results)+1)
	table = append(table, Header(windowCount))
	for i := range results {
		table = append(table, assembleRow(&results[i], windowCount))
	}
	return table
}

func assembleRow(res *model.StructureResult, windowCount int) []string {
	s := res.Structure
	row := make([]string, 0, 5+2*windowCount)
	row = append(row, s.Name, s.HazardClass,
		formatValue(s.Latitude), formatValue(s.Longitude), s.Agency)

	// p values for every window first, then every risk, both in window order
	for j := 0; j < windowCount; j++ {
		var v *float64
		if j < len(res.Stats) {
			v = res.Stats[j].KSPValue
		}
		row = append(row, formatStat(v))
	}
	for j := 0; j < windowCount; j++ {
		var v *float64
		if j < len(res.Stats) {
			v = res.Stats[j].OvertopRisk
		}
		row = append(row, formatStat(v))
	}
	return row
}

func formatStat(v *float64) string {
	if v == nil {
		return MissingMarker
	}
	return formatValue(utils.FormatFloat(*v, 6))
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
