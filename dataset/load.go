package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/saemrnt59/Dam-Overtopping-Frequency-Analysis/common"
	"github.com/saemrnt59/Dam-Overtopping-Frequency-Analysis/model"
	"github.com/saemrnt59/Dam-Overtopping-Frequency-Analysis/utils"
	"go.uber.org/zap"
)

const structureFieldCount = 6

// LoadStructures reads the structure metadata table, one record per dam:
// name,hazardClass,latitude,longitude,agency,crestElevation. the record
// order must match the observation table's column order.
func LoadStructures(ctx context.Context, path string) ([]model.Structure, error) {
	logger := utils.GetLogger(ctx)

	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: empty metadata table: %w", path, common.ErrorMalformedInput)
	}

	res := make([]model.Structure, 0, len(records))
	for i, record := range records {
		if len(record) != structureFieldCount {
			return nil, fmt.Errorf("%s row %d: %d fields, want %d: %w",
				path, i, len(record), structureFieldCount, common.ErrorMalformedInput)
		}
		if i == 0 && isHeaderRow(record[2:4]) {
			continue
		}

		lat, err := parseField(path, i, "latitude", record[2])
		if err != nil {
			return nil, err
		}
		lon, err := parseField(path, i, "longitude", record[3])
		if err != nil {
			return nil, err
		}
		crest, err := parseField(path, i, "crestElevation", record[5])
		if err != nil {
			return nil, err
		}

		res = append(res, model.Structure{
			Name:           record[0],
			HazardClass:    record[1],
			Latitude:       lat,
			Longitude:      lon,
			Agency:         record[4],
			CrestElevation: crest,
		})
	}

	logger.Debug("structure metadata loaded", zap.String("path", path), zap.Int("structures", len(res)))
	return res, nil
}

// LoadObservations reads the water level table into one series per structure.
// the file is row per time step, the first column is a row index and gets
// stripped, the remaining columns must match structureCount or the whole run
// is invalid.
func LoadObservations(ctx context.Context, path string, structureCount int) ([][]float64, error) {
	logger := utils.GetLogger(ctx)

	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	series := make([][]float64, structureCount)
	rows := 0
	for i, record := range records {
		if len(record) != structureCount+1 {
			return nil, fmt.Errorf("%s row %d: %d observation columns, want %d: %w",
				path, i, len(record)-1, structureCount, common.ErrorMalformedInput)
		}
		if i == 0 && isHeaderRow(record[1:]) {
			continue
		}

		// record[0] is the row index, dropped
		for c, cell := range record[1:] {
			v, err := parseField(path, i, "observation", cell)
			if err != nil {
				return nil, err
			}
			series[c] = append(series[c], v)
		}
		rows++
	}

	logger.Debug("observation table loaded", zap.String("path", path),
		zap.Int("rows", rows), zap.Int("columns", structureCount))
	return series, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", path, err, common.ErrorMalformedInput)
	}
	return records, nil
}

// isHeaderRow reports whether none of the cells parse as numbers, which
// marks the optional header line of an input table.
func isHeaderRow(cells []string) bool {
	for _, cell := range cells {
		if _, err := strconv.ParseFloat(cell, 64); err == nil {
			return false
		}
	}
	return true
}

func parseField(path string, row int, name string, cell string) (float64, error) {
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, fmt.Errorf("%s row %d: bad %s %q: %w", path, row, name, cell, common.ErrorMalformedInput)
	}
	return v, nil
}
