package model

import "fmt"

// Structure is one monitored dam, immutable for an analysis run.
// the record order must align with the observation table columns.
type Structure struct {
	Name        string
	HazardClass string
	Latitude    float64
	Longitude   float64
	Agency      string

	// crest elevation in feet, the overtopping threshold
	CrestElevation float64
}

func (s *Structure) DebugString() string {
	res := fmt.Sprintf("name: %v, hazard: %v, crest: %v", s.Name, s.HazardClass, s.CrestElevation)
	return res
}

// WindowStat holds the statistics for one (structure, window) pair.
// nil fields mean the window's fit failed and the statistic is absent.
type WindowStat struct {
	KSPValue     *float64 `json:"ks_p_value,omitempty"`
	OvertopRisk  *float64 `json:"overtop_risk,omitempty"`
	ReturnPeriod *float64 `json:"return_period,omitempty"`
}

func (w *WindowStat) Absent() bool {
	if w == nil {
		return true
	}
	return w.KSPValue == nil && w.OvertopRisk == nil
}

// StructureResult is one structure with its window statistics in window order.
type StructureResult struct {
	Structure Structure
	Stats     []WindowStat
}

func (r *StructureResult) IsEmpty() bool {
	if r == nil {
		return true
	}
	return len(r.Stats) == 0
}
