package models

import "fmt"

// Region is one of the five coarse planning regions a constituency belongs to
type Region string

const (
	RegionNorth     Region = "North"
	RegionNorthEast Region = "North-East"
	RegionEast      Region = "East"
	RegionCentral   Region = "Central"
	RegionWest      Region = "West"

	// RegionUnknown is assigned to constituencies missing from the region table.
	// It is never a valid table value.
	RegionUnknown Region = "Unknown"
)

// Regions lists the valid region labels in table order
var Regions = []Region{RegionNorth, RegionNorthEast, RegionEast, RegionCentral, RegionWest}

// Valid reports whether r is one of the five region labels
func (r Region) Valid() bool {
	switch r {
	case RegionNorth, RegionNorthEast, RegionEast, RegionCentral, RegionWest:
		return true
	default:
		return false
	}
}

// ValidateRegion checks if the region label is valid
func ValidateRegion(r Region) error {
	if !r.Valid() {
		return fmt.Errorf("invalid region: %q", string(r))
	}
	return nil
}

// RegionCount is one line of the region distribution report
type RegionCount struct {
	Region Region `json:"region"`
	Count  int    `json:"count"`
}
