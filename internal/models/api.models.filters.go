package models

// InspectionFilters defines the available filter options for listing inspections
type InspectionFilters struct {
	HiveID string `json:"hive_id" schema:"-"`
	// From and To bound the inspection date, both inclusive. Zero means open.
	From Date `json:"from" schema:"from"`
	To   Date `json:"to" schema:"to"`
}
