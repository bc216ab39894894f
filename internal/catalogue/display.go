package catalogue

import "github.com/google/uuid"

// Placeholders shown for records that do not exist.
const (
	UnknownCategory  = "Unknown"
	UnassignedLot    = "Not assigned"
	UnknownCondition = "Unknown"
)

// DisplayLocation is a location as shown to people; absent parts are omitted.
type DisplayLocation struct {
	Area  string `json:"area,omitempty"`
	Zone  string `json:"zone,omitempty"`
	Floor string `json:"floor,omitempty"`
}

// DisplayRow is a Row with absent values replaced by placeholders.
type DisplayRow struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	CategoryName string          `json:"categoryName"`
	LotNumber    string          `json:"lotNumber"`
	Condition    string          `json:"condition"`
	Location     DisplayLocation `json:"location"`
}

func ToDisplay(row Row) DisplayRow {
	out := DisplayRow{
		ID:           row.ID,
		Name:         row.Name,
		CategoryName: UnknownCategory,
		LotNumber:    UnassignedLot,
		Condition:    UnknownCondition,
	}
	if row.CategoryName != nil {
		out.CategoryName = *row.CategoryName
	}
	if row.LotNumber != nil {
		out.LotNumber = *row.LotNumber
	}
	if row.Condition != nil {
		out.Condition = row.Condition.String()
	}
	if row.Location != nil && !row.Location.IsZero() {
		out.Location = DisplayLocation{
			Area:  row.Location.Area,
			Zone:  row.Location.Zone,
			Floor: row.Location.Floor,
		}
	}
	return out
}

func ToDisplayRows(rows []Row) []DisplayRow {
	out := make([]DisplayRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, ToDisplay(row))
	}
	return out
}
