package ephem

import (
	"encoding/json"
	"io"
	"time"
)

// TableExport is the JSON-serializable form of an ephemeris table.
type TableExport struct {
	GeneratedAt time.Time   `json:"generated_at"`
	Frame       string      `json:"frame"`
	Rows        []RowExport `json:"rows"`
}

// RowExport is a JSON-friendly table row.
type RowExport struct {
	JDE      float64 `json:"jde"`
	Date     string  `json:"date"`
	X        float64 `json:"x_au"`
	Y        float64 `json:"y_au"`
	Z        float64 `json:"z_au"`
	RadiusAU float64 `json:"r_au"`
	EclLon   float64 `json:"ecl_lon_deg"`
	EclLat   float64 `json:"ecl_lat_deg"`
	InWindow bool    `json:"in_window"`
}

// Export converts rows to an exportable table.
func Export(rows []Row, generatedAt time.Time) *TableExport {
	export := &TableExport{
		GeneratedAt: generatedAt,
		Frame:       "heliocentric ecliptic J2000",
	}
	for _, r := range rows {
		export.Rows = append(export.Rows, RowExport{
			JDE:      r.Epoch.JulianEphemerisDay(),
			Date:     r.Epoch.String(),
			X:        r.Pos.X,
			Y:        r.Pos.Y,
			Z:        r.Pos.Z,
			RadiusAU: r.RadiusAU(),
			EclLon:   r.Pos.EclipticLonDeg(),
			EclLat:   r.Pos.EclipticLatDeg(),
			InWindow: r.InWindow,
		})
	}
	return export
}

// WriteJSON writes the table as indented JSON to the given writer.
func (t *TableExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(t)
}
