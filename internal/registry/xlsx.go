package registry

import (
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// LoadXLSXPlaces reads gazetteer rows from an ops-curated spreadsheet.
// Expected columns: name, aliases (| separated), state, latitude, longitude.
// The first row is treated as a header. An empty sheetName selects the first
// sheet.
func LoadXLSXPlaces(path, sheetName string) ([]Place, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "registry: open spreadsheet %s", path)
	}

	sheet, err := getSheet(f, sheetName)
	if err != nil {
		return nil, err
	}

	var places []Place
	for i, row := range sheet.Rows {
		if i == 0 {
			continue // header
		}
		cells := rowToStrings(row)
		if len(cells) < 5 {
			continue
		}

		name := strings.TrimSpace(cells[0])
		if name == "" {
			continue
		}

		lat, err := strconv.ParseFloat(strings.TrimSpace(cells[3]), 64)
		if err != nil {
			return nil, eris.Wrapf(err, "registry: row %d: parse latitude", i+1)
		}
		lng, err := strconv.ParseFloat(strings.TrimSpace(cells[4]), 64)
		if err != nil {
			return nil, eris.Wrapf(err, "registry: row %d: parse longitude", i+1)
		}

		places = append(places, Place{
			Name:      name,
			Aliases:   splitAliases(cells[1]),
			State:     strings.TrimSpace(cells[2]),
			Latitude:  lat,
			Longitude: lng,
		})
	}

	return places, nil
}

func getSheet(f *xlsx.File, name string) (*xlsx.Sheet, error) {
	if name != "" {
		sheet, ok := f.Sheet[name]
		if !ok {
			return nil, eris.Errorf("registry: sheet %q not found", name)
		}
		return sheet, nil
	}
	if len(f.Sheets) == 0 {
		return nil, eris.New("registry: spreadsheet has no sheets")
	}
	return f.Sheets[0], nil
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for j, cell := range row.Cells {
		cells[j] = cell.String()
	}
	return cells
}

func splitAliases(s string) []string {
	var aliases []string
	for _, a := range strings.Split(s, "|") {
		if a = strings.TrimSpace(a); a != "" {
			aliases = append(aliases, a)
		}
	}
	return aliases
}
