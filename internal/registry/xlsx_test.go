package registry

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
)

func createPlacesXLSX(t *testing.T, sheetName string, rows [][]string) string {
	t.Helper()
	f := xlsx.NewFile()
	sheet, err := f.AddSheet(sheetName)
	require.NoError(t, err)
	for _, rowData := range rows {
		row := sheet.AddRow()
		for _, cellData := range rowData {
			row.AddCell().SetString(cellData)
		}
	}
	path := filepath.Join(t.TempDir(), "places.xlsx")
	require.NoError(t, f.Save(path))
	return path
}

func TestLoadXLSXPlaces(t *testing.T) {
	t.Parallel()
	path := createPlacesXLSX(t, "Places", [][]string{
		{"name", "aliases", "state", "latitude", "longitude"},
		{"Hosur", "Hosuru", "Tamil Nadu", "12.7409", "77.8253"},
		{"Erode", "", "Tamil Nadu", "11.3410", "77.7172"},
		{"Shimla", "Simla|Shimla Town", "Himachal Pradesh", "31.1048", "77.1734"},
	})

	places, err := LoadXLSXPlaces(path, "Places")
	require.NoError(t, err)
	require.Len(t, places, 3)

	assert.Equal(t, "Hosur", places[0].Name)
	assert.Equal(t, []string{"Hosuru"}, places[0].Aliases)
	assert.InDelta(t, 12.7409, places[0].Latitude, 0.0001)

	assert.Empty(t, places[1].Aliases)
	assert.Equal(t, []string{"Simla", "Shimla Town"}, places[2].Aliases)
}

func TestLoadXLSXPlaces_DefaultSheet(t *testing.T) {
	t.Parallel()
	path := createPlacesXLSX(t, "Anything", [][]string{
		{"name", "aliases", "state", "latitude", "longitude"},
		{"Hosur", "", "Tamil Nadu", "12.7409", "77.8253"},
	})

	places, err := LoadXLSXPlaces(path, "")
	require.NoError(t, err)
	assert.Len(t, places, 1)
}

func TestLoadXLSXPlaces_SheetNotFound(t *testing.T) {
	t.Parallel()
	path := createPlacesXLSX(t, "Places", [][]string{
		{"name", "aliases", "state", "latitude", "longitude"},
	})

	_, err := LoadXLSXPlaces(path, "Missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadXLSXPlaces_BadCoordinate(t *testing.T) {
	t.Parallel()
	path := createPlacesXLSX(t, "Places", [][]string{
		{"name", "aliases", "state", "latitude", "longitude"},
		{"Hosur", "", "Tamil Nadu", "north-ish", "77.8253"},
	})

	_, err := LoadXLSXPlaces(path, "Places")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse latitude")
}

func TestLoadXLSXPlaces_SkipsBlankAndShortRows(t *testing.T) {
	t.Parallel()
	path := createPlacesXLSX(t, "Places", [][]string{
		{"name", "aliases", "state", "latitude", "longitude"},
		{"", "", "Tamil Nadu", "1.0", "2.0"},
		{"OnlyTwoCells", "x"},
		{"Erode", "", "Tamil Nadu", "11.3410", "77.7172"},
	})

	places, err := LoadXLSXPlaces(path, "Places")
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "Erode", places[0].Name)
}
