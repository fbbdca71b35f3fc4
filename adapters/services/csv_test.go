package services_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/storefront/backend/adapters/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityRow(record map[string]string) (interface{}, error) {
	return record, nil
}

func TestCsvToEntities(t *testing.T) {
	input := "Name, Price,description\nKeyboard, 49.90,Mechanical\nMouse,19.5,\n"

	rows, err := services.NewCSVService().CsvToEntities(strings.NewReader(input), identityRow)
	require.NoError(t, err)

	assert.Equal(t, []interface{}{
		map[string]string{"name": "Keyboard", "price": "49.90", "description": "Mechanical"},
		map[string]string{"name": "Mouse", "price": "19.5", "description": ""},
	}, rows)
}

func TestCsvToEntitiesHeaderOnly(t *testing.T) {
	rows, err := services.NewCSVService().CsvToEntities(strings.NewReader("name,price\n"), identityRow)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCsvToEntitiesEmpty(t *testing.T) {
	_, err := services.NewCSVService().CsvToEntities(strings.NewReader(""), identityRow)
	assert.ErrorIs(t, err, services.ErrEmptyCSV)
}

func TestCsvToEntitiesMapperError(t *testing.T) {
	mapperErr := errors.New("bad row")

	_, err := services.NewCSVService().CsvToEntities(strings.NewReader("name\nA\nB\n"), func(record map[string]string) (interface{}, error) {
		if record["name"] == "B" {
			return nil, mapperErr
		}

		return record, nil
	})
	assert.ErrorIs(t, err, mapperErr)
	assert.ErrorContains(t, err, "line 3")
}

func TestCsvToEntitiesMalformed(t *testing.T) {
	_, err := services.NewCSVService().CsvToEntities(strings.NewReader("name,price\nA,1,extra\n"), identityRow)
	assert.Error(t, err)
}

func TestNewCSVServiceIsShared(t *testing.T) {
	assert.Same(t, services.NewCSVService(), services.NewCSVService())
}
