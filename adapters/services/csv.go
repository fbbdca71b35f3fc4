package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

var ErrEmptyCSV = errors.New("csv file has no header")

var (
	csvServiceInstance *csvService
	once               sync.Once
)

type csvService struct{}

func NewCSVService() *csvService {
	once.Do(func() {
		csvServiceInstance = &csvService{}
	})
	return csvServiceInstance
}

// CsvToEntities reads the header row and hands every following record to
// entityMapper keyed by lower-cased column name.
func (c *csvService) CsvToEntities(file io.Reader,
	entityMapper func(record map[string]string) (interface{}, error)) ([]interface{}, error) {
	csvReader := csv.NewReader(file)
	csvReader.TrimLeadingSpace = true

	header, err := csvReader.Read()
	if err == io.EOF {
		return nil, ErrEmptyCSV
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}

	var entityList []interface{}
	for line := 2; ; line++ {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}

		row := make(map[string]string, len(header))
		for i, column := range header {
			if i < len(record) {
				row[column] = strings.TrimSpace(record[i])
			}
		}

		entity, err := entityMapper(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		entityList = append(entityList, entity)
	}

	return entityList, nil
}
