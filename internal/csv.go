package internal

import "io"

type CSVService interface {
	CsvToEntities(file io.Reader,
		entityMapper func(record map[string]string) (interface{}, error)) ([]interface{}, error)
}
