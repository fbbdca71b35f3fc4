package customer

import (
	"errors"
	"fmt"
)

var (
	ErrStreetRequired = errors.New("street is required")
	ErrNumberRequired = errors.New("number must be greater than zero")
	ErrZipRequired    = errors.New("zip is required")
	ErrCityRequired   = errors.New("city is required")
)

type Address struct {
	Street string `json:"street" xml:"street"`
	Number int    `json:"number" xml:"number"`
	Zip    string `json:"zip" xml:"zip"`
	City   string `json:"city" xml:"city"`
} // @name customer.Address

func NewAddress(street string, number int, zip, city string) (Address, error) {
	a := Address{Street: street, Number: number, Zip: zip, City: city}
	if err := a.Validate(); err != nil {
		return Address{}, err
	}

	return a, nil
}

func (a Address) Validate() error {
	switch {
	case a.Street == "":
		return ErrStreetRequired
	case a.Number <= 0:
		return ErrNumberRequired
	case a.Zip == "":
		return ErrZipRequired
	case a.City == "":
		return ErrCityRequired
	}

	return nil
}

func (a Address) IsZero() bool {
	return a == Address{}
}

func (a Address) String() string {
	return fmt.Sprintf("%s, %d, %s %s", a.Street, a.Number, a.Zip, a.City)
}
