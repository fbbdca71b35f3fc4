package product

import "math"

// IncreasePrice raises the price of every product by percent, rounding to
// cents.
func IncreasePrice(products []*Product, percent float64) error {
	for _, p := range products {
		price := math.Round(p.Price*(1+percent/100)*100) / 100
		if err := p.ChangePrice(price); err != nil {
			return err
		}
	}

	return nil
}
