package purchase

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/carlot/internal/config"
)

// ErrUnknownCar is returned when a car ID is not in the catalog.
var ErrUnknownCar = errors.New("purchase: unknown car")

// Catalog is the showroom's list of cars.
type Catalog struct {
	cars []config.Car
}

// NewCatalog creates a catalog from configured cars, keeping their order.
func NewCatalog(cars []config.Car) *Catalog {
	c := &Catalog{cars: make([]config.Car, len(cars))}
	copy(c.cars, cars)
	return c
}

// All returns every car in showroom order.
func (c *Catalog) All() []config.Car {
	return c.cars
}

// Len returns the number of cars.
func (c *Catalog) Len() int {
	return len(c.cars)
}

// Lookup finds a car by ID, ignoring case.
func (c *Catalog) Lookup(id string) (config.Car, error) {
	for _, car := range c.cars {
		if strings.EqualFold(car.ID, id) {
			return car, nil
		}
	}
	return config.Car{}, fmt.Errorf("%w: %q", ErrUnknownCar, id)
}

// Controls returns one control per car. Only cars still for sale carry a
// buy trigger.
func (c *Catalog) Controls() []Control {
	controls := make([]Control, len(c.cars))
	for i, car := range c.cars {
		controls[i] = Control{ID: ControlID(car.ID), Car: car.ID, BuyTrigger: car.Available}
	}
	return controls
}

// ControlID is the ID of the buy control for a car.
func ControlID(carID string) string {
	return "buy-" + carID
}

// FormatPrice renders whole dollars with thousands separators.
func FormatPrice(dollars int) string {
	s := strconv.Itoa(dollars)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-$" + b.String()
	}
	return "$" + b.String()
}
