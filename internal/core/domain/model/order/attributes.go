package order

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/kernel"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/guard"
)

const (
	WeightMinKg   = 0.0
	WeightMaxKg   = 30.0
	NotesMaxRunes = 500
)

// Category is the kind of goods carried.
type Category string

const (
	Regular     Category = "regular"
	Food        Category = "food"
	Frozen      Category = "frozen"
	Valuable    Category = "valuable"
	Electronics Category = "electronics"
	Fashion     Category = "fashion"
	Documents   Category = "documents"
	Fragile     Category = "fragile"
	Medical     Category = "medical"
	Gift        Category = "gift"
)

var knownCategories = map[Category]struct{}{
	Regular: {}, Food: {}, Frozen: {}, Valuable: {}, Electronics: {},
	Fashion: {}, Documents: {}, Fragile: {}, Medical: {}, Gift: {},
}

// ParseCategory maps raw input onto a Category. Unknown or empty input falls
// back to Regular; the second result reports whether the input was recognized.
func ParseCategory(raw string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := knownCategories[c]; ok {
		return c, true
	}
	return Regular, false
}

func (c Category) String() string {
	return string(c)
}

// Weight is the parcel weight in kilograms, within [0, 30].
type Weight struct { //nolint:recvcheck //using for validation
	kg    float64
	guard guard.ConstructorGuard
}

var ErrWeightIsNotConstructed = errs.NewValueIsRequiredError("weight must be created via NewWeight constructor")

func NewWeight(kg float64) (Weight, error) {
	if math.IsNaN(kg) || math.IsInf(kg, 0) {
		return Weight{}, errs.NewValueIsInvalidError("weight")
	}
	if kg < WeightMinKg || kg > WeightMaxKg {
		return Weight{}, errs.NewValueIsOutOfRangeError("weight", kg, WeightMinKg, WeightMaxKg)
	}
	return Weight{kg: kg, guard: guard.NewConstructorGuard()}, nil
}

// ParseWeight accepts the textual form of a number, e.g. "12.5".
func ParseWeight(raw string) (Weight, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Weight{}, errs.NewValueIsRequiredError("weight")
	}
	kg, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight", err)
	}
	return NewWeight(kg)
}

func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}

func (w Weight) Kg() float64 {
	return w.kg
}

// Stop is a pickup or delivery point: a free-text address plus coordinates.
type Stop struct { //nolint:recvcheck //using for validation
	address  string
	location kernel.Location
	guard    guard.ConstructorGuard
}

var ErrStopIsNotConstructed = errs.NewValueIsRequiredError("stop must be created via NewStop constructor")

func NewStop(address string, location kernel.Location) (Stop, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return Stop{}, errs.NewValueIsRequiredError("address")
	}
	if err := location.Validate(); err != nil {
		return Stop{}, err
	}
	return Stop{address: address, location: location, guard: guard.NewConstructorGuard()}, nil
}

func (s Stop) Validate() error {
	return s.guard.Validate(ErrStopIsNotConstructed)
}

func (s Stop) Address() string {
	return s.address
}

func (s Stop) Location() kernel.Location {
	return s.location
}

// ValidateNotes enforces the free-text length limit on notes.
func ValidateNotes(notes string) error {
	if n := utf8.RuneCountInString(notes); n > NotesMaxRunes {
		return errs.NewValueIsOutOfRangeError("notes length", n, 0, NotesMaxRunes)
	}
	return nil
}
