package service

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var quantityPattern = regexp.MustCompile(`(?i)([0-9]+(?:\.[0-9]*)?)\s?([a-zA-Z°]+)`)

var unitAliases = map[string]string{
	"mile":        "miles",
	"kilometer":   "km",
	"kilometers":  "km",
	"kilometre":   "km",
	"kilometres":  "km",
	"fahrenheit":  "°f",
	"°fahrenheit": "°f",
	"celsius":     "°c",
	"°celsius":    "°c",
}

type linearConversion struct {
	convert func(float64) float64
	target  string
}

var conversions = map[string]linearConversion{
	"miles": {func(x float64) float64 { return x * 1.609344 }, "km"},
	"km":    {func(x float64) float64 { return x * 0.6213712 }, "miles"},
	"°f":    {func(x float64) float64 { return (x - 32) / 1.8 }, "°C"},
	"°c":    {func(x float64) float64 { return x*1.8 + 32 }, "°F"},
	"lb":    {func(x float64) float64 { return x * 0.4535924 }, "kg"},
	"kg":    {func(x float64) float64 { return x * 2.204623 }, "lb"},
}

// Conversion is one quantity found in a message together with its converted value.
type Conversion struct {
	Value      float64
	Unit       string
	Converted  float64
	TargetUnit string
}

func (c Conversion) String() string {
	return fmt.Sprintf("%s %s = %s %s", formatQuantity(c.Value), c.Unit, formatQuantity(c.Converted), c.TargetUnit)
}

type UnitConverter struct{}

func NewUnitConverter() *UnitConverter {
	return &UnitConverter{}
}

// TryConvert converts the first "<number> <unit>" in text. Only the first quantity is considered,
// if its unit is unknown there is no conversion at all.
func (u *UnitConverter) TryConvert(text string) (Conversion, bool) {
	match := quantityPattern.FindStringSubmatch(text)
	if match == nil {
		return Conversion{}, false
	}

	unit := strings.ToLower(match[2])
	if alias, ok := unitAliases[unit]; ok {
		unit = alias
	}

	conv, ok := conversions[unit]
	if !ok {
		return Conversion{}, false
	}

	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return Conversion{}, false
	}

	return Conversion{
		Value:      round2(value),
		Unit:       unit,
		Converted:  round2(conv.convert(value)),
		TargetUnit: conv.target,
	}, true
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// formatQuantity prints whole numbers with one decimal, e.g. "5.0".
func formatQuantity(x float64) string {
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}

	return s
}
