// Package restriction answers Pico y Placa questions: whether a plate may
// circulate in a given city at a given time. Schedules are static per city
// and keyed by the plate's last digit.
package restriction

import (
	"sort"
	"strings"
	"time"

	"platerra/internal/ownership/validate"
)

// Status is the answer to a single restriction check.
type Status struct {
	Plate      string   `json:"plate"`
	City       string   `json:"city"`
	Restricted bool     `json:"restricted"`
	Digits     []string `json:"restricted_digits,omitempty"`
	Window     string   `json:"window,omitempty"`
}

type citySchedule struct {
	window string
	// digits maps weekday to the plate last digits restricted that day.
	digits map[time.Weekday][]string
}

// Checker evaluates plates against the per-city schedules.
type Checker struct {
	cities map[string]citySchedule
}

// New creates a Checker with the standard city schedules.
func New() *Checker {
	return &Checker{cities: map[string]citySchedule{
		"bogota": {
			window: "06:00-21:00",
			digits: map[time.Weekday][]string{
				time.Monday:    {"1", "2"},
				time.Tuesday:   {"3", "4"},
				time.Wednesday: {"5", "6"},
				time.Thursday:  {"7", "8"},
				time.Friday:    {"9", "0"},
			},
		},
		"medellin": {
			window: "05:00-20:00",
			digits: map[time.Weekday][]string{
				time.Monday:    {"0", "1"},
				time.Tuesday:   {"2", "3"},
				time.Wednesday: {"4", "5"},
				time.Thursday:  {"6", "7"},
				time.Friday:    {"8", "9"},
			},
		},
		"cali": {
			window: "06:00-19:00",
			digits: map[time.Weekday][]string{
				time.Monday:    {"1", "2"},
				time.Tuesday:   {"3", "4"},
				time.Wednesday: {"5", "6"},
				time.Thursday:  {"7", "8"},
				time.Friday:    {"9", "0"},
			},
		},
	}}
}

// Check reports whether the plate is restricted in the city at time t.
// Weekends, unknown cities, and plates ending in a letter are unrestricted.
func (c *Checker) Check(plate, city string, t time.Time) Status {
	canonical := validate.CanonicalPlate(plate)
	normalizedCity := strings.ToLower(strings.TrimSpace(city))
	status := Status{Plate: canonical, City: normalizedCity}

	schedule, ok := c.cities[normalizedCity]
	if !ok {
		return status
	}
	digits, ok := schedule.digits[t.Weekday()]
	if !ok {
		return status
	}
	status.Digits = digits
	status.Window = schedule.window

	if canonical == "" {
		return status
	}
	last := string(canonical[len(canonical)-1])
	for _, d := range digits {
		if d == last {
			status.Restricted = true
			return status
		}
	}
	return status
}

// Cities lists the cities with a configured schedule.
func (c *Checker) Cities() []string {
	cities := make([]string, 0, len(c.cities))
	for city := range c.cities {
		cities = append(cities, city)
	}
	sort.Strings(cities)
	return cities
}
