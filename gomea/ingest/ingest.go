// Package ingest builds a gomea.Instance and a starting gomea.Route from
// tabular client/shift records. Reading the records themselves from a
// spreadsheet or database is an out-of-scope collaborator; this package
// starts from already-parsed Go structs.
package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vrp-gomea/gomea/gomea"
)

// ClientRecord is one row of the activity/client table. Rows are assumed to
// be ordered so that row index i corresponds to client id i+1.
type ClientRecord struct {
	ActivityID    int
	Duration      float64 // minutes
	ActivityLevel int
	ShiftID       int // 0-based shift index this client's seed route assigns it to
	TWBool        bool
	TWStart       string // "HH:MM:SS", used only when TWBool is true
	TWEnd         string
}

// ShiftRecord is one row of the shift table.
type ShiftRecord struct {
	ShiftID    int
	ShiftStart string // "HH:MM:SS"
	ShiftEnd   string
	ShiftLevel int
}

// ParseClock converts a "HH:MM:SS" (or "HH:MM") wall-clock string to
// minutes-since-midnight via 60*hour + minute + second/60.
func ParseClock(s string) (float64, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("ingest: malformed clock value %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("ingest: malformed hour in %q: %w", s, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("ingest: malformed minute in %q: %w", s, err)
	}
	var second float64
	if len(parts) == 3 {
		second, err = strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return 0, fmt.Errorf("ingest: malformed second in %q: %w", s, err)
		}
	}
	return 60*float64(hour) + float64(minute) + second/60, nil
}

// defaultWindowLength is the width, in minutes, of the interpolated time
// window assigned to clients whose record does not carry an explicit window.
const defaultWindowLength = 60.0

// LoadInstance builds an Instance and seed Route from clients, shifts and a
// travel-time matrix d (n x n, supplied by the caller — travel-matrix
// construction is out of scope here). For clients without an
// explicit time window (TWBool false), a window of windowLength minutes is
// centered on the arrival time the seed route/shift timing would produce;
// where that would start before the shift's start, the window is moved
// later to start at the shift's start, keeping its full width. The window's
// end is not limited to the shift's end. Pass windowLength <= 0 to use the
// default of 60 minutes.
func LoadInstance(clients []ClientRecord, shifts []ShiftRecord, d [][]float64, windowLength float64) (*gomea.Instance, gomea.Route, error) {
	if windowLength <= 0 {
		windowLength = defaultWindowLength
	}

	n := len(clients) + 1
	v := len(shifts)

	p := make([]float64, n)
	ss := make([]float64, v)
	u := make([]float64, v)
	for k, sh := range shifts {
		start, err := ParseClock(sh.ShiftStart)
		if err != nil {
			return nil, nil, fmt.Errorf("ingest: shift %d start: %w", k, err)
		}
		end, err := ParseClock(sh.ShiftEnd)
		if err != nil {
			return nil, nil, fmt.Errorf("ingest: shift %d end: %w", k, err)
		}
		ss[k] = start
		u[k] = end - start
	}

	q := make([][]bool, n-1)
	route := make(gomea.Route, v)
	for i, c := range clients {
		p[i+1] = c.Duration
		if c.ShiftID < 0 || c.ShiftID >= v {
			return nil, nil, fmt.Errorf("ingest: client row %d has out-of-range shift id %d", i, c.ShiftID)
		}
		row := make([]bool, v)
		for k, sh := range shifts {
			row[k] = c.ActivityLevel <= sh.ShiftLevel
		}
		q[i] = row
		route[c.ShiftID] = append(route[c.ShiftID], i+1)
	}

	// Step 1: temporary windows spanning the whole shift, used only to plan
	// a provisional arrival schedule that interpolated windows are centered
	// on.
	twTemp := make([]gomea.TimeWindow, n)
	for i, c := range clients {
		twTemp[i+1] = gomea.TimeWindow{Start: ss[c.ShiftID], End: ss[c.ShiftID] + u[c.ShiftID]}
	}
	tempIns, err := gomea.NewInstance(n, v, d, p, twTemp, q, u, ss)
	if err != nil {
		return nil, nil, fmt.Errorf("ingest: building provisional instance: %w", err)
	}
	provisional := gomea.Plan(tempIns, route)

	tw := make([]gomea.TimeWindow, n)
	for i, c := range clients {
		if c.TWBool {
			start, err := ParseClock(c.TWStart)
			if err != nil {
				return nil, nil, fmt.Errorf("ingest: client row %d tw_start: %w", i, err)
			}
			end, err := ParseClock(c.TWEnd)
			if err != nil {
				return nil, nil, fmt.Errorf("ingest: client row %d tw_end: %w", i, err)
			}
			tw[i+1] = gomea.TimeWindow{Start: start, End: end}
			continue
		}

		pos := positionInRoute(route[c.ShiftID], i+1)
		mid := provisional[c.ShiftID][pos+1]
		shiftStart := ss[c.ShiftID]
		left := windowLength / 2
		if mid-shiftStart < left {
			left = mid - shiftStart
		}
		right := windowLength - left
		tw[i+1] = gomea.TimeWindow{Start: mid - left, End: mid + right}
	}

	ins, err := gomea.NewInstance(n, v, d, p, tw, q, u, ss)
	if err != nil {
		return nil, nil, fmt.Errorf("ingest: building instance: %w", err)
	}
	return ins, route, nil
}

// positionInRoute returns the index of clientID within shiftRoute.
func positionInRoute(shiftRoute []int, clientID int) int {
	for i, c := range shiftRoute {
		if c == clientID {
			return i
		}
	}
	return -1
}
