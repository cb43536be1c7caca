package parser

import (
	"errors"
	"fmt"
	"strings"
)

const (
	dateKey      = "date"
	dateTemplate = "date: YYYY-MM-DD\n"
	dateLen      = len("YYYY-MM-DD")
)

// datePositions are the digit offsets of YYYY-MM-DD, hyphens excluded.
var datePositions = [8]int{0, 1, 2, 3, 5, 6, 8, 9}

var errDateWidth = errors.New("date must be YYYY-MM-DD")

// dateLineKey validates the width of a full "date: ..." header line and
// returns its sort key. A final line without a newline is measured as if it
// had one.
func dateLineKey(line string) (int64, error) {
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}
	if len(line) != len(dateTemplate) {
		return 0, errDateWidth
	}
	// Same offset as the value: two characters after "date:".
	return SortKey(line[len("date: ") : len("date: ")+dateLen])
}

// SortKey packs the eight digit bytes of a YYYY-MM-DD string into an int64,
// most significant byte first. The result equals the ASCII bytes of
// "YYYYMMDD" read as a big-endian integer, so integer order matches date
// order for four digit years. Digits are not checked against the calendar.
func SortKey(date string) (int64, error) {
	if len(date) != dateLen {
		return 0, fmt.Errorf("parser: %w: got %q", errDateWidth, date)
	}
	var k uint64
	for _, i := range datePositions {
		k = k<<8 | uint64(date[i])
	}
	return int64(k), nil
}
