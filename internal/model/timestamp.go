package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// A Timestamp is a clock time of hours and minutes.
type Timestamp struct {
	Hour, Minute int
}

func NewTimestampFromGotime(time time.Time) *Timestamp {
	t := Timestamp{}
	t.Hour = time.Hour()
	t.Minute = time.Minute()
	return &t
}

// NewTimestamp parses a timestamp in HH:MM format.
func NewTimestamp(s string) (Timestamp, error) {
	components := strings.Split(s, ":")
	if len(components) != 2 {
		return Timestamp{}, fmt.Errorf("given string '%s' which does not fit the HH:MM format", s)
	}
	hStr := components[0]
	mStr := components[1]
	if len(hStr) != 2 || len(mStr) != 2 {
		return Timestamp{}, fmt.Errorf("given string '%s' which does not fit the HH:MM format", s)
	}
	h, err := strconv.Atoi(hStr)
	if err != nil {
		return Timestamp{}, fmt.Errorf("error converting hour string '%s' to a number", hStr)
	}
	m, err := strconv.Atoi(mStr)
	if err != nil {
		return Timestamp{}, fmt.Errorf("error converting minute string '%s' to a number", mStr)
	}
	t := Timestamp{h, m}
	if !t.Legal() {
		return Timestamp{}, fmt.Errorf("one of the values yielded by string '%s' is illegal (%d) (%d)", s, h, m)
	}
	return t, nil
}

func (a Timestamp) ToString() string {
	hPrefix := ""
	mPrefix := ""
	if a.Hour < 10 {
		hPrefix = "0"
	}
	if a.Minute < 10 {
		mPrefix = "0"
	}
	return fmt.Sprintf("%s%d:%s%d", hPrefix, a.Hour, mPrefix, a.Minute)
}

func (a Timestamp) IsBefore(b Timestamp) bool {
	if b.Hour > a.Hour {
		return true
	} else if b.Hour == a.Hour {
		return b.Minute > a.Minute
	} else {
		return false
	}
}

func (a Timestamp) IsAfter(b Timestamp) bool {
	if a.Hour > b.Hour {
		return true
	} else if a.Hour == b.Hour {
		return a.Minute > b.Minute
	} else {
		return false
	}
}

func (t Timestamp) Legal() bool {
	return (t.Hour < 24 && t.Minute < 60) && (t.Hour >= 0 && t.Minute >= 0)
}

// Returns the duration in minutes between to a given timestamp t2.
// Does not check that t2 is in fact later!
func (t1 Timestamp) DurationInMinutesUntil(t2 Timestamp) int {
	return t2.toMinutes() - t1.toMinutes()
}

// toMinutes returns the number of minutes into the day (from 00:00) that this
// timestamp is.
func (t Timestamp) toMinutes() int {
	return t.Hour*60 + t.Minute
}
