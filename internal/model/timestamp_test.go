package model_test

import (
	"log"
	"testing"
	"time"

	"github.com/lcrow/almanac/internal/model"
)

func TestNewTimestamp(t *testing.T) {
	{
		testcase := "parses a regular timestamp"

		expected := model.Timestamp{Hour: 6, Minute: 5}
		result, err := model.NewTimestamp("06:05")

		if err != nil || result != expected {
			log.Fatalf("test case '%s' failed.", testcase)
		}
	}
	{
		testcase := "rejects missing leading zero"

		_, err := model.NewTimestamp("6:05")

		if err == nil {
			log.Fatalf("test case '%s' failed.", testcase)
		}
	}
	{
		testcase := "rejects out-of-range values"

		_, err := model.NewTimestamp("24:00")

		if err == nil {
			log.Fatalf("test case '%s' failed.", testcase)
		}
	}
	{
		testcase := "rejects garbage"

		_, err := model.NewTimestamp("morning")

		if err == nil {
			log.Fatalf("test case '%s' failed.", testcase)
		}
	}
}

func TestTimestampToString(t *testing.T) {
	{
		testcase := "pads single digits"

		result := model.Timestamp{Hour: 7, Minute: 3}.ToString()

		if result != "07:03" {
			log.Fatalf("test case '%s' failed.", testcase)
		}
	}
	{
		testcase := "keeps double digits"

		result := model.Timestamp{Hour: 22, Minute: 41}.ToString()

		if result != "22:41" {
			log.Fatalf("test case '%s' failed.", testcase)
		}
	}
}

func TestTimestampOrdering(t *testing.T) {
	{
		testcase := "before across the hour"

		a := model.Timestamp{Hour: 6, Minute: 59}
		b := model.Timestamp{Hour: 7, Minute: 0}

		if !a.IsBefore(b) || a.IsAfter(b) {
			log.Fatalf("test case '%s' failed.", testcase)
		}
	}
	{
		testcase := "duration until a later timestamp"

		a := model.Timestamp{Hour: 6, Minute: 30}
		b := model.Timestamp{Hour: 8, Minute: 15}

		if a.DurationInMinutesUntil(b) != 105 {
			log.Fatalf("test case '%s' failed.", testcase)
		}
	}
	{
		testcase := "from gotime keeps hour and minute"

		at := time.Date(2024, 3, 20, 18, 13, 24, 0, time.UTC)
		result := model.NewTimestampFromGotime(at)

		if *result != (model.Timestamp{Hour: 18, Minute: 13}) {
			log.Fatalf("test case '%s' failed.", testcase)
		}
	}
}
