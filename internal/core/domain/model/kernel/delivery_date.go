package kernel

import "time"

// DeliveryDate is a calendar date without a time component, used for
// estimated delivery dates. The time-of-day and location information of any
// time.Time passed in is discarded; only year, month and day survive.
//
// DeliveryDate is a value object: immutable, compared by value, and safe for
// concurrent use. Its zero value is a valid "not estimated yet" date.
//
// Example:
//
//	eta := kernel.NewDeliveryDate(time.Date(2025, 4, 15, 17, 30, 0, 0, time.Local))
//	eta.String() // "2025-04-15"
type DeliveryDate struct {
	date time.Time
}

// NewDeliveryDate creates a DeliveryDate keeping only the calendar date of t.
func NewDeliveryDate(t time.Time) DeliveryDate {
	if t.IsZero() {
		return DeliveryDate{}
	}
	return DeliveryDate{
		date: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC),
	}
}

// ParseDeliveryDate parses a date in "2006-01-02" form.
func ParseDeliveryDate(s string) (DeliveryDate, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return DeliveryDate{}, err
	}
	return NewDeliveryDate(t), nil
}

// Time returns the date as a time.Time at midnight UTC.
func (d DeliveryDate) Time() time.Time {
	return d.date
}

// AtTimeOfDay combines the calendar date with the clock time of now: the date
// component comes from the delivery date, the time component from now. This
// is the exact timestamp shape handed to the notification gateway.
//
// Example:
//
//	eta := kernel.NewDeliveryDate(time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC))
//	ts := eta.AtTimeOfDay(time.Date(2025, 4, 1, 9, 45, 30, 0, time.UTC))
//	// ts is 2025-04-15 09:45:30 UTC
func (d DeliveryDate) AtTimeOfDay(now time.Time) time.Time {
	return time.Date(
		d.date.Year(), d.date.Month(), d.date.Day(),
		now.Hour(), now.Minute(), now.Second(), now.Nanosecond(),
		now.Location(),
	)
}

// IsZero reports whether no estimated date has been set.
func (d DeliveryDate) IsZero() bool {
	return d.date.IsZero()
}

// IsEqual compares two delivery dates by calendar date.
func (d DeliveryDate) IsEqual(other DeliveryDate) bool {
	return d.date.Equal(other.date)
}

// Before reports whether d falls before other on the calendar.
func (d DeliveryDate) Before(other DeliveryDate) bool {
	return d.date.Before(other.date)
}

// String returns the date in "2006-01-02" form.
func (d DeliveryDate) String() string {
	return d.date.Format(time.DateOnly)
}
