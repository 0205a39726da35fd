package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

const (
	// DateLayout is the stored form of Job.Date.
	DateLayout = "2006-01-02"
	// ClockLayout is the stored form of Job.StartTime and Job.EndTime.
	ClockLayout = "15:04"
)

// PaymentType describes how a shift is paid.
type PaymentType string

const (
	PaymentPerHour         PaymentType = "PerHour"
	PaymentFixedPrice      PaymentType = "FixedPrice"
	PaymentWithTips        PaymentType = "WithTips"
	PaymentTipBasedMinWage PaymentType = "TipBasedMinWage"
)

var paymentTypes = []PaymentType{PaymentPerHour, PaymentFixedPrice, PaymentWithTips, PaymentTipBasedMinWage}

func (p PaymentType) Valid() bool { return slices.Contains(paymentTypes, p) }

// Currency is the ISO code the payment amount is expressed in.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyILS Currency = "ILS"
)

var currencies = []Currency{CurrencyUSD, CurrencyEUR, CurrencyILS}

func (c Currency) Valid() bool { return slices.Contains(currencies, c) }

// JobState is the lifecycle position of a job at a given instant. It is
// always derived, never stored.
type JobState string

const (
	JobActive  JobState = "active"
	JobExpired JobState = "expired"
	JobDeleted JobState = "deleted"
)

// Location is where the shift takes place.
type Location struct {
	City   string `json:"city" bson:"city"`
	Street string `json:"street,omitempty" bson:"street,omitempty"`
	Number string `json:"number,omitempty" bson:"number,omitempty"`
}

// JobFields is the owner-editable part of a job.
type JobFields struct {
	Role          string
	Venue         string
	Location      Location
	Date          string
	StartTime     string
	EndTime       string
	PaymentType   PaymentType
	PaymentAmount float64
	Currency      Currency
	Description   string
}

// Validate checks presence and format of every required field. It does not
// look at the clock; the future-end rule is enforced by the registry.
func (f JobFields) Validate() error {
	var missing []string
	for name, v := range map[string]string{
		"role":          f.Role,
		"venue":         f.Venue,
		"location.city": f.Location.City,
		"date":          f.Date,
		"startTime":     f.StartTime,
		"endTime":       f.EndTime,
		"paymentType":   string(f.PaymentType),
		"currency":      string(f.Currency),
	} {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return Validation("missing required fields: %s", strings.Join(missing, ", "))
	}

	if !matchesLayout(DateLayout, f.Date) {
		return Validation("date must be formatted as YYYY-MM-DD")
	}
	if !matchesLayout(ClockLayout, f.StartTime) {
		return Validation("startTime must be formatted as HH:MM")
	}
	if !matchesLayout(ClockLayout, f.EndTime) {
		return Validation("endTime must be formatted as HH:MM")
	}
	if !f.PaymentType.Valid() {
		return Validation("paymentType must be one of %v", paymentTypes)
	}
	if !f.Currency.Valid() {
		return Validation("currency must be one of %v", currencies)
	}
	if f.PaymentAmount < 0 {
		return Validation("paymentAmount must not be negative")
	}
	return nil
}

// matchesLayout reports whether s is exactly layout-formatted. Stored dates and
// times are compared as strings, so unpadded values such as "9:00" are rejected.
func matchesLayout(layout, s string) bool {
	t, err := time.Parse(layout, s)
	return err == nil && t.Format(layout) == s
}

// EndsAt combines Date and EndTime in loc.
func (f JobFields) EndsAt(loc *time.Location) (time.Time, error) {
	return CombineDateTime(f.Date, f.EndTime, loc)
}

// Job is a posted shift.
type Job struct {
	ID            string      `json:"id" bson:"_id"`
	Role          string      `json:"role" bson:"role"`
	Venue         string      `json:"venue" bson:"venue"`
	Location      Location    `json:"location" bson:"location"`
	Date          string      `json:"date" bson:"date"`
	StartTime     string      `json:"start_time" bson:"start_time"`
	EndTime       string      `json:"end_time" bson:"end_time"`
	PaymentType   PaymentType `json:"payment_type" bson:"payment_type"`
	PaymentAmount float64     `json:"payment_amount" bson:"payment_amount"`
	Currency      Currency    `json:"currency" bson:"currency"`
	Description   string      `json:"description,omitempty" bson:"description,omitempty"`
	CreatedBy     string      `json:"created_by" bson:"created_by"`
	DeletedAt     *time.Time  `json:"deleted_at" bson:"deleted_at"`
	CreatedAt     time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at" bson:"updated_at"`
}

// Fields returns the editable part of j.
func (j *Job) Fields() JobFields {
	return JobFields{
		Role:          j.Role,
		Venue:         j.Venue,
		Location:      j.Location,
		Date:          j.Date,
		StartTime:     j.StartTime,
		EndTime:       j.EndTime,
		PaymentType:   j.PaymentType,
		PaymentAmount: j.PaymentAmount,
		Currency:      j.Currency,
		Description:   j.Description,
	}
}

// SetFields replaces every editable attribute of j.
func (j *Job) SetFields(f JobFields) {
	j.Role = f.Role
	j.Venue = f.Venue
	j.Location = f.Location
	j.Date = f.Date
	j.StartTime = f.StartTime
	j.EndTime = f.EndTime
	j.PaymentType = f.PaymentType
	j.PaymentAmount = f.PaymentAmount
	j.Currency = f.Currency
	j.Description = f.Description
}

func (j *Job) OwnedBy(userID string) bool { return userID != "" && j.CreatedBy == userID }

func (j *Job) IsDeleted() bool { return j.DeletedAt != nil }

// EndsAt combines Date and EndTime in loc.
func (j *Job) EndsAt(loc *time.Location) (time.Time, error) {
	return CombineDateTime(j.Date, j.EndTime, loc)
}

// HasEnded reports whether the job's end instant is at or before now. Date
// and EndTime are read in now's location. Unparseable schedules count as ended.
func (j *Job) HasEnded(now time.Time) bool {
	end, err := j.EndsAt(now.Location())
	if err != nil {
		return true
	}
	return !end.After(now)
}

// IsActive is true while the job is not deleted and its end instant is
// strictly after now.
func (j *Job) IsActive(now time.Time) bool {
	return !j.IsDeleted() && !j.HasEnded(now)
}

// State derives the lifecycle state. Deleted wins over Expired.
func (j *Job) State(now time.Time) JobState {
	switch {
	case j.IsDeleted():
		return JobDeleted
	case j.HasEnded(now):
		return JobExpired
	default:
		return JobActive
	}
}

// CombineDateTime joins a YYYY-MM-DD date and an HH:MM clock into an instant in loc.
func CombineDateTime(date, clock string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DateLayout+" "+ClockLayout, date+" "+clock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("combine %q %q: %w", date, clock, err)
	}
	return t, nil
}
