package domain

import (
	"cmp"
	"slices"
	"time"
)

// DateRange selects the calendar-date browse window for a job search.
type DateRange string

const (
	RangeAll       DateRange = "all"
	RangeToday     DateRange = "today"
	RangeTomorrow  DateRange = "tomorrow"
	RangeThisWeek  DateRange = "this_week"
	RangeThisMonth DateRange = "this_month"
)

// ParseDateRange accepts the wire names; empty means RangeAll.
func ParseDateRange(s string) (DateRange, error) {
	switch r := DateRange(s); r {
	case "":
		return RangeAll, nil
	case RangeAll, RangeToday, RangeTomorrow, RangeThisWeek, RangeThisMonth:
		return r, nil
	default:
		return "", Validation("dateRange must be one of all, today, tomorrow, this_week, this_month")
	}
}

// Window returns the inclusive [from, to] dates (YYYY-MM-DD) of r relative to
// now's calendar day. Weeks run Monday through Sunday. ok is false for RangeAll.
func (r DateRange) Window(now time.Time) (from, to string, ok bool) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var start, end time.Time
	switch r {
	case RangeToday:
		start, end = day, day
	case RangeTomorrow:
		start = day.AddDate(0, 0, 1)
		end = start
	case RangeThisWeek:
		offset := (int(day.Weekday()) + 6) % 7
		start = day.AddDate(0, 0, -offset)
		end = start.AddDate(0, 0, 6)
	case RangeThisMonth:
		start = time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		end = start.AddDate(0, 1, -1)
	default:
		return "", "", false
	}
	return start.Format(DateLayout), end.Format(DateLayout), true
}

// Activity restricts a job listing by lifecycle state at JobFilter.At.
type Activity int

const (
	// AnyActivity applies no time predicate; IncludeDeleted decides on deleted jobs.
	AnyActivity Activity = iota
	// ActiveOnly keeps jobs that are not deleted and end strictly after At.
	ActiveOnly
	// InactiveOnly keeps jobs that are deleted or have ended by At.
	InactiveOnly
)

// JobFilter is the predicate set shared by every job listing. Repositories
// translate it into store queries; Matches is the reference semantics.
type JobFilter struct {
	OwnerID        string
	ExcludeOwnerID string
	ExcludeJobIDs  []string
	City           string
	Role           string
	DateFrom       string // inclusive, YYYY-MM-DD
	DateTo         string // inclusive, YYYY-MM-DD
	IncludeDeleted bool
	Activity       Activity
	At             time.Time
}

// Matches reports whether j satisfies f.
func (f JobFilter) Matches(j *Job) bool {
	switch f.Activity {
	case ActiveOnly:
		if !j.IsActive(f.At) {
			return false
		}
	case InactiveOnly:
		if j.IsActive(f.At) {
			return false
		}
	default:
		if j.IsDeleted() && !f.IncludeDeleted {
			return false
		}
	}
	if f.OwnerID != "" && j.CreatedBy != f.OwnerID {
		return false
	}
	if f.ExcludeOwnerID != "" && j.CreatedBy == f.ExcludeOwnerID {
		return false
	}
	if slices.Contains(f.ExcludeJobIDs, j.ID) {
		return false
	}
	if f.City != "" && j.Location.City != f.City {
		return false
	}
	if f.Role != "" && j.Role != f.Role {
		return false
	}
	if f.DateFrom != "" && j.Date < f.DateFrom {
		return false
	}
	if f.DateTo != "" && j.Date > f.DateTo {
		return false
	}
	return true
}

// CompareSchedule orders jobs soonest first: date, start time, then id.
func CompareSchedule(a, b *Job) int {
	return cmp.Or(
		cmp.Compare(a.Date, b.Date),
		cmp.Compare(a.StartTime, b.StartTime),
		cmp.Compare(a.ID, b.ID),
	)
}

// Page is a 1-based page request.
type Page struct {
	Number int
	Size   int
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	MaxPageNumber   = 100000
)

// Normalize clamps the page to sane bounds.
func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Number > MaxPageNumber {
		p.Number = MaxPageNumber
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

func (p Page) Offset() int { return (p.Number - 1) * p.Size }

// TotalPages is the page count for total items of size p.Size.
func (p Page) TotalPages(total int64) int {
	if p.Size <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(p.Size) - 1) / int64(p.Size))
}
