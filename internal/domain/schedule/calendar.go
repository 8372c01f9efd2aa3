package schedule

import "time"

const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04"
)

// CalendarDate é um dia de calendário sem componente de hora.
// Usado como chave de partição dos slots.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

func ParseDate(s string) (CalendarDate, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return CalendarDate{}, err
	}
	return DateOf(t), nil
}

func DateOf(t time.Time) CalendarDate {
	return CalendarDate{
		Year:  t.Year(),
		Month: t.Month(),
		Day:   t.Day(),
	}
}

func Today(loc *time.Location) CalendarDate {
	return DateOf(time.Now().In(loc))
}

func (d CalendarDate) String() string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).
		Format(DateFormat)
}

func (d CalendarDate) Before(other CalendarDate) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d CalendarDate) AddDays(n int) CalendarDate {
	return DateOf(
		time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).
			AddDate(0, 0, n),
	)
}

func (d CalendarDate) IsZero() bool {
	return d == CalendarDate{}
}
