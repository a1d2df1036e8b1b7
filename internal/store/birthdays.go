package store

import "time"

// Birthdays are compared by month and day only. Positions are counted in a
// leap reference year so that Feb 29 has a slot, and wrap modulo its length.
const (
	leapReferenceYear = 2000
	daysInLeapYear    = 366
)

// dayOfLeapYear returns the zero-based position of month/day in the
// reference year.
func dayOfLeapYear(month time.Month, day int) int {
	return time.Date(leapReferenceYear, month, day, 0, 0, 0, 0, time.UTC).YearDay() - 1
}

func monthDay(t time.Time) int {
	return int(t.Month())*100 + t.Day()
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// birthdayWindow returns the month-day values (month*100 + day) of from and
// the following days of the real calendar, wrapping from December into
// January. When a non-leap window steps from Feb 28 to Mar 1, Feb 29 is
// added so leap-day birthdays are not skipped.
func birthdayWindow(from time.Time, days int) []int {
	days = max(0, min(days, daysInLeapYear-1))

	window := make([]int, 0, days+2)
	seen := make(map[int]struct{}, days+2)
	add := func(md int) {
		if _, dup := seen[md]; !dup {
			seen[md] = struct{}{}
			window = append(window, md)
		}
	}

	for i := 0; i <= days; i++ {
		d := from.AddDate(0, 0, i)
		if i > 0 && d.Month() == time.March && d.Day() == 1 && !isLeapYear(d.Year()) {
			add(229)
		}
		add(monthDay(d))
	}

	return window
}

// daysUntilBirthday is the distance, in reference-year days, from from to the
// next occurrence of birthday's month and day.
func daysUntilBirthday(from, birthday time.Time) int {
	start := dayOfLeapYear(from.Month(), from.Day())
	target := dayOfLeapYear(birthday.Month(), birthday.Day())
	return (target - start + daysInLeapYear) % daysInLeapYear
}
