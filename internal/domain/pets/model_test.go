package pets

import (
	"testing"
	"time"
)

func TestPet_Age(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	bd := func(y int, m time.Month, d int) *time.Time {
		t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &t
	}

	cases := []struct {
		name  string
		birth *time.Time
		want  string
	}{
		{"no birthdate", nil, ""},
		{"seven months", bd(2025, 8, 10), "7 months"},
		{"birthday not reached this month", bd(2025, 8, 20), "6 months"},
		{"under two years stays in months", bd(2024, 5, 1), "22 months"},
		{"exactly two years still months", bd(2024, 3, 15), "24 months"},
		{"two years nine months still months", bd(2023, 6, 1), "33 months"},
		{"three years", bd(2023, 3, 1), "3 years"},
		{"birthday later this year", bd(2022, 6, 1), "3 years"},
		{"senior", bd(2014, 1, 1), "12 years"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Pet{BirthDate: tc.birth}
			if got := p.Age(now); got != tc.want {
				t.Fatalf("Age = %q, want %q", got, tc.want)
			}
		})
	}
}
