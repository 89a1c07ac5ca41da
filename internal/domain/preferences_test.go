package domain

import "testing"

func TestParseBudgetTier(t *testing.T) {
	cases := []struct {
		in   string
		want BudgetTier
	}{
		{"low", BudgetLow},
		{"  HIGH ", BudgetHigh},
		{"medium", BudgetMedium},
		{"", BudgetMedium},
		{"platinum", BudgetMedium},
	}
	for _, c := range cases {
		if got := ParseBudgetTier(c.in); got != c.want {
			t.Fatalf("ParseBudgetTier(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseTransportMode(t *testing.T) {
	cases := []struct {
		in   string
		want TransportMode
	}{
		{"train", TransportTrain},
		{"FLIGHT", TransportFlight},
		{"mixed", TransportMixed},
		{"bus", TransportBus},
		{"", TransportCar},
		{"teleport", TransportCar},
	}
	for _, c := range cases {
		if got := ParseTransportMode(c.in); got != c.want {
			t.Fatalf("ParseTransportMode(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseSeason(t *testing.T) {
	if got := ParseSeason("Winter"); got != SeasonWinter {
		t.Fatalf("ParseSeason(Winter) = %q", got)
	}
	if got := ParseSeason("spring"); got != "" {
		t.Fatalf("unknown season should be empty, got %q", got)
	}
}

func TestClampTravelDays(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{0, DefaultMaxTravelDays},
		{-5, 1},
		{1, 1},
		{7, 7},
		{60, 60},
		{200, 60},
	}
	for _, c := range cases {
		if got := ClampTravelDays(c.in); got != c.want {
			t.Fatalf("ClampTravelDays(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}
