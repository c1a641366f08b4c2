package engine

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func TestResolveActive_IntervalContainment(t *testing.T) {
	diwali := Campaign{
		ID:        "diwali-2024",
		Status:    StatusActive,
		StartDate: day("2024-10-15"),
		EndDate:   day("2024-11-05"),
	}
	table := []Campaign{diwali}

	tests := []struct {
		name   string
		now    time.Time
		wantID string
	}{
		{"inside window", day("2024-10-20"), "diwali-2024"},
		{"day after end", day("2024-11-06"), ""},
		{"day before start", day("2024-10-14"), ""},
		{"start boundary inclusive", day("2024-10-15"), "diwali-2024"},
		{"end boundary inclusive", day("2024-11-05"), "diwali-2024"},
		{"time of day dropped on end boundary", time.Date(2024, 11, 5, 23, 59, 59, 0, time.UTC), "diwali-2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveActive(table, tt.now)
			if tt.wantID == "" {
				if got != nil {
					t.Fatalf("expected no campaign, got %s", got.ID)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected campaign %s, got nil", tt.wantID)
			}
			if got.ID != tt.wantID {
				t.Errorf("expected campaign %s, got %s", tt.wantID, got.ID)
			}
		})
	}
}

func TestResolveActive_SkipsInactive(t *testing.T) {
	table := []Campaign{
		{ID: "killed", Status: StatusInactive, StartDate: day("2024-10-01"), EndDate: day("2024-10-31")},
		{ID: "live", Status: StatusActive, StartDate: day("2024-10-01"), EndDate: day("2024-10-31")},
	}
	got := ResolveActive(table, day("2024-10-10"))
	if got == nil || got.ID != "live" {
		t.Fatalf("expected live, got %v", got)
	}
}

// Overlapping windows resolve to the first campaign in declaration
// order, even when a later one fits the date "better".
func TestResolveActive_DeclarationOrderTieBreak(t *testing.T) {
	table := []Campaign{
		{ID: "first", Status: StatusActive, StartDate: day("2024-01-01"), EndDate: day("2024-12-31")},
		{ID: "second", Status: StatusActive, StartDate: day("2024-10-14"), EndDate: day("2024-10-16")},
	}
	for i := 0; i < 5; i++ {
		got := ResolveActive(table, day("2024-10-15"))
		if got == nil || got.ID != "first" {
			t.Fatalf("expected first, got %v", got)
		}
	}
}

func TestResolveActive_EmptyTable(t *testing.T) {
	if got := ResolveActive(nil, day("2024-10-15")); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestResolveByCollectionID(t *testing.T) {
	table := []Campaign{
		{ID: "past", Status: StatusInactive, CollectionID: "rakhi-collection-2024", StartDate: day("2024-08-10"), EndDate: day("2024-08-20")},
		{ID: "future", Status: StatusActive, CollectionID: "eid-collection-2025", StartDate: day("2025-03-20"), EndDate: day("2025-03-31")},
	}

	// deep links reach inactive and out-of-window campaigns
	if got := ResolveByCollectionID(table, "rakhi-collection-2024"); got == nil || got.ID != "past" {
		t.Fatalf("expected past, got %v", got)
	}
	if got := ResolveByCollectionID(table, "eid-collection-2025"); got == nil || got.ID != "future" {
		t.Fatalf("expected future, got %v", got)
	}
	if got := ResolveByCollectionID(table, "nope"); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func BenchmarkResolveActive(b *testing.B) {
	table := make([]Campaign, 0, 50)
	for i := 0; i < 50; i++ {
		table = append(table, Campaign{
			ID:        "c",
			Status:    StatusActive,
			StartDate: day("2020-01-01"),
			EndDate:   day("2020-01-02"),
		})
	}
	now := day("2024-10-15")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ResolveActive(table, now)
	}
}
