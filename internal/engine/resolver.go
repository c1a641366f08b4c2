package engine

import "time"

// DayOf drops the time-of-day component: all interval comparisons in
// the resolver happen at day granularity, in UTC.
func DayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ResolveActive returns the campaign whose date window contains now, or
// nil when none qualifies. A campaign is a candidate iff its status is
// active and start <= day(now) <= end, inclusive on both ends.
//
// Tie-break: when several candidates overlap, the FIRST one in table
// declaration order wins. This is a linear first-match scan, not a
// ranking by recency or specificity; whoever seeds the table controls
// the outcome of overlaps. Do not "improve" this into a best-fit rule.
func ResolveActive(campaigns []Campaign, now time.Time) *Campaign {
	today := DayOf(now)
	for i := range campaigns {
		c := &campaigns[i]
		if c.Status != StatusActive {
			continue
		}
		if today.Before(c.StartDate) || today.After(c.EndDate) {
			continue
		}
		return c
	}
	return nil
}

// ResolveByCollectionID finds a campaign by its collection id, ignoring
// status and date window entirely: deep links must reach inactive,
// future, and past campaigns for preview and historical pages.
func ResolveByCollectionID(campaigns []Campaign, collectionID string) *Campaign {
	for i := range campaigns {
		if campaigns[i].CollectionID == collectionID {
			return &campaigns[i]
		}
	}
	return nil
}
