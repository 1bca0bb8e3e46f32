package find

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/quarry/internal/engine/tracking"
)

func testResults() *ResultSet {
	return &ResultSet{ranges: []Range{{From: 0, To: 3}, {From: 8, To: 11}, {From: 11, To: 14}}}
}

func TestResultSetBetween(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		want       []Range
	}{
		{name: "all", start: 0, end: 100, want: []Range{{0, 3}, {8, 11}, {11, 14}}},
		{name: "touching end", start: 3, end: 5, want: []Range{{0, 3}}},
		{name: "gap", start: 4, end: 7, want: nil},
		{name: "shared edge", start: 11, end: 11, want: []Range{{8, 11}, {11, 14}}},
		{name: "before start", start: 0, end: -1, want: nil},
		{name: "past end", start: 15, end: 100, want: nil},
	}
	s := testResults()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, s.Between(tt.start, tt.end)); diff != "" {
				t.Errorf("Between(%d, %d) mismatch (-want +got):\n%s", tt.start, tt.end, diff)
			}
		})
	}
}

func TestResultSetMap(t *testing.T) {
	tests := []struct {
		name string
		step tracking.StepMap
		size int
		want []Range
	}{
		{
			name: "insert before",
			step: tracking.NewStepMap(0, 0, 2),
			size: 16,
			want: []Range{{2, 5}, {10, 13}, {13, 16}},
		},
		{
			name: "insert at edge stays outside",
			step: tracking.NewStepMap(3, 0, 1),
			size: 15,
			want: []Range{{0, 3}, {9, 12}, {12, 15}},
		},
		{
			name: "shrink inside",
			step: tracking.NewStepMap(9, 1, 0),
			size: 13,
			want: []Range{{0, 3}, {8, 10}, {10, 13}},
		},
		{
			name: "delete covering range",
			step: tracking.NewStepMap(7, 5, 0),
			size: 9,
			want: []Range{{0, 3}, {7, 9}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := testResults().Map(tracking.NewMapping(tt.step), tt.size)
			if diff := cmp.Diff(tt.want, got.All()); diff != "" {
				t.Errorf("Map() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResultSetMapEmptyMapping(t *testing.T) {
	s := testResults()
	if got := s.Map(tracking.NewMapping(), 14); got != s {
		t.Error("empty mapping should return the same set")
	}
	if got := s.Map(tracking.NewMapping(tracking.NewStepMap(4, 0, 0)), 14); got != s {
		t.Error("identity mapping should return the same set")
	}
}

func TestRangeString(t *testing.T) {
	r := Range{From: 2, To: 5}
	if r.String() != "[2:5)" || r.Len() != 3 {
		t.Errorf("Range = %s len %d", r, r.Len())
	}
}
