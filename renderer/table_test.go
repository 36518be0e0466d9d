package renderer

import "testing"

func TestTableRow(t *testing.T) {
	testCases := []struct {
		name  string
		table *Table
		cells []string
		want  string
	}{
		{
			name:  "Default Widths",
			table: NewTable(2),
			cells: []string{"a", "b"},
			want:  "| a          | b          |",
		},
		{
			name:  "Set Widths",
			table: NewTable(3).SetWidths(4, 2),
			cells: []string{"ab", "cd", "ef"},
			want:  "| ab   | cd | ef         |",
		},
		{
			name:  "Overflowing Cell Stretches",
			table: NewTable(1).SetWidths(4),
			cells: []string{"overflowing"},
			want:  "| overflowing |",
		},
		{
			name:  "Colored Cell Stretches",
			table: NewTable(1).SetWidths(4),
			cells: []string{"\033[92m1.00\033[0m"},
			want:  "| \033[92m1.00\033[0m |",
		},
		{
			name:  "Empty Cells",
			table: NewTable(2).SetWidths(5, 3),
			cells: []string{"", ""},
			want:  "|       |     |",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.table.Row(tc.cells...); got != tc.want {
				t.Errorf("incorrect row. Got: %q, want: %q", got, tc.want)
			}
		})
	}
}

func TestTableRule(t *testing.T) {
	testCases := []struct {
		name  string
		table *Table
		want  string
	}{
		{
			name:  "Default Widths",
			table: NewTable(2),
			want:  "|------------|------------|",
		},
		{
			name:  "Set Widths",
			table: NewTable(3).SetWidths(4, 2),
			want:  "|------|----|------------|",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.table.Rule(); got != tc.want {
				t.Errorf("incorrect rule. Got: %q, want: %q", got, tc.want)
			}
		})
	}
}
