package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"i", "time", "ao5"}
	rows := [][]string{
		{"0", "12.00", "-"},
		{"10", "9.87", "10.50"},
	}
	rightAlign := map[int]bool{0: true, 1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != " i  time   ao5" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != " 0 12.00     -" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "10  9.87 10.50" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}
