package sessions

import "testing"

func TestHistory(t *testing.T) {
	var history History
	if history.Len() != 0 {
		t.Fatal()
	}
	history.Append(Record{Expression: "1 + 1", Result: 2})
	history.Append(Record{Expression: "1 / 4", Result: 0.25})
	history.Append(Record{Expression: "2 ** 64", Result: 18446744073709551616})

	var lines []string
	for i, record := range history.Records() {
		if i != len(lines)+1 {
			t.Fatalf("got %d", i)
		}
		lines = append(lines, record.String())
	}
	expected := []string{
		"1 + 1 = 2",
		"1 / 4 = 0.25",
		"2 ** 64 = 18446744073709551616",
	}
	for i, line := range lines {
		if line != expected[i] {
			t.Fatalf("got %q", line)
		}
	}

	for i := range history.Records() {
		if i > 1 {
			t.Fatal("should stop")
		}
		break
	}
}
