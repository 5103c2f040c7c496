package sessions

import (
	"iter"

	"github.com/reusee/taicalc/taicalc"
)

type Record struct {
	Expression string
	Result     float64
}

func (r Record) String() string {
	return r.Expression + " = " + taicalc.FormatResult(r.Result)
}

// History is append-only and lives as long as the session.
type History struct {
	records []Record
}

func (h *History) Append(record Record) {
	h.records = append(h.records, record)
}

func (h *History) Len() int {
	return len(h.records)
}

// Records yields entries numbered from 1.
func (h *History) Records() iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		for i, record := range h.records {
			if !yield(i+1, record) {
				return
			}
		}
	}
}
