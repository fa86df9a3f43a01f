package generator

import (
	"github.com/modu-ai/routegen/pkg/models"
)

// Outcome is the result of one planned entry.
type Outcome struct {
	Name   string        `json:"name"`
	Path   string        `json:"path"`
	Status models.Status `json:"status"`
	Reason string        `json:"reason,omitempty"`
}

// Report lists one outcome per planned entry, in plan order.
type Report struct {
	Outcomes []Outcome `json:"outcomes"`
	Created  int       `json:"created"`
	Skipped  int       `json:"skipped"`
	Failed   int       `json:"failed"`
}

// Failures returns the failed outcomes.
func (r *Report) Failures() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Status == models.StatusFailed {
			out = append(out, o)
		}
	}
	return out
}

// OK reports whether no entry failed.
func (r *Report) OK() bool {
	return r.Failed == 0
}

func (r *Report) tally() {
	r.Created, r.Skipped, r.Failed = 0, 0, 0
	for _, o := range r.Outcomes {
		switch o.Status {
		case models.StatusCreated:
			r.Created++
		case models.StatusSkipped:
			r.Skipped++
		case models.StatusFailed:
			r.Failed++
		}
	}
}
