package packages

import "fmt"

// DraftStatus models the submit lifecycle as an explicit state machine:
// a mutation can only be reached through validating → submitting, driven by
// the submit operation itself. There is no implicit or accidental path in.
type DraftStatus string

const (
	DraftIdle       DraftStatus = "idle"
	DraftValidating DraftStatus = "validating"
	DraftSubmitting DraftStatus = "submitting"
	DraftSaved      DraftStatus = "saved"
	DraftRejected   DraftStatus = "rejected"
)

var draftTransitions = map[DraftStatus][]DraftStatus{
	DraftIdle:       {DraftValidating},
	DraftValidating: {DraftSubmitting, DraftRejected},
	DraftSubmitting: {DraftSaved, DraftRejected},
	DraftSaved:      {DraftIdle},
	DraftRejected:   {DraftValidating, DraftIdle},
}

type Draft struct {
	status DraftStatus
}

func NewDraft() *Draft {
	return &Draft{status: DraftIdle}
}

func (d *Draft) Status() DraftStatus { return d.status }

func (d *Draft) To(next DraftStatus) error {
	for _, allowed := range draftTransitions[d.status] {
		if allowed == next {
			d.status = next
			return nil
		}
	}
	return fmt.Errorf("invalid draft transition %s -> %s", d.status, next)
}
