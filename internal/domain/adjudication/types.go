package adjudication

import "time"

type Action string

const (
	ActionEntry Action = "ENTRY"
	ActionExit  Action = "EXIT"
)

func (a Action) String() string {
	return string(a)
}

func (a Action) IsValid() bool {
	return a == ActionEntry || a == ActionExit
}

// Outcome is the closed taxonomy gate hardware switches on. Adjudication
// never returns an error for an expected business condition; it returns
// one of these.
type Outcome string

const (
	OutcomeCodeUnknown             Outcome = "CODE_UNKNOWN"
	OutcomeStaffNotAssigned        Outcome = "STAFF_NOT_ASSIGNED"
	OutcomePassCancelled           Outcome = "PASS_CANCELLED"
	OutcomePassExpired             Outcome = "PASS_EXPIRED"
	OutcomeTooEarly                Outcome = "TOO_EARLY"
	OutcomePassLapsed              Outcome = "PASS_LAPSED"
	OutcomeReservationNotConfirmed Outcome = "RESERVATION_NOT_CONFIRMED"
	OutcomeBudgetExhausted         Outcome = "BUDGET_EXHAUSTED"
	OutcomeAccessGranted           Outcome = "ACCESS_GRANTED"
	// Bounded retry on a concurrent conflict ran out; the caller should
	// rescan. Distinct from BUDGET_EXHAUSTED on purpose.
	OutcomeTransientConflict Outcome = "TRANSIENT_CONFLICT"
)

func (o Outcome) String() string {
	return string(o)
}

func (o Outcome) Granted() bool {
	return o == OutcomeAccessGranted
}

// Decision is the structured result of one adjudication call.
type Decision struct {
	Outcome             Outcome
	RemainingAdmissions *int
	// Populated for TOO_EARLY so the gate can display when the pass opens.
	ValidFrom *time.Time
}

func Deny(outcome Outcome) Decision {
	return Decision{Outcome: outcome}
}

func DenyTooEarly(validFrom time.Time) Decision {
	vf := validFrom
	return Decision{Outcome: OutcomeTooEarly, ValidFrom: &vf}
}

func Grant(remaining int) Decision {
	r := remaining
	return Decision{Outcome: OutcomeAccessGranted, RemainingAdmissions: &r}
}
