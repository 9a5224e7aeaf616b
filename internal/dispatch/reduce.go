package dispatch

import (
	"ambulance-dispatch-service/internal/domain"
	"ambulance-dispatch-service/internal/ports"
	"ambulance-dispatch-service/internal/services"
	"fmt"
	"time"
)

// Registration defaults for fields the caller leaves empty.
const (
	DefaultCallerName   = "Anonymous Caller"
	DefaultCallerNumber = "+91 9XXXXXXXXX"
	DefaultDescription  = "Emergency reported via 108"
	DefaultSeverity     = domain.SeverityHigh

	MinPatients = 1
	MaxPatients = 10
)

// Env carries the reducer's inputs from outside the state.
type Env struct {
	Now      func() time.Time
	Rand     services.RandomSource
	IDPrefix string
}

func (e Env) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// Reduce applies ev to s and returns the next snapshot.
//
// On rejection the returned state is s itself and the error wraps
// ErrRejected. s is never modified.
func Reduce(s State, ev Event, env Env) (State, Outcome, error) {
	var (
		next State
		out  Outcome
		err  error
	)

	switch e := ev.(type) {
	case RegisterCall:
		next, out, err = registerCall(s, e, env)
	case Dispatch:
		next, out, err = dispatchCall(s, e)
	case ConfirmHospital:
		next, out, err = confirmHospital(s, e)
	case CompleteCall:
		next, out, err = completeCall(s, e)
	case Tick:
		next, out, err = tick(s, env)
	default:
		return s, Outcome{}, fmt.Errorf("reduce: unknown event %T", ev)
	}

	if err != nil {
		return s, Outcome{}, err
	}
	if !out.Changed {
		return s, out, nil
	}
	next.Version = s.Version + 1
	return next, out, nil
}

func registerCall(s State, e RegisterCall, env Env) (State, Outcome, error) {
	d := e.Details
	if !d.Location.Resolved() {
		return s, Outcome{}, ErrLocationUnresolved
	}

	severity := d.Severity
	if severity == "" {
		severity = DefaultSeverity
	}
	if !severity.Valid() {
		return s, Outcome{}, fmt.Errorf("%w: %q", ErrInvalidSeverity, severity)
	}

	patients := min(max(d.PatientCount, MinPatients), MaxPatients)

	call := domain.EmergencyCall{
		ID:           fmt.Sprintf("%s-%04d", env.IDPrefix, len(s.Calls)+1),
		CallerName:   orDefault(d.CallerName, DefaultCallerName),
		CallerNumber: orDefault(d.CallerNumber, DefaultCallerNumber),
		Location:     d.Location,
		Address:      orDefault(d.Address, d.Location.String()),
		Timestamp:    env.now(),
		Severity:     severity,
		Description:  orDefault(d.Description, DefaultDescription),
		PatientCount: patients,
		Status:       domain.CallPending,
	}

	next := s.Clone()
	next.Calls = append([]domain.EmergencyCall{call}, next.Calls...)

	return next, Outcome{
		Changed: true,
		CallID:  call.ID,
		Transitions: []Transition{{
			Type:   ports.EventCallRegistered,
			CallID: call.ID,
			To:     domain.CallPending,
		}},
	}, nil
}

func dispatchCall(s State, e Dispatch) (State, Outcome, error) {
	ci := s.callIndex(e.CallID)
	if ci < 0 {
		return s, Outcome{}, ErrCallNotFound
	}
	if s.Calls[ci].Status != domain.CallPending {
		return s, Outcome{}, fmt.Errorf("%w: dispatch from %s", ErrInvalidTransition, s.Calls[ci].Status)
	}
	ai := s.ambulanceIndex(e.AmbulanceID)
	if ai < 0 {
		return s, Outcome{}, ErrAmbulanceNotFound
	}
	if s.Ambulances[ai].Status != domain.AmbulanceAvailable {
		return s, Outcome{}, fmt.Errorf("%w: %s is %s", ErrAmbulanceUnavailable, e.AmbulanceID, s.Ambulances[ai].Status)
	}

	next := s.Clone()
	call := &next.Calls[ci]
	amb := &next.Ambulances[ai]

	call.Status = domain.CallDispatched
	call.AssignedAmbulance = amb.ID
	amb.Status = domain.AmbulanceDispatched
	amb.CurrentCallID = call.ID

	next.Routes[domain.RouteKey(amb.ID, domain.LegScene)] = services.ExplainRoute(services.LegRequest{
		Leg:          domain.LegScene,
		From:         amb.Location,
		To:           call.Location,
		PatientCount: call.PatientCount,
		Severity:     call.Severity,
	}, next.Zones)
	next.Steps[amb.ID] = domain.AmbulanceDispatched

	return next, Outcome{
		Changed: true,
		CallID:  call.ID,
		Transitions: []Transition{{
			Type:        ports.EventCallDispatched,
			CallID:      call.ID,
			AmbulanceID: amb.ID,
			From:        domain.CallPending,
			To:          domain.CallDispatched,
		}},
	}, nil
}

func confirmHospital(s State, e ConfirmHospital) (State, Outcome, error) {
	ci := s.callIndex(e.CallID)
	if ci < 0 {
		return s, Outcome{}, ErrCallNotFound
	}
	if s.Calls[ci].Status != domain.CallAtScene {
		return s, Outcome{}, fmt.Errorf("%w: confirm hospital from %s", ErrInvalidTransition, s.Calls[ci].Status)
	}
	hi := s.hospitalIndex(e.HospitalID)
	if hi < 0 {
		return s, Outcome{}, ErrHospitalNotFound
	}
	beds, _ := s.LiveBeds(e.HospitalID)
	if beds.Beds <= 0 {
		return s, Outcome{}, ErrNoBeds
	}
	ai := s.ambulanceForCall(e.CallID)
	if ai < 0 {
		return s, Outcome{}, ErrAmbulanceNotFound
	}

	next := s.Clone()
	call := &next.Calls[ci]
	amb := &next.Ambulances[ai]
	hospital := next.Hospitals[hi]

	dest := hospital.Location
	call.Status = domain.CallToHospital
	call.AssignedHospital = hospital.Name
	call.AssignedHospitalID = hospital.ID
	call.HospitalLocation = &dest
	amb.Status = domain.AmbulanceToHospital
	next.Beds[hospital.ID] = beds.Admit()

	next.Routes[domain.RouteKey(amb.ID, domain.LegHospital)] = services.ExplainRoute(services.LegRequest{
		Leg:          domain.LegHospital,
		From:         amb.Location,
		To:           dest,
		HospitalName: hospital.Name,
		PatientCount: call.PatientCount,
		Severity:     call.Severity,
	}, next.Zones)
	next.Steps[amb.ID] = domain.AmbulanceToHospital

	return next, Outcome{
		Changed: true,
		CallID:  call.ID,
		Transitions: []Transition{{
			Type:        ports.EventCallToHospital,
			CallID:      call.ID,
			AmbulanceID: amb.ID,
			HospitalID:  hospital.ID,
			From:        domain.CallAtScene,
			To:          domain.CallToHospital,
		}},
	}, nil
}

func completeCall(s State, e CompleteCall) (State, Outcome, error) {
	ci := s.callIndex(e.CallID)
	if ci < 0 {
		return s, Outcome{}, ErrCallNotFound
	}
	if s.Calls[ci].Status != domain.CallToHospital {
		return s, Outcome{}, fmt.Errorf("%w: complete from %s", ErrInvalidTransition, s.Calls[ci].Status)
	}

	next := s.Clone()
	call := &next.Calls[ci]
	call.Status = domain.CallCompleted

	ambID := call.AssignedAmbulance
	if ai := next.ambulanceForCall(call.ID); ai >= 0 {
		amb := &next.Ambulances[ai]
		ambID = amb.ID
		amb.Status = domain.AmbulanceAvailable
		amb.CurrentCallID = ""
		amb.RouteHistory = nil
	}
	if ambID != "" {
		delete(next.Routes, domain.RouteKey(ambID, domain.LegScene))
		delete(next.Routes, domain.RouteKey(ambID, domain.LegHospital))
		delete(next.Steps, ambID)
	}

	return next, Outcome{
		Changed: true,
		CallID:  call.ID,
		Transitions: []Transition{{
			Type:        ports.EventCallCompleted,
			CallID:      call.ID,
			AmbulanceID: ambID,
			HospitalID:  call.AssignedHospitalID,
			From:        domain.CallToHospital,
			To:          domain.CallCompleted,
		}},
	}, nil
}

// tick moves every unit that is heading somewhere by one step.
func tick(s State, env Env) (State, Outcome, error) {
	moving := false
	for _, a := range s.Ambulances {
		if a.Status.Moving() {
			moving = true
			break
		}
	}
	if !moving {
		return s, Outcome{}, nil
	}
	if env.Rand == nil {
		return s, Outcome{}, fmt.Errorf("tick: no random source")
	}

	next := s.Clone()
	var out Outcome

	for ai := range next.Ambulances {
		amb := &next.Ambulances[ai]
		if !amb.Status.Moving() {
			continue
		}
		ci := next.callIndex(amb.CurrentCallID)
		if ci < 0 {
			continue
		}
		call := &next.Calls[ci]

		target := call.Location
		if amb.Status == domain.AmbulanceToHospital {
			if call.HospitalLocation == nil {
				continue
			}
			target = *call.HospitalLocation
		}

		step := services.StepToward(amb.Location, target, next.Zones, env.Rand)
		if step.Arrived {
			if amb.Status == domain.AmbulanceToHospital {
				continue
			}
			from := call.Status
			amb.Location = step.Position
			amb.AppendHistory(step.Position)
			amb.Status = domain.AmbulanceAtScene
			call.Status = domain.CallAtScene
			next.Steps[amb.ID] = domain.AmbulanceAtScene
			out.Changed = true
			out.Transitions = append(out.Transitions, Transition{
				Type:        ports.EventCallAtScene,
				CallID:      call.ID,
				AmbulanceID: amb.ID,
				From:        from,
				To:          domain.CallAtScene,
			})
			continue
		}

		amb.Location = step.Position
		amb.AppendHistory(step.Position)
		out.Changed = true

		if amb.Status == domain.AmbulanceDispatched {
			amb.Status = domain.AmbulanceEnRoute
			next.Steps[amb.ID] = domain.AmbulanceEnRoute
			if call.Status == domain.CallDispatched {
				call.Status = domain.CallEnRoute
				out.Transitions = append(out.Transitions, Transition{
					Type:        ports.EventCallEnRoute,
					CallID:      call.ID,
					AmbulanceID: amb.ID,
					From:        domain.CallDispatched,
					To:          domain.CallEnRoute,
				})
			}
		}
	}

	if !out.Changed {
		return s, Outcome{}, nil
	}
	return next, out, nil
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
