package dialog

import (
	"errors"
	"strconv"
	"strings"

	"rungoal/app/util/isodur"
)

// maxDistance is the marathon-distance ceiling in kilometers.
const maxDistance = 43

// Machine computes dialogue transitions. Next is pure: it never
// touches storage and every state/intent combination yields exactly
// one response.
type Machine struct {
	msgs *Catalog
}

func NewMachine(msgs *Catalog) *Machine {
	return &Machine{msgs: msgs}
}

// Next applies one recognized intent to the persisted attributes and
// returns the attributes to persist plus the outgoing response.
func (m *Machine) Next(attrs Attributes, in Intent) (Attributes, Response) {
	switch attrs.State {
	case StateDistance:
		return m.nextDistance(attrs, in)
	case StateTime:
		return m.nextTime(attrs, in)
	case StateGoal:
		return m.nextGoal(attrs, in)
	default:
		return m.nextIdle(attrs, in)
	}
}

// nextIdle handles turns with no goal dialogue in progress.
func (m *Machine) nextIdle(attrs Attributes, in Intent) (Attributes, Response) {
	switch in.Name {
	case IntentLaunch, IntentStart, IntentStartOver:
		return m.startSession(attrs)
	case IntentHelp:
		return attrs, ask(m.msgs.StartHelp)
	case IntentCancel, IntentStop:
		// nothing to cancel, end silently
		return attrs.Clear(), tell("")
	default:
		return attrs, ask(m.msgs.StartHelp)
	}
}

// startSession is the launch branch: resume a pending goal check or
// begin a fresh dialogue at the distance question.
func (m *Machine) startSession(attrs Attributes) (Attributes, Response) {
	if attrs.State == StateGoal {
		return attrs, ask(render(m.msgs.ResumeGoal, map[string]any{
			"distance": attrs.Distance,
			"duration": m.msgs.goalPhrase(attrs.Duration),
		}))
	}

	next := attrs.Clear()
	next.State = StateDistance

	return next, ask(m.msgs.StartLaunch)
}

func (m *Machine) nextDistance(attrs Attributes, in Intent) (Attributes, Response) {
	switch in.Name {
	case IntentDistance:
		return m.applyDistance(attrs, in.slot(SlotDistance))
	case IntentHelp:
		return attrs, ask(m.msgs.HelpDistance)
	case IntentCancel, IntentStop:
		return attrs.Clear(), tell(m.msgs.Stop)
	default:
		return attrs, ask(m.msgs.UnknownDistance)
	}
}

func (m *Machine) applyDistance(attrs Attributes, raw string) (Attributes, Response) {
	distance, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || distance <= 0 {
		return attrs, ask(m.msgs.UnknownDistance)
	}

	if distance > maxDistance {
		return attrs, ask(render(m.msgs.TooBigDistance, map[string]any{
			"distance": distance,
		}))
	}

	attrs.Distance = distance
	attrs.State = StateTime

	return attrs, ask(render(m.msgs.ConfirmDistance, map[string]any{
		"distance": distance,
	}))
}

func (m *Machine) nextTime(attrs Attributes, in Intent) (Attributes, Response) {
	switch in.Name {
	case IntentDuration:
		return m.applyDuration(attrs, in.slot(SlotDuration))
	case IntentHelp:
		return attrs, ask(m.msgs.HelpTime)
	case IntentCancel, IntentStop:
		return attrs.Clear(), tell(m.msgs.Stop)
	default:
		return attrs, ask(m.msgs.UnknownTime)
	}
}

func (m *Machine) applyDuration(attrs Attributes, raw string) (Attributes, Response) {
	d, err := isodur.Parse(raw)
	if errors.Is(err, isodur.ErrTooLong) {
		return attrs, ask(m.msgs.TooLongTime)
	}
	if err != nil {
		return attrs, ask(m.msgs.UnknownTime)
	}

	attrs.Duration = raw
	attrs.State = StateGoal

	// the session closes here but the GOAL state persists, to be
	// picked up by the next launch
	return attrs, tell(render(m.msgs.ConfirmGoal, map[string]any{
		"distance": attrs.Distance,
		"duration": m.msgs.DurationPhrase(d),
	}))
}

func (m *Machine) nextGoal(attrs Attributes, in Intent) (Attributes, Response) {
	switch in.Name {
	case IntentYes:
		return attrs.Clear(), tell(m.msgs.Praise)
	case IntentNo:
		return attrs.Clear(), tell(m.msgs.Comfort)
	case IntentNoAction:
		return attrs, tell(m.msgs.NoAction)
	case IntentCancel, IntentStop:
		return attrs, tell(m.msgs.End)
	default:
		// launch and anything unrecognized re-ask the goal question
		return m.startSession(attrs)
	}
}
