package dialog

// State is the position of a user in the goal dialogue. It is part of
// the persisted attributes record and survives across sessions.
type State string

const (
	StateNone     State = "NONE"
	StateDistance State = "DISTANCE"
	StateTime     State = "TIME"
	StateGoal     State = "GOAL"
)

// Intent names delivered by the voice platform.
const (
	IntentLaunch    = "LaunchRequest"
	IntentStart     = "StartIntent"
	IntentStartOver = "StartOverIntent"
	IntentDistance  = "DistanceIntent"
	IntentDuration  = "DurationIntent"
	IntentNoAction  = "NoActionIntent"
	IntentYes       = "AMAZON.YesIntent"
	IntentNo        = "AMAZON.NoIntent"
	IntentHelp      = "AMAZON.HelpIntent"
	IntentCancel    = "AMAZON.CancelIntent"
	IntentStop      = "AMAZON.StopIntent"
)

// Slot names of the goal intents.
const (
	SlotDistance = "Distance"
	SlotDuration = "Duration"
)

// Attributes is the per-user persisted record. Distance is in
// kilometers, 0 meaning not set (a stored distance is always
// positive). Duration is the raw PT-duration string, "" meaning not
// set. Invariants: Duration is only present together with Distance;
// StateGoal implies both are present; StateNone implies both are
// absent.
type Attributes struct {
	Distance int    `json:"distance,omitempty"`
	Duration string `json:"duration,omitempty"`
	State    State  `json:"state"`
}

// Clear returns the fresh no-goal record.
func (Attributes) Clear() Attributes {
	return Attributes{State: StateNone}
}

// Intent is one recognized user turn: the platform-classified intent
// name plus its raw slot values.
type Intent struct {
	Name  string
	Slots map[string]string
}

func (in Intent) slot(name string) string {
	return in.Slots[name]
}

// Response is the single outgoing turn of a transition. Ask responses
// keep the session open and carry a reprompt, tell responses close it.
type Response struct {
	Text       string
	Reprompt   string
	EndSession bool
}

func ask(text string) Response {
	return Response{Text: text, Reprompt: text}
}

func tell(text string) Response {
	return Response{Text: text, EndSession: true}
}
