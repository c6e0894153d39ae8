package core

// EventKind identifies what a game asks the platform to do.
type EventKind int

const (
	// EventPlayMorse asks the platform to sound Text as Morse tones.
	EventPlayMorse EventKind = iota
	// EventRound reports a judged round (target vs. entered code).
	EventRound
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPlayMorse:
		return "PlayMorse"
	case EventRound:
		return "Round"
	default:
		return "Unknown"
	}
}

// Event is a side effect emitted by a game during a tick.
// Games stay free of audio and storage dependencies; the platform
// consumes events after each Step.
type Event struct {
	Kind EventKind

	// Text is the message to sound (EventPlayMorse).
	Text string

	// Round fields (EventRound).
	Target  string
	Entered string
	Hit     bool
}

// PlayMorse builds an EventPlayMorse event.
func PlayMorse(text string) Event {
	return Event{Kind: EventPlayMorse, Text: text}
}

// Round builds an EventRound event.
func Round(target, entered string, hit bool) Event {
	return Event{Kind: EventRound, Target: target, Entered: entered, Hit: hit}
}
