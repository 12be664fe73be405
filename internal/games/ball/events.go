package ball

import "fmt"

// Audio clip ids requested by the simulation.
const (
	ClipPluck     = "pluck"     // enemy bounced off an edge
	ClipExplosion = "explosion" // player hit by an enemy
	ClipCollect   = "collect"   // star collected
)

// EventKind identifies a side-effect request produced by a tick.
type EventKind int

const (
	EventPlayAudio EventKind = iota
	EventSpawn
	EventDespawn
	EventScoreChanged
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPlayAudio:
		return "play_audio"
	case EventSpawn:
		return "spawn"
	case EventDespawn:
		return "despawn"
	case EventScoreChanged:
		return "score_changed"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Event is a fire-and-forget request for the renderer, audio, or the
// observability sink. Only the fields relevant to Kind are set.
type Event struct {
	Kind   EventKind
	Clip   string     // EventPlayAudio
	Entity EntityKind // EventSpawn, EventDespawn
	ID     EntityID   // EventSpawn, EventDespawn
	Score  uint32     // EventScoreChanged
}

func playAudio(clip string) Event {
	return Event{Kind: EventPlayAudio, Clip: clip}
}

func spawned(kind EntityKind, id EntityID) Event {
	return Event{Kind: EventSpawn, Entity: kind, ID: id}
}

func despawned(kind EntityKind, id EntityID) Event {
	return Event{Kind: EventDespawn, Entity: kind, ID: id}
}

func scoreChanged(score uint32) Event {
	return Event{Kind: EventScoreChanged, Score: score}
}
