package engine

// Sound identifies a sound effect requested by the simulation
type Sound uint8

const (
	SoundPos         Sound = iota // enemy beaten in melee
	SoundScreamFight              // melee lost
	SoundKaboom                   // bomb detonation
	SoundScreamBomb               // player caught in own blast
	SoundBonus                    // pickup collected
	SoundCount
)

// assetNames are the file stems looked up under the assets directory
var assetNames = [SoundCount]string{
	SoundPos:         "pos",
	SoundScreamFight: "scream_fight",
	SoundKaboom:      "kaboom",
	SoundScreamBomb:  "scream-bomb",
	SoundBonus:       "bonus",
}

// Asset returns the file stem for the sound
func (s Sound) Asset() string {
	if s < SoundCount {
		return assetNames[s]
	}
	return ""
}

func (s Sound) String() string {
	return s.Asset()
}

// SoundPlayer plays sound effects without blocking the caller
// Implementations must tolerate missing assets silently
type SoundPlayer interface {
	Play(Sound)
}

// NopSound discards every request
type NopSound struct{}

func (NopSound) Play(Sound) {}

// SoundRecorder captures requested sounds in order, used by tests
type SoundRecorder struct {
	Played []Sound
}

func (r *SoundRecorder) Play(s Sound) {
	r.Played = append(r.Played, s)
}

// Count returns how many times s was requested
func (r *SoundRecorder) Count(s Sound) int {
	n := 0
	for _, p := range r.Played {
		if p == s {
			n++
		}
	}
	return n
}
