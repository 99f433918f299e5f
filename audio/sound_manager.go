package audio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/ctower/engine"
	"github.com/lixenwraith/ctower/logger"
)

const (
	sampleRate              = beep.SampleRate(48000)
	speakerBufferDurationMs = 100
	resampleQuality         = 4
)

var bufferFormat = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// assetExts are tried in order under the assets directory
var assetExts = []string{".mp3", ".wav"}

// SoundManager plays game sound effects through the speaker
// Effects are decoded once from <dir>/<name>.mp3 or .wav and cached; a missing or broken
// file falls back to a synthesized tone. Every call is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	dir         string
	mixer       *beep.Mixer
	cache       map[engine.Sound]*beep.Buffer
	fromFile    map[engine.Sound]bool
	muted       bool
	initialized bool
}

// NewSoundManager creates a sound manager reading assets from dir
func NewSoundManager(dir string) *SoundManager {
	return &SoundManager{
		dir:      dir,
		mixer:    &beep.Mixer{},
		cache:    make(map[engine.Sound]*beep.Buffer),
		fromFile: make(map[engine.Sound]bool),
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*speakerBufferDurationMs))
	if err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything still playing
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker Close; an empty mixer keeps the device quiet
	sm.initialized = false
}

// SetMuted toggles playback without releasing the device
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Muted reports whether playback is suppressed
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play implements engine.SoundPlayer
// It queues the effect on the mixer and returns immediately
func (sm *SoundManager) Play(s engine.Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	buf := sm.bufferLocked(s)
	if buf == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
}

// Preload decodes every effect ahead of the first Play
func (sm *SoundManager) Preload() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	for s := range engine.SoundCount {
		sm.bufferLocked(s)
	}
}

// bufferLocked returns the cached effect, loading it on first use
func (sm *SoundManager) bufferLocked(s engine.Sound) *beep.Buffer {
	if buf, ok := sm.cache[s]; ok {
		return buf
	}

	buf, err := loadAsset(sm.dir, s.Asset())
	if err == nil {
		sm.fromFile[s] = true
	} else {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Log.WithFields(logrus.Fields{
				"sound": s.String(),
				"dir":   sm.dir,
				"error": err,
			}).Debug("Sound asset unusable, synthesizing")
		}
		gen := synthesize(sampleRate, s)
		if gen == nil {
			return nil
		}
		buf = beep.NewBuffer(bufferFormat)
		buf.Append(gen)
	}

	sm.cache[s] = buf
	return buf
}

// loadAsset decodes the first existing <dir>/<name><ext> into a buffer at the speaker rate
func loadAsset(dir, name string) (*beep.Buffer, error) {
	if dir == "" || name == "" {
		return nil, fs.ErrNotExist
	}

	for _, ext := range assetExts {
		path := filepath.Join(dir, name+ext)
		f, err := os.Open(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}

		var (
			streamer beep.StreamSeekCloser
			format   beep.Format
		)
		switch ext {
		case ".mp3":
			streamer, format, err = mp3.Decode(f)
		case ".wav":
			streamer, format, err = wav.Decode(f)
		}
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}

		buf := beep.NewBuffer(bufferFormat)
		buf.Append(beep.Resample(resampleQuality, format.SampleRate, sampleRate, streamer))
		streamer.Close()
		return buf, nil
	}
	return nil, fs.ErrNotExist
}
