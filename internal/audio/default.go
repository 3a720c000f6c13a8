package audio

import (
	"os"
	"path"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
)

// Player decodes and plays a session's backing track. A player that never
// loaded a track plays nothing; the session itself is unaffected.
type Player interface {
	Load(file string) error
	Play()
	Close()
}

type DefaultPlayer struct {
	// Delay is the lead-in before playback starts.
	Delay time.Duration

	streamer beep.StreamSeekCloser
	format   beep.Format
}

func (p *DefaultPlayer) Load(file string) error {
	f, err := os.Open(file)
	if nil != err {
		return err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch path.Ext(file) {
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	default:
		streamer, format, err = mp3.Decode(f)
	}
	if nil != err {
		f.Close()
		return err
	}

	p.streamer = streamer
	p.format = format
	return speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/60))
}

// Play starts playback after the lead-in. Fire and forget: the simulation
// never resynchronizes against the track.
func (p *DefaultPlayer) Play() {
	if nil == p.streamer {
		return
	}
	go func() {
		time.Sleep(p.Delay)
		speaker.Play(p.streamer)
	}()
}

func (p *DefaultPlayer) Close() {
	if nil != p.streamer {
		p.streamer.Close()
	}
}
