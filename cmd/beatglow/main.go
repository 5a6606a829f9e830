// Command beatglow plays a WAV file and drives a simulated light-panel
// layout from the audio: beats and onsets spawn coloured light sources
// that diffuse across the panels. Panels render as blocks in the
// terminal, or as text lines with -headless.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/lixenwraith/beatglow/audio"
	"github.com/lixenwraith/beatglow/config"
	"github.com/lixenwraith/beatglow/engine"
	"github.com/lixenwraith/beatglow/sink"
)

type app struct {
	cfg    config.Config
	driver *engine.Driver

	features func() audio.Features
	out      sink.Sink

	term      *sink.Terminal // nil when headless
	audioInit bool
	maxFrames int
	done      chan struct{} // closed when the WAV finishes
}

func newApp(configPath, wavPath string, headless bool, maxFrames int) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	pal, err := cfg.BuildPalette()
	if err != nil {
		return nil, err
	}
	lay, err := cfg.BuildLayout()
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(os.Stderr, "beatglow: %d panels, %d palette colours, %dms frames\n",
		len(lay), len(pal), cfg.FrameMs)
	for _, c := range pal {
		fmt.Fprintf(os.Stderr, "  colour #%02x%02x%02x\n", c.R, c.G, c.B)
	}
	for _, p := range lay {
		fmt.Fprintf(os.Stderr, "  panel %d at (%.1f, %.1f)\n", p.ID, p.Centroid.X, p.Centroid.Y)
	}

	a := &app{
		cfg:       cfg,
		driver:    engine.New(lay, pal, engine.Options{Transition: cfg.TransitionTime}),
		maxFrames: maxFrames,
		done:      make(chan struct{}),
	}

	if wavPath != "" {
		if err := a.initAudio(wavPath); err != nil {
			return nil, err
		}
	} else {
		// No input: run on silence so the layout and palette can still
		// be inspected
		analyzer, err := audio.NewAnalyzer(cfg.Audio.SampleRate)
		if err != nil {
			return nil, err
		}
		a.features = analyzer.Features
	}

	if headless {
		a.out = sink.NewWriter(os.Stdout)
	} else {
		term, err := sink.NewTerminal(lay)
		if err != nil {
			a.cleanup()
			return nil, err
		}
		a.term = term
		a.out = term
	}

	return a, nil
}

// initAudio decodes the WAV, starts playback, and routes the played
// samples through the analyzer
func (a *app) initAudio(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("decode %s: %w", path, err)
	}

	analyzer, err := audio.NewAnalyzer(int(format.SampleRate))
	if err != nil {
		f.Close()
		return err
	}
	a.features = analyzer.Features

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("speaker: %w", err)
	}
	a.audioInit = true

	done := a.done
	speaker.Play(beep.Seq(audio.NewTap(streamer, analyzer), beep.Callback(func() {
		close(done)
	})))
	return nil
}

func (a *app) run() error {
	ticker := time.NewTicker(time.Duration(a.cfg.FrameMs) * time.Millisecond)
	defer ticker.Stop()

	frames := 0

	var events chan tcell.Event
	if a.term != nil {
		events = make(chan tcell.Event, 16)
		go func() {
			for {
				ev := a.term.Screen().PollEvent()
				if ev == nil {
					return
				}
				events <- ev
			}
		}()
	}

	for {
		select {
		case ev := <-events:
			if quitEvent(ev) {
				return nil
			}

		case <-a.done:
			return nil

		case <-ticker.C:
			if err := a.out.Push(a.driver.Step(a.features())); err != nil {
				return err
			}
			frames++
			if a.maxFrames > 0 && frames >= a.maxFrames {
				return nil
			}
		}
	}
}

func quitEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	return key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC ||
		(key.Key() == tcell.KeyRune && key.Rune() == 'q')
}

func (a *app) cleanup() {
	if a.audioInit {
		speaker.Close()
	}
	if a.term != nil {
		a.term.Fini()
	}
}

func main() {
	configPath := flag.String("config", "", "path to TOML config file")
	wavPath := flag.String("wav", "", "WAV file to play and analyze")
	headless := flag.Bool("headless", false, "print frames to stdout instead of drawing")
	maxFrames := flag.Int("frames", 0, "stop after this many frames (0 = run until quit)")
	flag.Parse()

	a, err := newApp(*configPath, *wavPath, *headless, *maxFrames)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer a.cleanup()

	if err := a.run(); err != nil {
		a.cleanup()
		fmt.Fprintf(os.Stderr, "Run failed: %v\n", err)
		os.Exit(1)
	}
}
