package loading

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/elseano/loading/pkg/term"
	"github.com/elseano/loading/pkg/util"
)

// Phase is the lifecycle of the render goroutine.
type Phase int32

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseStopped
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseStopped:
		return "stopped"
	}

	return fmt.Sprintf("phase(%d)", int32(p))
}

// DASH prefixes the final text line in plain mode, where there is no
// animation frame to show.
const DASH = "-"

// renderer owns the sink. It is the only writer for the lifetime of a Loading.
type renderer struct {
	state    *sharedState
	frames   FrameSet
	glyphs   Glyphs
	sink     *term.Sink
	interval time.Duration

	phase    int32
	dropped  int64
	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}

	// fault is written before done is closed.
	fault error
}

func newRenderer(state *sharedState, frames FrameSet, glyphs Glyphs, sink *term.Sink, interval time.Duration) *renderer {
	return &renderer{
		state:    state,
		frames:   frames,
		glyphs:   glyphs,
		sink:     sink,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (r *renderer) start() {
	r.setPhase(PhaseRunning)
	go r.run()
}

// signal wakes the loop so it notices termination without waiting for the
// next tick. Callers must terminate the shared state first.
func (r *renderer) signal() {
	r.stopOnce.Do(func() {
		close(r.stop)
	})
}

func (r *renderer) wait() {
	<-r.done
}

func (r *renderer) currentPhase() Phase {
	return Phase(atomic.LoadInt32(&r.phase))
}

func (r *renderer) setPhase(p Phase) {
	atomic.StoreInt32(&r.phase, int32(p))
}

func (r *renderer) droppedFrames() int64 {
	return atomic.LoadInt64(&r.dropped)
}

func (r *renderer) run() {
	defer close(r.done)
	defer func() {
		if rec := recover(); rec != nil {
			r.fault = fmt.Errorf("%w: %v", ErrRendererFault, rec)
			util.Logger.Error().Msgf("Renderer panicked: %v", rec)

			r.restoreCursor()
		}

		r.setPhase(PhaseStopped)
		util.Logger.Debug().Msgf("Renderer stopped, %d frames dropped", r.droppedFrames())
	}()

	util.Logger.Debug().Msgf("Starting renderer, interval %s, animated %v", r.interval, r.sink.Animated())

	r.write(r.sink.HideCursor())

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	snap := r.state.take(r.frames)

	for !snap.terminated {
		r.draw(snap)

		select {
		case <-ticker.C:
		case <-r.stop:
		}

		snap = r.state.take(r.frames)
	}

	r.finish(snap)
}

func (r *renderer) statusLine(s finalStatus) string {
	return r.glyphs.render(s.kind, r.sink.Colors()) + " " + s.message
}

func (r *renderer) textLine(snap snapshot) string {
	if !r.sink.Animated() {
		return DASH + " " + snap.text.String
	}

	return r.frames.At(snap.frameIndex) + " " + snap.text.String
}

func (r *renderer) commitPersisted(b *strings.Builder, snap snapshot) {
	for _, p := range snap.persisted {
		b.WriteString(r.sink.Commit(r.statusLine(p)))
	}
}

func (r *renderer) draw(snap snapshot) {
	var b strings.Builder

	r.commitPersisted(&b, snap)

	switch {
	case snap.status != nil:
		b.WriteString(r.sink.Line(r.statusLine(*snap.status)))
	case snap.text.Valid:
		b.WriteString(r.sink.Line(r.textLine(snap)))
	}

	r.write(b.String())
}

// finish is the last draw. The live line becomes a finished line, or is
// erased when nothing was ever shown on it.
func (r *renderer) finish(snap snapshot) {
	var b strings.Builder

	r.commitPersisted(&b, snap)

	switch {
	case snap.status != nil:
		b.WriteString(r.sink.Commit(r.statusLine(*snap.status)))
	case snap.text.Valid:
		b.WriteString(r.sink.Commit(r.textLine(snap)))
	default:
		b.WriteString(r.sink.ClearLine())
	}

	b.WriteString(r.sink.ShowCursor())

	r.write(b.String())
}

// restoreCursor makes one attempt to show the cursor after a fault. The sink
// may be what panicked, so a second panic is swallowed.
func (r *renderer) restoreCursor() {
	defer func() {
		if rec := recover(); rec != nil {
			util.Logger.Debug().Msgf("Could not restore cursor: %v", rec)
		}
	}()

	r.write(r.sink.ShowCursor())
}

// write drops the frame on error; the next tick draws the full line again.
func (r *renderer) write(data string) {
	if err := r.sink.Write(data); err != nil {
		atomic.AddInt64(&r.dropped, 1)
		util.Logger.Debug().Err(err).Msgf("Dropped frame %s", util.InspectString(data))
	}
}
