package cmd

import (
	"context"
	"os"
	"sync"

	"github.com/thecodeteam/goodbye"

	"github.com/elseano/loading/pkg/loading"
	"github.com/elseano/loading/pkg/util"
)

var (
	activeMu sync.Mutex
	active   *loading.Loading
)

func init() {
	goodbye.Register(func(ctx context.Context, sig os.Signal) {
		interrupt(sig)
	})
}

func track(l *loading.Loading) {
	activeMu.Lock()
	defer activeMu.Unlock()

	active = l
}

func untrack(l *loading.Loading) {
	activeMu.Lock()
	defer activeMu.Unlock()

	if active == l {
		active = nil
	}
}

// interrupt finishes the live line so the terminal is left on a clean line
// with the cursor visible.
func interrupt(sig os.Signal) {
	activeMu.Lock()
	l := active
	active = nil
	activeMu.Unlock()

	if l == nil {
		return
	}

	util.Logger.Debug().Msgf("Ending loading on %v", sig)

	l.Fail("Interrupted")
	l.End()
}
