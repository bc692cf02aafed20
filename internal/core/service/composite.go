package service

import (
	"errors"
	"sync"
	"time"

	"github.com/Wyydra/callstate/internal/core/action"
	"github.com/Wyydra/callstate/internal/core/manager"
	"github.com/Wyydra/callstate/internal/core/middleware"
	"github.com/Wyydra/callstate/internal/core/port"
	"github.com/Wyydra/callstate/internal/core/reducer"
	"github.com/Wyydra/callstate/internal/core/state"
	"github.com/Wyydra/callstate/internal/core/store"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	ErrAlreadyLaunched = errors.New("composite already launched")
	ErrClosed          = errors.New("composite closed")
)

// LaunchOptions describe how the host starts the composite.
type LaunchOptions struct {
	SkipSetup               bool
	MicrophoneOn            bool
	CameraPermissionGranted bool
	AudioPermissionGranted  bool
}

// Deps are the adapters a composite drives. Journal and Metrics may be nil.
type Deps struct {
	Calling port.CallingService
	Audio   port.AudioRouter
	Events  port.EventHandler
	Journal port.ActionJournal
	Metrics port.Metrics
}

// Config tunes timing windows.
type Config struct {
	ThrottleWindow      time.Duration
	ParticipantCoalesce time.Duration
}

// Composite owns one call session: store, middleware chain, managers and the
// adapter that feeds calling service events into the store.
type Composite struct {
	store   *store.Store
	handler *middleware.CallingHandler
	adapter *EventAdapter
	exit    *manager.ExitManager
	subs    []*store.Subscription

	mu       sync.Mutex
	launched bool
	closed   bool
	log      zerolog.Logger
}

func NewComposite(cfg Config, deps Deps, opts state.Options) *Composite {
	var hopts []middleware.HandlerOption
	if deps.Metrics != nil {
		hopts = append(hopts, middleware.WithMetrics(deps.Metrics))
	}
	handler := middleware.NewCallingHandler(deps.Calling, deps.Audio, hopts...)

	mws := []middleware.Middleware{middleware.Logging()}
	if deps.Metrics != nil {
		mws = append(mws, middleware.Metrics(deps.Metrics))
	}
	if deps.Journal != nil {
		mws = append(mws, middleware.Journal(deps.Journal, time.Now))
	}
	mws = append(mws,
		middleware.Throttle(middleware.NewThrottler(cfg.ThrottleWindow, middleware.DefaultKey), deps.Metrics),
		middleware.Calling(handler),
	)

	st := store.New(state.New(opts), reducer.Default(), mws...)

	c := &Composite{
		store:   st,
		handler: handler,
		adapter: NewEventAdapter(deps.Calling.Events(), st.Dispatch, cfg.ParticipantCoalesce),
		exit:    manager.NewExitManager(deps.Events),
		log:     log.With().Str("component", "composite").Logger(),
	}
	c.subs = manager.Attach(st,
		manager.NewCallStateManager(deps.Events),
		manager.NewErrorManager(deps.Events),
		manager.NewRemoteParticipantsManager(deps.Events),
		c.exit,
	)
	return c
}

// Launch starts forwarding calling events and opens either the setup screen or,
// with SkipSetup, the call itself.
func (c *Composite) Launch(opts LaunchOptions) error {
	c.mu.Lock()
	switch {
	case c.closed:
		c.mu.Unlock()
		return ErrClosed
	case c.launched:
		c.mu.Unlock()
		return ErrAlreadyLaunched
	}
	c.launched = true
	c.mu.Unlock()

	go c.adapter.Run()

	c.log.Info().Bool("skip_setup", opts.SkipSetup).Msg("Launching composite")

	if opts.AudioPermissionGranted {
		c.store.Dispatch(action.AudioPermissionGranted{})
	}
	if opts.CameraPermissionGranted {
		c.store.Dispatch(action.CameraPermissionGranted{})
	}
	if opts.MicrophoneOn {
		c.store.Dispatch(action.MicrophonePreviewOn{})
	}

	// With SkipSetup the setup side effect starts the call once setup succeeds.
	if opts.SkipSetup {
		c.store.Dispatch(action.SkipSetupRequested{})
	}
	c.store.Dispatch(action.SetupCall{})
	return nil
}

// Join leaves the setup screen and starts the call.
func (c *Composite) Join() {
	c.store.Dispatch(action.CallStartRequested{})
	c.store.Dispatch(action.CallingViewLaunched{})
}

func (c *Composite) Dispatch(a action.Action) {
	c.store.Dispatch(a)
}

func (c *Composite) State() state.AppState {
	return c.store.State()
}

// Subscribe forwards every published state to fn until the subscription is cancelled.
func (c *Composite) Subscribe(fn func(state.AppState)) *store.Subscription {
	return c.store.Subscribe(fn)
}

// Exited reports whether the host has been told the composite exited.
func (c *Composite) Exited() bool {
	return c.exit.Exited()
}

// Wait blocks until in-flight side effects have finished.
func (c *Composite) Wait() {
	c.handler.Wait()
}

// Close stops event forwarding, cancels side effects and ends every subscription.
func (c *Composite) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	launched := c.launched
	c.mu.Unlock()

	if launched {
		c.adapter.Stop()
	}
	c.handler.Close()
	for _, sub := range c.subs {
		sub.Cancel()
	}
	c.store.Close()
	c.log.Info().Msg("Composite closed")
}
