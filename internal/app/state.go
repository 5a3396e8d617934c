package app

import (
	"context"
	"slices"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/muurk/witui/internal/logging"
	"github.com/muurk/witui/internal/network"
	"github.com/muurk/witui/internal/selection"
)

// Source yields raw SSID:SIGNAL:SECURITY:RATE:BARS scan lines.
type Source interface {
	ListAccessPoints(ctx context.Context) ([]string, error)
}

// ActiveSource is optionally implemented by a Source that can report which
// network is currently associated, as SSID:ACTIVE lines.
type ActiveSource interface {
	ActiveNetworks(ctx context.Context) ([]string, error)
}

// Option configures a State.
type Option func(*State)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(s *State) {
		s.logger = logger
	}
}

// WithMinRefreshInterval rejects refreshes that arrive less than d after the
// previous one with ErrRefreshThrottled. Zero disables throttling.
func WithMinRefreshInterval(d time.Duration) Option {
	return func(s *State) {
		if d <= 0 {
			s.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		s.limiter = rate.NewLimiter(rate.Every(d), 1)
	}
}

// State is the application state driven by the event loop.
type State struct {
	running   bool
	networks  []network.AccessPoint
	selection *selection.Controller

	source  Source
	logger  *zap.Logger
	limiter *rate.Limiter

	refreshing  bool
	lastErr     error
	lastRefresh time.Time
}

// New creates the application state with an empty inventory.
func New(source Source, opts ...Option) *State {
	s := &State{
		running:   true,
		networks:  []network.AccessPoint{},
		selection: selection.New(),
		source:    source,
		logger:    zap.NewNop(),
		limiter:   rate.NewLimiter(rate.Inf, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Running reports whether the event loop should keep going.
func (s *State) Running() bool { return s.running }

// Quit stops the event loop.
func (s *State) Quit() { s.running = false }

// Networks returns a copy of the ordered inventory.
func (s *State) Networks() []network.AccessPoint {
	return slices.Clone(s.networks)
}

// Len returns the number of networks in the inventory.
func (s *State) Len() int { return len(s.networks) }

// Selected returns the selected index, or (selection.None, false) when the
// inventory is empty.
func (s *State) Selected() (int, bool) { return s.selection.Selected() }

// SelectedNetwork returns the highlighted access point, if any.
func (s *State) SelectedNetwork() (network.AccessPoint, bool) {
	i, ok := s.selection.Selected()
	if !ok {
		return network.AccessPoint{}, false
	}
	return s.networks[i], true
}

// Offset returns the index of the first visible row.
func (s *State) Offset() int { return s.selection.Offset() }

// VisibleRows returns the viewport height from the last OnFrame call.
func (s *State) VisibleRows() int { return s.selection.VisibleRows() }

// Window returns the half-open range of inventory rows the renderer should draw.
func (s *State) Window() (start, end int) { return s.selection.Window() }

// Refreshing reports whether a refresh started by BeginRefresh has not finished.
func (s *State) Refreshing() bool { return s.refreshing }

// LastError returns the error of the most recent refresh, or nil.
func (s *State) LastError() error { return s.lastErr }

// LastRefresh returns when the inventory was last replaced.
func (s *State) LastRefresh() time.Time { return s.lastRefresh }

// OnFrame must be called before each render with the number of rows the
// viewport can show.
func (s *State) OnFrame(visibleRows int) {
	s.selection.Resize(visibleRows)
}

// HandleKey applies one key. Unrecognized keys are ignored.
// Only KeyRefresh can return an error, see Refresh.
func (s *State) HandleKey(ctx context.Context, k Key) error {
	switch k {
	case KeyQuit:
		s.Quit()
	case KeyRefresh:
		return s.Refresh(ctx)
	case KeyUp:
		s.selection.MoveUp()
	case KeyDown:
		s.selection.MoveDown()
	case KeyTop:
		s.selection.Top()
	case KeyBottom:
		s.selection.Bottom()
	case KeyPageUp:
		s.selection.PageUp()
	case KeyPageDown:
		s.selection.PageDown()
	}
	return nil
}

// Refresh rescans synchronously and replaces the inventory. On a Source
// failure the inventory is left untouched and a *SourceError is returned.
func (s *State) Refresh(ctx context.Context) error {
	if err := s.BeginRefresh(); err != nil {
		return err
	}
	networks, err := s.Collect(ctx)
	return s.FinishRefresh(networks, err)
}

// BeginRefresh marks a refresh as started. It fails with ErrRefreshInFlight
// if one is already running and ErrRefreshThrottled if it comes too soon.
func (s *State) BeginRefresh() error {
	if s.refreshing {
		return ErrRefreshInFlight
	}
	if !s.limiter.Allow() {
		s.logger.Debug("refresh throttled")
		return ErrRefreshThrottled
	}
	s.refreshing = true
	return nil
}

// Collect queries the Source and returns the reconciled inventory.
// It reads no mutable state, so it may run outside the event loop while
// the loop keeps handling other keys.
func (s *State) Collect(ctx context.Context) ([]network.AccessPoint, error) {
	start := time.Now()

	lines, err := s.source.ListAccessPoints(ctx)
	if err != nil {
		s.logger.Warn("scan source failed", zap.Error(err))
		return nil, &SourceError{Err: err}
	}

	networks := network.Reconcile(network.ParseRecords(slices.Values(lines)))
	s.markConnected(ctx, networks)

	s.logger.Debug("scan reconciled",
		zap.Int("raw_lines", len(lines)),
		zap.Int("networks", len(networks)),
		zap.Duration("duration", time.Since(start)),
		logging.RawLines("lines", lines),
	)
	return networks, nil
}

// FinishRefresh ends a refresh started by BeginRefresh. When err is nil the
// inventory is replaced by networks, which must come from Collect; otherwise
// the inventory is kept and err is recorded and returned.
func (s *State) FinishRefresh(networks []network.AccessPoint, err error) error {
	s.refreshing = false
	s.lastErr = err
	if err != nil {
		return err
	}
	s.Replace(networks)
	return nil
}

// Replace swaps in a new inventory and clamps the selection to it.
// networks is reconciled again, so duplicates and ordering are always fixed up.
func (s *State) Replace(networks []network.AccessPoint) {
	s.networks = network.Reconcile(slices.Values(networks))
	s.lastRefresh = time.Now()
	s.selection.SetLength(len(s.networks))
}

func (s *State) markConnected(ctx context.Context, networks []network.AccessPoint) {
	active, ok := s.source.(ActiveSource)
	if !ok {
		return
	}

	lines, err := active.ActiveNetworks(ctx)
	if err != nil {
		s.logger.Info("could not determine connected network", zap.Error(err))
		return
	}
	ssid, ok := network.ParseActiveSSID(lines)
	if !ok {
		s.logger.Info("could not determine connected network", zap.Int("lines", len(lines)))
		return
	}
	if !network.MarkConnected(networks, ssid) {
		s.logger.Debug("connected network not in scan", zap.String("ssid", ssid))
	}
}
