package app

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/muurk/witui/internal/config"
	"github.com/muurk/witui/internal/network"
	"github.com/muurk/witui/internal/selection"
)

// fakeSource implements Source for testing
type fakeSource struct {
	lines []string
	err   error
	calls int
}

func (f *fakeSource) ListAccessPoints(ctx context.Context) ([]string, error) {
	f.calls++
	return f.lines, f.err
}

// fakeActiveSource implements both Source and ActiveSource
type fakeActiveSource struct {
	fakeSource
	active    []string
	activeErr error
}

func (f *fakeActiveSource) ActiveNetworks(ctx context.Context) ([]string, error) {
	return f.active, f.activeErr
}

func scanLines(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("net-%02d:%d:WPA2:54 Mbit/s:▂▄__", i, 90-i)
	}
	return lines
}

func TestNew(t *testing.T) {
	s := New(&fakeSource{})

	if !s.Running() {
		t.Error("Running() = false, want true")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	if sel, ok := s.Selected(); ok || sel != selection.None {
		t.Errorf("Selected() = (%d, %v), want (None, false)", sel, ok)
	}
	if _, ok := s.SelectedNetwork(); ok {
		t.Error("SelectedNetwork() ok = true on empty inventory")
	}
	if s.Networks() == nil {
		t.Error("Networks() = nil, want empty slice")
	}
}

func TestRefresh_ReconcilesSourceLines(t *testing.T) {
	src := &fakeSource{lines: []string{
		"Cafe:30:WPA2:54 Mbit/s:▂▄__",
		"Home:82:WPA2:270 Mbit/s:▂▄▆█",
		":95:WPA2:54 Mbit/s:▂▄▆█",
		"Cafe:70:WPA2:130 Mbit/s:▂▄▆_",
		"truncated:40",
	}}
	s := New(src)

	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	got := s.Networks()
	want := []struct {
		ssid   string
		signal int
	}{{"Home", 82}, {"Cafe", 70}}

	if len(got) != len(want) {
		t.Fatalf("Networks() has %d entries, want %d: %+v", len(got), len(want), got)
	}
	for i, w := range want {
		if got[i].SSID != w.ssid || got[i].Signal != w.signal {
			t.Errorf("Networks()[%d] = %s/%d, want %s/%d", i, got[i].SSID, got[i].Signal, w.ssid, w.signal)
		}
	}
	if sel, ok := s.Selected(); !ok || sel != 0 {
		t.Errorf("Selected() = (%d, %v), want (0, true)", sel, ok)
	}
	if s.LastRefresh().IsZero() {
		t.Error("LastRefresh() is zero after successful refresh")
	}
}

func TestRefresh_SourceFailureKeepsInventory(t *testing.T) {
	src := &fakeSource{lines: scanLines(5)}
	s := New(src)
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	s.OnFrame(10)
	s.HandleKey(context.Background(), KeyDown)
	s.HandleKey(context.Background(), KeyDown)

	boom := errors.New("nmcli: not found")
	src.err = boom
	src.lines = nil

	err := s.Refresh(context.Background())

	var srcErr *SourceError
	if !errors.As(err, &srcErr) {
		t.Fatalf("Refresh() error = %v, want *SourceError", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("Refresh() error does not wrap source error: %v", err)
	}
	if s.Len() != 5 {
		t.Errorf("Len() = %d after failure, want 5", s.Len())
	}
	if sel, _ := s.Selected(); sel != 2 {
		t.Errorf("Selected() = %d after failure, want 2", sel)
	}
	if s.LastError() != err {
		t.Errorf("LastError() = %v, want %v", s.LastError(), err)
	}
	if !s.Running() {
		t.Error("source failure stopped the application")
	}
	if s.Refreshing() {
		t.Error("Refreshing() = true after failed refresh")
	}
}

func TestRefresh_ShrinkClampsSelection(t *testing.T) {
	src := &fakeSource{lines: scanLines(5)}
	s := New(src)
	s.OnFrame(3)
	s.Refresh(context.Background())
	for i := 0; i < 4; i++ {
		s.HandleKey(context.Background(), KeyDown)
	}
	if sel, _ := s.Selected(); sel != 4 {
		t.Fatalf("Selected() = %d, want 4", sel)
	}

	src.lines = scanLines(2)
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	if sel, _ := s.Selected(); sel != 1 {
		t.Errorf("Selected() = %d after shrink, want 1", sel)
	}
	if s.Offset() != 0 {
		t.Errorf("Offset() = %d after shrink, want 0", s.Offset())
	}
}

func TestRefresh_EmptyScan(t *testing.T) {
	src := &fakeSource{lines: scanLines(3)}
	s := New(src)
	s.Refresh(context.Background())

	src.lines = []string{}
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	if _, ok := s.Selected(); ok {
		t.Error("Selected() ok = true on empty inventory")
	}
	if s.Offset() != 0 {
		t.Errorf("Offset() = %d, want 0", s.Offset())
	}
}

func TestRefresh_MarksConnected(t *testing.T) {
	tests := []struct {
		name          string
		active        []string
		activeErr     error
		wantConnected string
	}{
		{"active network found", []string{"Home:yes", "Cafe:no"}, nil, "Home"},
		{"no active network", []string{"Home:no", "Cafe:no"}, nil, ""},
		{"ambiguous", []string{"Home:yes", "Cafe:yes"}, nil, ""},
		{"lookup fails", nil, errors.New("exit status 8"), ""},
		{"active network not in scan", []string{"Office:yes"}, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &fakeActiveSource{
				fakeSource: fakeSource{lines: []string{
					"Home:80:WPA2:270 Mbit/s:▂▄▆█",
					"Cafe:50:WPA2:54 Mbit/s:▂▄▆_",
				}},
				active:    tt.active,
				activeErr: tt.activeErr,
			}
			s := New(src)

			if err := s.Refresh(context.Background()); err != nil {
				t.Fatalf("Refresh() error = %v", err)
			}

			connected := 0
			for _, ap := range s.Networks() {
				if ap.Connected {
					connected++
					if ap.SSID != tt.wantConnected {
						t.Errorf("%s marked connected, want %q", ap.SSID, tt.wantConnected)
					}
				}
			}
			if tt.wantConnected != "" && connected != 1 {
				t.Errorf("%d networks connected, want 1", connected)
			}
			if tt.wantConnected == "" && connected != 0 {
				t.Errorf("%d networks connected, want 0", connected)
			}
		})
	}
}

func TestRefresh_AmbiguousActiveLoggedOnce(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	src := &fakeActiveSource{
		fakeSource: fakeSource{lines: scanLines(3)},
		active:     []string{"net-00:no"},
	}
	s := New(src, WithLogger(zap.New(core)))

	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	if n := logs.FilterMessage("could not determine connected network").Len(); n != 1 {
		t.Errorf("diagnostic logged %d times, want 1", n)
	}
}

func TestRefresh_Throttled(t *testing.T) {
	src := &fakeSource{lines: scanLines(2)}
	s := New(src, WithMinRefreshInterval(time.Hour))

	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("first Refresh() error = %v", err)
	}
	err := s.Refresh(context.Background())
	if !errors.Is(err, ErrRefreshThrottled) {
		t.Errorf("second Refresh() error = %v, want ErrRefreshThrottled", err)
	}
	if src.calls != 1 {
		t.Errorf("source called %d times, want 1", src.calls)
	}
	if s.Refreshing() {
		t.Error("throttled refresh left Refreshing() = true")
	}
}

func TestWithMinRefreshInterval_Zero(t *testing.T) {
	src := &fakeSource{lines: scanLines(2)}
	s := New(src, WithMinRefreshInterval(0))

	for i := 0; i < 3; i++ {
		if err := s.Refresh(context.Background()); err != nil {
			t.Fatalf("Refresh() #%d error = %v", i, err)
		}
	}
	if src.calls != 3 {
		t.Errorf("source called %d times, want 3", src.calls)
	}
}

func TestHandleKey_RefreshRightAfterStartupScan(t *testing.T) {
	src := &fakeSource{lines: scanLines(2)}
	s := New(src, WithMinRefreshInterval(config.Default().UI.MinRefreshInterval))

	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("startup Refresh() error = %v", err)
	}
	src.lines = scanLines(5)
	if err := s.HandleKey(context.Background(), KeyRefresh); err != nil {
		t.Fatalf("HandleKey(KeyRefresh) error = %v", err)
	}
	if src.calls != 2 || s.Len() != 5 {
		t.Errorf("calls = %d, Len() = %d; want 2 scans and 5 networks", src.calls, s.Len())
	}
}

func TestBeginRefresh_InFlight(t *testing.T) {
	src := &fakeSource{lines: scanLines(4)}
	s := New(src)

	if err := s.BeginRefresh(); err != nil {
		t.Fatalf("BeginRefresh() error = %v", err)
	}
	if !s.Refreshing() {
		t.Error("Refreshing() = false after BeginRefresh")
	}
	if err := s.BeginRefresh(); !errors.Is(err, ErrRefreshInFlight) {
		t.Errorf("second BeginRefresh() error = %v, want ErrRefreshInFlight", err)
	}
	if err := s.HandleKey(context.Background(), KeyRefresh); !errors.Is(err, ErrRefreshInFlight) {
		t.Errorf("HandleKey(KeyRefresh) error = %v, want ErrRefreshInFlight", err)
	}

	// Navigation keeps working on the old inventory while the scan runs.
	s.HandleKey(context.Background(), KeyDown)

	networks, err := s.Collect(context.Background())
	if err := s.FinishRefresh(networks, err); err != nil {
		t.Fatalf("FinishRefresh() error = %v", err)
	}
	if s.Refreshing() {
		t.Error("Refreshing() = true after FinishRefresh")
	}
	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4", s.Len())
	}
}

func TestHandleKey(t *testing.T) {
	tests := []struct {
		name    string
		keys    []Key
		wantSel int
		wantRun bool
	}{
		{"down twice", []Key{KeyDown, KeyDown}, 2, true},
		{"up at top", []Key{KeyUp}, 0, true},
		{"down then up", []Key{KeyDown, KeyDown, KeyUp}, 1, true},
		{"bottom", []Key{KeyBottom}, 9, true},
		{"bottom then top", []Key{KeyBottom, KeyTop}, 0, true},
		{"page down", []Key{KeyPageDown}, 4, true},
		{"page down then up", []Key{KeyPageDown, KeyPageDown, KeyPageUp}, 4, true},
		{"down past end", []Key{KeyBottom, KeyDown, KeyDown}, 9, true},
		{"unknown keys ignored", []Key{KeyNone, Key(99), KeyDown}, 1, true},
		{"quit", []Key{KeyDown, KeyQuit}, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(&fakeSource{lines: scanLines(10)})
			s.OnFrame(4)
			if err := s.Refresh(context.Background()); err != nil {
				t.Fatalf("Refresh() error = %v", err)
			}

			for _, k := range tt.keys {
				if err := s.HandleKey(context.Background(), k); err != nil {
					t.Fatalf("HandleKey(%v) error = %v", k, err)
				}
			}

			if sel, _ := s.Selected(); sel != tt.wantSel {
				t.Errorf("Selected() = %d, want %d", sel, tt.wantSel)
			}
			if s.Running() != tt.wantRun {
				t.Errorf("Running() = %v, want %v", s.Running(), tt.wantRun)
			}
			start, end := s.Window()
			if sel, _ := s.Selected(); sel < start || sel >= end {
				t.Errorf("selected %d outside window [%d,%d)", sel, start, end)
			}
		})
	}
}

func TestHandleKey_RefreshReplacesInventory(t *testing.T) {
	src := &fakeSource{lines: scanLines(2)}
	s := New(src)

	if err := s.HandleKey(context.Background(), KeyRefresh); err != nil {
		t.Fatalf("HandleKey(KeyRefresh) error = %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestOnFrame_KeepsSelectionVisible(t *testing.T) {
	s := New(&fakeSource{lines: scanLines(20)})
	s.OnFrame(10)
	s.Refresh(context.Background())
	for i := 0; i < 9; i++ {
		s.HandleKey(context.Background(), KeyDown)
	}

	s.OnFrame(3)

	if s.VisibleRows() != 3 {
		t.Errorf("VisibleRows() = %d, want 3", s.VisibleRows())
	}
	if s.Offset() != 7 {
		t.Errorf("Offset() = %d, want 7", s.Offset())
	}
	ap, ok := s.SelectedNetwork()
	if !ok || ap.SSID != "net-09" {
		t.Errorf("SelectedNetwork() = (%v, %v), want net-09", ap, ok)
	}
}

func TestReplace_FixesOrderAndDuplicates(t *testing.T) {
	s := New(&fakeSource{})

	s.Replace([]network.AccessPoint{
		{SSID: "low", Signal: 10},
		{SSID: "high", Signal: 90},
		{SSID: "low", Signal: 20},
	})

	got := s.Networks()
	if len(got) != 2 || got[0].SSID != "high" || got[1].Signal != 20 {
		t.Errorf("Networks() = %+v, want [high/90 low/20]", got)
	}

	s.Replace(nil)
	if s.Networks() == nil || s.Len() != 0 {
		t.Errorf("Replace(nil) left %d networks", s.Len())
	}
}

func TestNetworks_ReturnsCopy(t *testing.T) {
	s := New(&fakeSource{lines: scanLines(2)})
	s.Refresh(context.Background())

	got := s.Networks()
	got[0].SSID = "mutated"

	if s.Networks()[0].SSID == "mutated" {
		t.Error("Networks() exposes internal slice")
	}
}

func TestKey_String(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyQuit, "quit"},
		{KeyRefresh, "refresh"},
		{KeyUp, "up"},
		{KeyDown, "down"},
		{KeyPageDown, "page-down"},
		{Key(42), "Key(42)"},
	}

	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", int(tt.key), got, tt.want)
		}
	}
}
