package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/led-arcade/internal/config"
	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/engine"
	_ "github.com/vovakirdan/led-arcade/internal/games/snake"
	_ "github.com/vovakirdan/led-arcade/internal/games/tetris"
	"github.com/vovakirdan/led-arcade/internal/storage"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestRunner(t *testing.T) *engine.Runner {
	t.Helper()
	rc := engine.DefaultRunnerConfig()
	rc.Seed = 7
	r, err := engine.NewRunner(rc, config.NewLive(config.Default(), ""), nil)
	if err != nil {
		t.Fatalf("NewRunner() error = %v", err)
	}
	return r
}

func TestKeyMapCommand(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		msg    tea.KeyMsg
		kind   core.CommandKind
		active bool
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.CmdLeft, false},
		{runes("l"), core.CmdRight, false},
		{tea.KeyMsg{Type: tea.KeyUp}, core.CmdUp, false},
		{runes("j"), core.CmdDown, false},
		{runes("x"), core.CmdRotate, false},
		{tea.KeyMsg{Type: tea.KeySpace}, core.CmdDrop, false},
		{runes("s"), core.CmdSoftDrop, true},
		{runes("m"), core.CmdManual, false},
		{runes("a"), core.CmdAI, false},
	}

	for _, tt := range tests {
		cmd, ok := keys.Command(tt.msg)
		if !ok {
			t.Errorf("Command(%q) not mapped", tt.msg.String())
			continue
		}
		if cmd.Kind != tt.kind || cmd.Active != tt.active {
			t.Errorf("Command(%q) = %v/%v, expected %v/%v", tt.msg.String(), cmd.Kind, cmd.Active, tt.kind, tt.active)
		}
	}

	if _, ok := keys.Command(runes("z")); ok {
		t.Error("unbound key should not map to a command")
	}
}

func TestRenderFrame(t *testing.T) {
	f := core.NewFrame(3, 2)
	f.SetPixel(0, 0, core.RGB(255, 0, 0))
	f.SetPixel(1, 0, core.RGB(255, 0, 0))
	f.SetPixel(2, 1, core.RGB(0, 0, 255))

	out := RenderFrame(f)
	if got := strings.Count(out, "█"); got != 12 {
		t.Errorf("glyph count = %d, expected 12", got)
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("line breaks = %d, expected 1", got)
	}
}

func TestRenderSnapshotUsesBackground(t *testing.T) {
	f := core.NewFrame(2, 2)
	snap := core.NewSnapshot("test", core.GameState{}, f, core.RGB(10, 10, 10))
	out := RenderSnapshot(snap)
	if got := strings.Count(out, "█"); got != 8 {
		t.Errorf("glyph count = %d, expected 8", got)
	}
}

func TestPanelManualReleasedOnClose(t *testing.T) {
	r := newTestRunner(t)
	m := NewPanelModel(r, PanelOptions{})
	if r.Sessions().Count() != 1 {
		t.Fatalf("sessions = %d, expected 1", r.Sessions().Count())
	}

	now := time.Unix(0, 0)
	m.Update(runes("m"))
	r.Step(now)
	if got := r.State().Mode; got != core.ModeManual {
		t.Fatalf("mode after m = %v, expected manual", got)
	}

	m.Close()
	m.Close()
	r.Step(now.Add(30 * time.Millisecond))
	if got := r.State().Mode; got != core.ModeAI {
		t.Errorf("mode after close = %v, expected ai", got)
	}
	if r.Sessions().Count() != 0 {
		t.Errorf("sessions after close = %d, expected 0", r.Sessions().Count())
	}
}

func TestPanelSoftDropReleasesAfterHold(t *testing.T) {
	r := newTestRunner(t)
	m := NewPanelModel(r, PanelOptions{})
	defer m.Close()
	var sent []core.Command
	m.submit = func(c core.Command) bool {
		sent = append(sent, c)
		return true
	}

	next, release := m.Update(runes("s"))
	if release == nil {
		t.Fatal("soft drop press should schedule a release")
	}
	first := next.(PanelModel)
	next, _ = first.Update(runes("s"))
	second := next.(PanelModel)

	if len(sent) != 2 {
		t.Fatalf("sent %d commands, expected 2", len(sent))
	}
	for i, c := range sent {
		if c.Kind != core.CmdSoftDrop || !c.Active {
			t.Errorf("press %d sent %v/%v, expected softdrop/true", i, c.Kind, c.Active)
		}
	}

	// The first press's timer fires after the key was pressed again.
	second.Update(softDropReleaseMsg{seq: first.dropSeq})
	if len(sent) != 2 {
		t.Fatalf("stale release sent %v", sent[len(sent)-1])
	}

	second.Update(softDropReleaseMsg{seq: second.dropSeq})
	if len(sent) != 3 {
		t.Fatalf("sent %d commands after release, expected 3", len(sent))
	}
	if c := sent[2]; c.Kind != core.CmdSoftDrop || c.Active {
		t.Errorf("release sent %v/%v, expected softdrop/false", c.Kind, c.Active)
	}
}

func TestPanelCloseWithoutClaimKeepsMode(t *testing.T) {
	r := newTestRunner(t)
	owner := NewPanelModel(r, PanelOptions{})
	watcher := NewPanelModel(r, PanelOptions{})

	now := time.Unix(0, 0)
	owner.Update(runes("m"))
	r.Step(now)

	watcher.Close()
	r.Step(now.Add(30 * time.Millisecond))
	if got := r.State().Mode; got != core.ModeManual {
		t.Errorf("mode = %v, expected manual to survive a watcher leaving", got)
	}
}

func TestPanelNextGame(t *testing.T) {
	r := newTestRunner(t)
	m := NewPanelModel(r, PanelOptions{})
	defer m.Close()

	if r.ActiveGame() != "tetris" {
		t.Fatalf("initial game = %q, expected tetris", r.ActiveGame())
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if r.ActiveGame() != "snake" {
		t.Errorf("after tab = %q, expected snake", r.ActiveGame())
	}
	if pm := next.(PanelModel); pm.title != "Snake" {
		t.Errorf("title = %q, expected Snake", pm.title)
	}
	next.Update(tea.KeyMsg{Type: tea.KeyTab})
	if r.ActiveGame() != "tetris" {
		t.Errorf("after second tab = %q, expected tetris", r.ActiveGame())
	}
}

func TestPanelDriveSteps(t *testing.T) {
	r := newTestRunner(t)
	m := NewPanelModel(r, PanelOptions{Drive: true, Interval: 10 * time.Millisecond})
	defer m.Close()

	next, cmd := m.Update(TickMsg(time.Unix(1, 0)))
	if cmd == nil {
		t.Error("driving panel should schedule the next tick")
	}
	if r.Tick() != 1 {
		t.Errorf("runner tick = %d, expected 1", r.Tick())
	}
	if pm := next.(PanelModel); pm.tick != 1 {
		t.Errorf("panel tick = %d, expected 1", pm.tick)
	}
}

func TestPanelIgnoresTickWhenNotDriving(t *testing.T) {
	r := newTestRunner(t)
	m := NewPanelModel(r, PanelOptions{})
	defer m.Close()

	if _, cmd := m.Update(TickMsg(time.Unix(1, 0))); cmd != nil {
		t.Error("spectating panel should not schedule ticks")
	}
	if r.Tick() != 0 {
		t.Errorf("runner tick = %d, expected 0", r.Tick())
	}
}

func TestPanelViewShowsSnapshot(t *testing.T) {
	r := newTestRunner(t)
	m := NewPanelModel(r, PanelOptions{User: "alice"})
	defer m.Close()

	snap := r.Snapshot()
	snap.Score = 42
	snap.Manual = true
	next, _ := m.Update(engine.SnapshotEvent{Tick: 7, Snapshot: snap})

	view := next.View()
	for _, want := range []string{"score 42", "tick 7", "[MANUAL]", "@alice", "TETRIS"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestPanelQuitsWhenSessionCloses(t *testing.T) {
	r := newTestRunner(t)
	m := NewPanelModel(r, PanelOptions{})
	m.Close()

	msg := waitForEvent(m.session)()
	if _, ok := msg.(sessionClosedMsg); !ok {
		t.Fatalf("waitForEvent() = %T, expected sessionClosedMsg", msg)
	}
	next, _ := m.Update(msg)
	if !next.(PanelModel).quitting {
		t.Error("panel should quit once its session closes")
	}
}

type fakeScores struct {
	calls []string
	err   error
}

func (f *fakeScores) TopScores(gameID string, limit int) ([]storage.ScoreEntry, error) {
	f.calls = append(f.calls, gameID)
	if f.err != nil {
		return nil, f.err
	}
	return []storage.ScoreEntry{
		{GameID: gameID, Score: 30, Lines: 3, Mode: "ai", Duration: 65000, CreatedAt: time.Unix(0, 0)},
	}, nil
}

func (f *fakeScores) GetGameStats(gameID string) (*storage.GameStats, error) {
	return &storage.GameStats{GameID: gameID, GamesCount: 1, HighScore: 30, AvgScore: 30}, nil
}

func TestScoreboardCyclesGames(t *testing.T) {
	src := &fakeScores{}
	m := NewScoreboardModel(src, 120, 30)

	view := m.View()
	if !strings.Contains(view, "HIGH SCORES - Snake") {
		t.Errorf("view should open on the first game, got:\n%s", view)
	}
	if !strings.Contains(view, "1:05") {
		t.Error("view should format the game duration as 1:05")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !strings.Contains(next.View(), "HIGH SCORES - Tetris") {
		t.Error("tab should move to the next game")
	}
	prev, _ := next.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if !strings.Contains(prev.View(), "HIGH SCORES - Snake") {
		t.Error("shift+tab should move back")
	}

	expected := []string{"snake", "tetris", "snake"}
	if strings.Join(src.calls, ",") != strings.Join(expected, ",") {
		t.Errorf("TopScores calls = %v, expected %v", src.calls, expected)
	}
}

func TestScoreboardShowsLoadError(t *testing.T) {
	m := NewScoreboardModel(&fakeScores{err: errors.New("disk gone")}, 120, 30)
	if !strings.Contains(m.View(), "disk gone") {
		t.Error("view should surface the load error")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := map[int64]string{0: "0:00", 999: "0:00", 65000: "1:05", 600000: "10:00"}
	for ms, want := range tests {
		if got := formatDuration(ms); got != want {
			t.Errorf("formatDuration(%d) = %q, expected %q", ms, got, want)
		}
	}
}
