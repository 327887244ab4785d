package widgets_test

import (
	"testing"
	"time"

	"github.com/go-drift/playerui/pkg/component"
	"github.com/go-drift/playerui/pkg/config"
	"github.com/go-drift/playerui/pkg/dom"
	"github.com/go-drift/playerui/pkg/errors"
	"github.com/go-drift/playerui/pkg/events"
	"github.com/go-drift/playerui/pkg/player"
	uitest "github.com/go-drift/playerui/pkg/testing"
	"github.com/go-drift/playerui/pkg/widgets"
)

func playToggle(t *testing.T, p *player.Player) *widgets.PlayToggle {
	t.Helper()
	pt, ok := p.Lookup("ControlBar", "PlayToggle").(*widgets.PlayToggle)
	if !ok {
		t.Fatal("expected a PlayToggle in the control bar")
	}
	return pt
}

func TestComposition(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	tester.Mount()

	for _, class := range []string{
		"vjs-control-bar", "vjs-play-control", "vjs-progress-control",
		"vjs-progress-holder", "vjs-mouse-display",
	} {
		if got := tester.Find(uitest.ByClass(class)).Count(); got != 1 {
			t.Errorf("found %d .%s, want 1", got, class)
		}
	}
	if tester.Find(uitest.ByClass("vjs-tooltip")).Exists() {
		t.Error("tooltips are off by default")
	}
}

func TestButton_NeedText(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	p := tester.Mount()

	b, ok := p.AddChildByName("Button", component.Options{}).(*widgets.Button)
	if !ok {
		t.Fatal("expected a Button")
	}
	if got := b.ControlText(); got != "Need Text" {
		t.Errorf("ControlText = %q, want Need Text", got)
	}
	b.SetControlText("")
	if got := b.ControlText(); got != "Need Text" {
		t.Errorf("empty text should be ignored, got %q", got)
	}
	if dom.Attr(b.El(), "type") != "button" || dom.Attr(b.El(), "role") != "button" {
		t.Error("expected button type and role attributes")
	}
}

func TestButton_Localized(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	tester.Configure(func(cfg *config.Config) { cfg.Language = "de" })
	p := tester.Mount()

	pt := playToggle(t, p)
	if got := dom.TextContent(pt.ControlTextEl()); got != "Wiedergabe" {
		t.Errorf("label = %q, want Wiedergabe", got)
	}
	if got := pt.ControlText(); got != "Play" {
		t.Errorf("ControlText = %q, want the untranslated key", got)
	}
}

func TestButton_KeyListenerFollowsFocus(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	p := tester.Mount()

	a := p.AddChildByName("Button", component.Options{ControlText: "A"})
	b := p.AddChildByName("Button", component.Options{ControlText: "B", ID: "b"})

	tester.Focus(a.El())
	tester.Focus(a.El())
	if n := tester.DocumentListeners("keydown"); n != 1 {
		t.Fatalf("refocus should not add listeners, got %d", n)
	}
	tester.Focus(b.El())
	if n := tester.DocumentListeners("keydown"); n != 2 {
		t.Fatalf("keydown listeners = %d, want 2", n)
	}
	tester.Blur(a.El())
	if n := tester.DocumentListeners("keydown"); n != 1 {
		t.Errorf("keydown listeners after blur = %d, want 1", n)
	}
	b.Dispose()
	if n := tester.DocumentListeners("keydown"); n != 0 {
		t.Errorf("keydown listeners after dispose = %d, want 0", n)
	}
}

func TestButton_KeyboardActivation(t *testing.T) {
	tests := []struct {
		name     string
		key      int
		wantPlay bool
	}{
		{"space", events.KeySpace, true},
		{"enter", events.KeyEnter, true},
		{"other key", 65, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tester := uitest.NewTesterWithT(t)
			p := tester.Mount()
			pt := playToggle(t, p)

			tester.Focus(pt.El())
			kept := tester.KeyDown(tt.key)

			if p.Paused() == tt.wantPlay {
				t.Errorf("paused = %v after key %d", p.Paused(), tt.key)
			}
			if kept == tt.wantPlay {
				t.Errorf("default kept = %v, want %v", kept, !tt.wantPlay)
			}
		})
	}
}

func TestButton_UnfocusedIgnoresKeys(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	p := tester.Mount()

	tester.KeyDown(events.KeySpace)
	if !p.Paused() {
		t.Error("an unfocused button should not react to keys")
	}
}

func TestButton_SetControlTextAfterDispose(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	p := tester.Mount()

	b := p.AddChildByName("Button", component.Options{ControlText: "X"}).(*widgets.Button)
	b.Dispose()
	b.SetControlText("Y")

	if len(tester.ReportsOf(errors.KindMisuse)) != 1 {
		t.Error("expected a misuse report")
	}
	if b.ControlTextEl() != nil {
		t.Error("label node should be released")
	}
}

func TestPlayToggle_Click(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	p := tester.Mount()
	pt := playToggle(t, p)

	if err := tester.Click(uitest.ByClass("vjs-play-control")); err != nil {
		t.Fatal(err)
	}
	if p.Paused() {
		t.Fatal("click should start playback")
	}
	if !pt.HasClass("vjs-playing") || pt.HasClass("vjs-paused") {
		t.Error("expected vjs-playing on the toggle")
	}
	if pt.ControlText() != "Pause" {
		t.Errorf("label = %q, want Pause", pt.ControlText())
	}

	tester.ClickNode(pt.El())
	if !p.Paused() || !pt.HasClass("vjs-paused") || pt.ControlText() != "Play" {
		t.Error("second click should pause")
	}
}

func TestPlayToggle_Tap(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	p := tester.Mount()

	if err := tester.Tap(uitest.ByClass("vjs-play-control")); err != nil {
		t.Fatal(err)
	}
	if p.Paused() {
		t.Error("tap should start playback")
	}
}

func TestPlayToggle_FollowsPlayer(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	p := tester.Mount()
	pt := playToggle(t, p)

	p.Play()
	if pt.ControlText() != "Pause" {
		t.Errorf("label = %q after Play, want Pause", pt.ControlText())
	}
	p.Pause()
	if pt.ControlText() != "Play" {
		t.Errorf("label = %q after Pause, want Play", pt.ControlText())
	}
}

func TestTooltip_PlayerFlag(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	tester.Configure(func(cfg *config.Config) { cfg.Tooltips = true })
	p := tester.Mount()
	pt := playToggle(t, p)

	tip := pt.Tooltip()
	if tip == nil {
		t.Fatal("expected a tooltip")
	}
	if tip.HandlerEl() != pt.El() || tip.Text() != "Play" {
		t.Errorf("tooltip handler/text = %v/%q", tip.HandlerEl(), tip.Text())
	}

	tester.Hover(pt.El())
	if !tip.Visible() || dom.Attr(tip.El(), "aria-hidden") != "false" {
		t.Error("hover should show the tooltip")
	}
	tester.Unhover(pt.El())
	if tip.Visible() {
		t.Error("mouseleave should hide the tooltip")
	}

	p.Play()
	if tip.Text() != "Pause" {
		t.Errorf("tooltip text = %q, want Pause", tip.Text())
	}
}

func TestTooltip_DisabledOverridesFlag(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	tester.Configure(func(cfg *config.Config) {
		cfg.Tooltips = true
		cfg.Components = map[string]component.Options{
			"PlayToggle": {Tooltip: component.TooltipOff()},
		}
	})
	p := tester.Mount()
	pt := playToggle(t, p)

	p.Play()
	if pt.Tooltip() != nil || tester.Find(uitest.ByClass("vjs-tooltip")).Exists() {
		t.Error("tooltip: false must never create a tooltip")
	}
}

func TestTooltip_NoTextNoTooltip(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	tester.Configure(func(cfg *config.Config) { cfg.Tooltips = true })
	p := tester.Mount()

	b := p.AddChildByName("Button", component.Options{}).(*widgets.Button)
	if b.Tooltip() != nil {
		t.Error("a button without a label has no tooltip")
	}
	b.SetControlText("Now")
	if b.Tooltip() == nil {
		t.Error("setting a label should attach the tooltip")
	}
}

func TestTooltip_ByID(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	poster := dom.CreateElement("div", dom.Props{ID: "poster"}, nil)
	dom.AppendChild(tester.Document().Body(), poster)
	tester.Configure(func(cfg *config.Config) {
		cfg.Components = map[string]component.Options{
			"PlayToggle": {Tooltip: component.TooltipFor("poster")},
		}
	})
	p := tester.Mount()
	tip := playToggle(t, p).Tooltip()

	if tip == nil || tip.HandlerEl() != poster {
		t.Fatal("expected the tooltip to follow the poster element")
	}
	tester.Focus(poster)
	if !tip.Visible() {
		t.Error("focusing the handler should show the tooltip")
	}
	tester.Blur(poster)
	if tip.Visible() {
		t.Error("blur should hide the tooltip")
	}

	p.Dispose()
	if tester.ListenerTargets() != 0 {
		t.Errorf("handler bindings should be released, %d targets remain", tester.ListenerTargets())
	}
}

func TestTooltip_MissingID(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	tester.Configure(func(cfg *config.Config) {
		cfg.Components = map[string]component.Options{
			"PlayToggle": {Tooltip: component.TooltipFor("nowhere")},
		}
	})
	p := tester.Mount()

	if playToggle(t, p).Tooltip() != nil {
		t.Error("unresolved id should not attach a tooltip")
	}
	if len(tester.ReportsOf(errors.KindMissingDependency)) == 0 {
		t.Error("expected a missing-dependency report")
	}
}

func TestTooltip_OwnedBy(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	p := tester.Mount()
	seek := p.Lookup("ControlBar", "ProgressControl", "SeekBar")

	b := widgets.NewButton(p, component.Options{
		ControlText: "Seek",
		Tooltip:     component.TooltipOwnedBy(seek),
	})
	p.AddChild(b)

	if b.Tooltip() == nil || b.Tooltip().HandlerEl() != seek.El() {
		t.Error("tooltip should follow the owner element")
	}
}

func TestSeekBar_Aria(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	p := tester.Mount()
	seek := tester.Find(uitest.ByAttr("role", "slider")).First()

	p.SetDuration(120)
	p.SetCurrentTime(30)

	if got := dom.Attr(seek, "aria-valuenow"); got != "25.00" {
		t.Errorf("aria-valuenow = %q, want 25.00", got)
	}
	if got := dom.Attr(seek, "aria-valuetext"); got != "0:30 of 2:00" {
		t.Errorf("aria-valuetext = %q, want 0:30 of 2:00", got)
	}
	if got := dom.Attr(seek, "aria-label"); got != "Progress Bar" {
		t.Errorf("aria-label = %q", got)
	}
}

// mountSeekArea lays out the progress control, seek bar and mouse display:
// the bar spans 10..310, the display is 20px wide and the tooltip 40px.
func mountSeekArea(t *testing.T) (*uitest.Tester, *player.Player, *widgets.MouseTimeDisplay) {
	t.Helper()
	tester := uitest.NewTesterWithT(t)
	tester.Configure(func(cfg *config.Config) { cfg.Media.Duration = 120 })
	p := tester.Mount()

	mtd, ok := p.Lookup("ControlBar", "ProgressControl", "SeekBar", "MouseTimeDisplay").(*widgets.MouseTimeDisplay)
	if !ok {
		t.Fatal("expected a MouseTimeDisplay")
	}
	tester.SetRect(uitest.ByClass("vjs-progress-control"), uitest.Rect(0, 0, 400, 30))
	tester.SetRect(uitest.ByClass("vjs-progress-holder"), uitest.Rect(10, 0, 300, 10))
	tester.SetRect(uitest.ByClass("vjs-mouse-display"), uitest.Rect(0, 0, 20, 10))
	tester.SetRect(uitest.ByClass("vjs-mouse-display-tooltip"), uitest.Rect(0, 0, 40, 20))
	return tester, p, mtd
}

func TestMouseTimeDisplay_TooltipAttachedOnReady(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	p := tester.Mount()

	mtd := p.Lookup("ControlBar", "ProgressControl", "SeekBar", "MouseTimeDisplay").(*widgets.MouseTimeDisplay)
	progress := p.Lookup("ControlBar", "ProgressControl")
	if mtd.TooltipEl().Parent != progress.El() {
		t.Error("tooltip should live in the progress control")
	}
	if n := tester.ListenerCount(progress.El(), "mousemove"); n != 1 {
		t.Errorf("mousemove listeners = %d, want 1", n)
	}
}

func TestMouseTimeDisplay_Move(t *testing.T) {
	tester, p, mtd := mountSeekArea(t)
	progress := p.Lookup("ControlBar", "ProgressControl").El()

	tester.MouseMove(progress, 50, 5)

	if got := mtd.Position(); got != 40 {
		t.Errorf("position = %v, want 40", got)
	}
	if got := mtd.Time(); got < 15.99 || got > 16.01 {
		t.Errorf("time = %v, want 16", got)
	}
	if got := dom.Style(mtd.El(), "left"); got != "40px" {
		t.Errorf("left = %q, want 40px", got)
	}
	if got := mtd.TooltipPosition(); got != 30 {
		t.Errorf("tooltip position = %v, want 30", got)
	}
	if got := dom.TextContent(mtd.TooltipEl()); got != "0:16" {
		t.Errorf("tooltip text = %q, want 0:16", got)
	}
}

func TestMouseTimeDisplay_Clamps(t *testing.T) {
	tests := []struct {
		name        string
		pageX       float64
		wantPos     float64
		wantTime    float64
		wantTooltip float64
	}{
		{"left of bar", 0, 0, 0, 0},
		{"right of bar", 390, 280, 120, 360},
		{"far right", 1000, 280, 120, 360},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tester, p, mtd := mountSeekArea(t)
			tester.MouseMove(p.Lookup("ControlBar", "ProgressControl").El(), tt.pageX, 5)

			if mtd.Position() != tt.wantPos {
				t.Errorf("position = %v, want %v", mtd.Position(), tt.wantPos)
			}
			if mtd.Time() != tt.wantTime {
				t.Errorf("time = %v, want %v", mtd.Time(), tt.wantTime)
			}
			if mtd.TooltipPosition() != tt.wantTooltip {
				t.Errorf("tooltip position = %v, want %v", mtd.TooltipPosition(), tt.wantTooltip)
			}
		})
	}
}

func TestMouseTimeDisplay_Throttled(t *testing.T) {
	tester, p, mtd := mountSeekArea(t)
	progress := p.Lookup("ControlBar", "ProgressControl").El()

	tester.MouseMove(progress, 50, 5)
	tester.Advance(5 * time.Millisecond)
	tester.MouseMove(progress, 100, 5)
	tester.MouseMove(progress, 160, 5)

	if mtd.Position() != 40 {
		t.Fatalf("moves inside the interval should wait, position = %v", mtd.Position())
	}
	tester.Advance(widgets.MouseMoveInterval)
	if mtd.Position() != 150 {
		t.Errorf("trailing move should use the latest pointer, position = %v", mtd.Position())
	}
}

func TestMouseTimeDisplay_DisposeRemovesTooltip(t *testing.T) {
	tester, p, mtd := mountSeekArea(t)
	tip := mtd.TooltipEl()
	progress := p.Lookup("ControlBar", "ProgressControl").El()

	tester.MouseMove(progress, 50, 5)
	tester.MouseMove(progress, 60, 5)
	mtd.Dispose()

	if tip.Parent != nil || mtd.TooltipEl() != nil {
		t.Error("tooltip node should be removed")
	}
	if n := tester.ListenerCount(progress, "mousemove"); n != 0 {
		t.Errorf("mousemove listeners = %d, want 0", n)
	}
	if tester.Scheduler().PendingTimers() != 0 {
		t.Error("pending trailing move should be cancelled")
	}
}

func TestMouseTimeDisplay_AddedAfterReady(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	p := tester.Mount()
	seekBar := p.Lookup("ControlBar", "ProgressControl", "SeekBar")
	progress := p.Lookup("ControlBar", "ProgressControl").El()

	late := widgets.NewMouseTimeDisplay(p, component.Options{Name: "LateDisplay"})
	seekBar.Base().AddChild(late)
	if late.TooltipEl().Parent != nil {
		t.Fatal("attachment should stay asynchronous")
	}

	tester.Advance(10 * time.Millisecond)

	if late.TooltipEl().Parent != progress {
		t.Error("a display added after ready should still attach its tooltip")
	}
	if n := tester.ListenerCount(progress, "mousemove"); n != 2 {
		t.Errorf("mousemove listeners = %d, want 2", n)
	}
}

func TestMouseTimeDisplay_DisposedBeforeReady(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	p := tester.Mount()
	progress := p.Lookup("ControlBar", "ProgressControl").El()

	late := widgets.NewMouseTimeDisplay(p, component.Options{})
	late.Dispose()
	tester.Advance(10 * time.Millisecond)

	if n := tester.ListenerCount(progress, "mousemove"); n != 1 {
		t.Errorf("mousemove listeners = %d, want only the composed display's", n)
	}
	if len(tester.Reports()) != 0 {
		t.Errorf("unexpected reports: %v", tester.Reports())
	}
}

func TestPlayerDispose_ReleasesEverything(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	tester.Configure(func(cfg *config.Config) { cfg.Tooltips = true })
	p := tester.Mount()

	tester.Focus(playToggle(t, p).El())
	tester.MouseMove(p.Lookup("ControlBar", "ProgressControl").El(), 5, 5)
	el := p.El()
	p.Dispose()

	if n := tester.ListenerTargets(); n != 0 {
		t.Errorf("%d nodes still hold listeners", n)
	}
	if el.FirstChild != nil || el.Parent != nil {
		t.Error("player element should be empty and detached")
	}
	if tester.Scheduler().PendingTimers() != 0 {
		t.Error("no timers should remain")
	}
}
