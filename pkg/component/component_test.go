package component_test

import (
	"strings"
	"testing"
	"time"

	"github.com/go-drift/playerui/pkg/component"
	"github.com/go-drift/playerui/pkg/config"
	"github.com/go-drift/playerui/pkg/dom"
	"github.com/go-drift/playerui/pkg/errors"
	"github.com/go-drift/playerui/pkg/events"
	"github.com/go-drift/playerui/pkg/fn"
	"github.com/go-drift/playerui/pkg/player"
	uitest "github.com/go-drift/playerui/pkg/testing"
)

func mountEmpty(t *testing.T) (*uitest.Tester, *player.Player) {
	t.Helper()
	tester := uitest.NewTesterWithT(t)
	tester.Configure(func(cfg *config.Config) {
		cfg.Children = []component.ChildSpec{}
	})
	p := tester.Mount()
	p.Registry().Register("Box", func(p component.Player, opts component.Options) component.Widget {
		return component.New(p, opts, component.Hooks{Defaults: component.Options{Name: "Box"}})
	})
	return tester, p
}

func newBox(p *player.Player, opts component.Options) *component.Component {
	if opts.Name == "" {
		opts.Name = "Box"
	}
	return component.New(p, opts, component.Hooks{})
}

func TestNew_GeneratedID(t *testing.T) {
	_, p := mountEmpty(t)

	a := newBox(p, component.Options{})
	b := newBox(p, component.Options{})

	if !strings.HasPrefix(a.ID(), "vjs_player_component_") {
		t.Errorf("id = %q, want player-prefixed id", a.ID())
	}
	if a.ID() == b.ID() {
		t.Error("generated ids must be unique")
	}
	if got := newBox(p, component.Options{ID: "fixed"}).ID(); got != "fixed" {
		t.Errorf("explicit id = %q, want fixed", got)
	}
}

func TestNew_PlayerLevelOptions(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	tester.Configure(func(cfg *config.Config) {
		cfg.Children = []component.ChildSpec{}
		cfg.Components = map[string]component.Options{
			"Box": {ClassName: "from-config", ControlText: "cfg"},
		}
	})
	p := tester.Mount()

	c := component.New(p, component.Options{ControlText: "instance"}, component.Hooks{
		Defaults: component.Options{Name: "Box", ClassName: "builtin"},
	})
	opts := c.Options()
	if opts.ClassName != "from-config" {
		t.Errorf("ClassName = %q, want from-config", opts.ClassName)
	}
	if opts.ControlText != "instance" {
		t.Errorf("ControlText = %q, want instance", opts.ControlText)
	}
	if c.Name() != "Box" {
		t.Errorf("Name = %q, want Box", c.Name())
	}
}

func TestState(t *testing.T) {
	_, p := mountEmpty(t)
	c := newBox(p, component.Options{})

	if c.State() != component.StateCreated {
		t.Errorf("detached state = %v, want created", c.State())
	}
	p.AddChild(c)
	if c.State() != component.StateMounted {
		t.Errorf("attached state = %v, want mounted", c.State())
	}
	c.Dispose()
	if c.State() != component.StateDisposed {
		t.Errorf("state = %v, want disposed", c.State())
	}
}

func TestOnTrigger_OwnElement(t *testing.T) {
	_, p := mountEmpty(t)
	c := newBox(p, component.Options{})

	var got []string
	c.On(nil, "ping pong", fn.New(func(e *events.Event) { got = append(got, e.Type) }))
	c.Trigger("ping", nil)
	c.Trigger("pong", nil)

	if strings.Join(got, ",") != "ping,pong" {
		t.Errorf("events = %v, want [ping pong]", got)
	}
}

func TestTrigger_Bubbles(t *testing.T) {
	_, p := mountEmpty(t)
	c := newBox(p, component.Options{})
	p.AddChild(c)

	var seen bool
	p.On(nil, "custom", fn.New(func(*events.Event) { seen = true }))
	c.Trigger("custom", nil)

	if !seen {
		t.Error("expected the event to bubble to the player")
	}
}

func TestTrigger_PreventDefault(t *testing.T) {
	_, p := mountEmpty(t)
	c := newBox(p, component.Options{})
	c.On(nil, "submit", fn.New(func(e *events.Event) { e.PreventDefault() }))

	if c.Trigger("submit", nil) {
		t.Error("Trigger should return false when the default is prevented")
	}
}

func TestOff_RemovesOnlyMatchingGUID(t *testing.T) {
	tester, p := mountEmpty(t)
	c := newBox(p, component.Options{})

	var a, b int
	la := fn.New(func(*events.Event) { a++ })
	lb := fn.New(func(*events.Event) { b++ })
	c.On(nil, "ping", la)
	c.On(nil, "ping", lb)
	c.Off(nil, "ping", la)
	c.Trigger("ping", nil)

	if a != 0 || b != 1 {
		t.Errorf("a=%d b=%d, want a=0 b=1", a, b)
	}
	if n := tester.ListenerCount(c.El(), "ping"); n != 1 {
		t.Errorf("ListenerCount = %d, want 1", n)
	}
}

func TestOne_FiresOncePerType(t *testing.T) {
	_, p := mountEmpty(t)
	c := newBox(p, component.Options{})

	var got []string
	b := c.One(nil, "ping pong", fn.New(func(e *events.Event) { got = append(got, e.Type) }))
	c.Trigger("ping", nil)
	c.Trigger("ping", nil)
	if b.Released() {
		t.Error("binding should stay live while pong is pending")
	}
	c.Trigger("pong", nil)
	c.Trigger("pong", nil)

	if strings.Join(got, ",") != "ping,pong" {
		t.Errorf("events = %v, want [ping pong]", got)
	}
	if !b.Released() {
		t.Error("binding should be released once every type fired")
	}
}

func TestOne_OffWithOriginalListener(t *testing.T) {
	_, p := mountEmpty(t)
	c := newBox(p, component.Options{})

	var calls int
	l := fn.New(func(*events.Event) { calls++ })
	c.One(nil, "ping", l)
	c.Off(nil, "ping", l)
	c.Trigger("ping", nil)

	if calls != 0 {
		t.Errorf("calls = %d, want 0", calls)
	}
}

func TestOn_ExternalTargetReleasedOnDispose(t *testing.T) {
	tester, p := mountEmpty(t)
	c := newBox(p, component.Options{})
	root := tester.Document().Root()

	c.On(component.Node(root), "keydown", fn.New(func(*events.Event) {}))
	if n := tester.DocumentListeners("keydown"); n != 1 {
		t.Fatalf("keydown listeners = %d, want 1", n)
	}

	c.Dispose()
	if n := tester.DocumentListeners("keydown"); n != 0 {
		t.Errorf("keydown listeners after dispose = %d, want 0", n)
	}
}

func TestOn_WidgetTargetReleasedWhenTargetDisposed(t *testing.T) {
	_, p := mountEmpty(t)
	listener := newBox(p, component.Options{})
	target := newBox(p, component.Options{})

	var calls int
	b := listener.On(target, "ping", fn.New(func(*events.Event) { calls++ }))
	target.Trigger("ping", nil)
	target.Dispose()

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if !b.Released() {
		t.Error("binding should be released when its target is disposed")
	}
	listener.Dispose()
}

func TestOn_WidgetTargetOutlivesListener(t *testing.T) {
	tester, p := mountEmpty(t)
	listener := newBox(p, component.Options{})
	target := newBox(p, component.Options{})

	listener.On(target, "ping", fn.New(func(*events.Event) {}))
	if n := tester.ListenerCount(target.El(), "dispose"); n != 1 {
		t.Fatalf("dispose listeners = %d, want 1", n)
	}

	listener.Dispose()
	if n := tester.ListenerCount(target.El(), "ping"); n != 0 {
		t.Errorf("ping listeners = %d, want 0", n)
	}
	if n := tester.ListenerCount(target.El(), "dispose"); n != 0 {
		t.Errorf("dispose listeners = %d, want 0", n)
	}
}

func TestOnDispose_ReverseOrderAndUnregister(t *testing.T) {
	_, p := mountEmpty(t)
	c := newBox(p, component.Options{})

	var order []int
	c.OnDispose(func() { order = append(order, 1) })
	unregister := c.OnDispose(func() { order = append(order, 2) })
	c.OnDispose(func() { order = append(order, 3) })
	unregister()
	c.Dispose()

	if len(order) != 2 || order[0] != 3 || order[1] != 1 {
		t.Errorf("order = %v, want [3 1]", order)
	}
}

func TestDispose_ChildrenReverseOrder(t *testing.T) {
	tester, p := mountEmpty(t)
	parent := newBox(p, component.Options{})
	p.AddChild(parent)

	var order []string
	bus := tester.Document().Events()
	for _, name := range []string{"first", "second", "third"} {
		child := newBox(p, component.Options{Name: name})
		parent.AddChild(child)
		bus.On(child.El(), "dispose", fn.New(func(*events.Event) { order = append(order, name) }))
	}

	parent.Dispose()
	if got := strings.Join(order, ","); got != "third,second,first" {
		t.Errorf("dispose order = %s, want third,second,first", got)
	}
}

func TestDispose_ReleasesSubtree(t *testing.T) {
	tester, p := mountEmpty(t)
	before := tester.ListenerTargets()

	parent := newBox(p, component.Options{})
	p.AddChild(parent)
	child := parent.AddChildByName("Box", component.Options{})
	child.Base().EmitTapEvents()
	parent.On(nil, "ping", fn.New(func(*events.Event) {}))
	el := parent.El()

	parent.Dispose()

	if tester.ListenerTargets() != before {
		t.Errorf("listener targets = %d, want %d", tester.ListenerTargets(), before)
	}
	if el.FirstChild != nil {
		t.Error("element should have no child nodes after dispose")
	}
	if el.Parent != nil {
		t.Error("element should be detached after dispose")
	}
	if parent.El() != nil || parent.ContentEl() != nil || parent.Player() != nil {
		t.Error("references should be cleared after dispose")
	}
	if len(p.Children()) != 0 {
		t.Error("disposed child should be removed from its parent")
	}
	if !child.Base().IsDisposed() {
		t.Error("child should be disposed with its parent")
	}
}

func TestDispose_Idempotent(t *testing.T) {
	tester, p := mountEmpty(t)
	c := newBox(p, component.Options{})

	var fired int
	tester.Document().Events().On(c.El(), "dispose", fn.New(func(*events.Event) { fired++ }))
	c.Dispose()
	c.Dispose()

	if fired != 1 {
		t.Errorf("dispose fired %d times, want 1", fired)
	}
	if len(tester.ReportsOf(errors.KindMisuse)) != 0 {
		t.Error("a second Dispose is not misuse")
	}
}

func TestDisposed_MisuseReported(t *testing.T) {
	tester, p := mountEmpty(t)
	c := newBox(p, component.Options{})
	c.Dispose()

	if b := c.On(nil, "ping", fn.New(func(*events.Event) {})); b != nil {
		t.Error("On after dispose should return nil")
	}
	c.AddClass("x")
	if c.CreateEl("div", dom.Props{}, nil) != nil {
		t.Error("CreateEl after dispose should return nil")
	}

	reports := tester.ReportsOf(errors.KindMisuse)
	if len(reports) != 3 {
		t.Fatalf("got %d misuse reports, want 3", len(reports))
	}
	if reports[0].Op != "component.On" || reports[0].Component != "Box" {
		t.Errorf("report = %+v", reports[0])
	}
}

func TestDisposed_TriggerIsNoop(t *testing.T) {
	tester, p := mountEmpty(t)
	c := newBox(p, component.Options{})
	p.AddChild(c)
	fired := 0
	c.On(nil, "ping", fn.New(func(*events.Event) { fired++ }))
	p.On(nil, "ping", fn.New(func(*events.Event) { fired++ }))
	c.Dispose()

	if !c.Trigger("ping", nil) {
		t.Error("Trigger after dispose should report the default as not prevented")
	}
	evt := events.New("ping")
	if !c.TriggerEvent(evt) {
		t.Error("TriggerEvent after dispose should report the default as not prevented")
	}
	if fired != 0 {
		t.Errorf("listeners fired %d times after dispose", fired)
	}

	reports := tester.ReportsOf(errors.KindMisuse)
	if len(reports) != 2 {
		t.Fatalf("got %d misuse reports, want 2", len(reports))
	}
	for _, r := range reports {
		if r.Op != "component.Trigger" || r.Component != "Box" {
			t.Errorf("report = %+v", r)
		}
	}
}

func TestAddChildByName_FactoryPanic(t *testing.T) {
	tester, p := mountEmpty(t)
	p.Registry().Register("Broken", func(component.Player, component.Options) component.Widget {
		panic("factory failed")
	})

	if w := p.AddChildByName("Broken", component.Options{}); w != nil {
		t.Errorf("AddChildByName = %v, want nil", w)
	}
	if len(p.Children()) != 0 {
		t.Errorf("children = %d, want 0", len(p.Children()))
	}
	panics := tester.Panics()
	if len(panics) != 1 {
		t.Fatalf("got %d panic reports, want 1", len(panics))
	}
	if panics[0].Op != "component.AddChild Broken" || panics[0].Value != "factory failed" {
		t.Errorf("panic report = %+v", panics[0])
	}
	if panics[0].StackTrace == "" || panics[0].Timestamp.IsZero() {
		t.Error("panic report should carry a stack trace and timestamp")
	}

	if p.AddChildByName("Box", component.Options{}) == nil {
		t.Error("composition should continue after a failed factory")
	}
}

func TestAddChildByName(t *testing.T) {
	tester, p := mountEmpty(t)

	w := p.AddChildByName("Box", component.Options{ClassName: "inner"})
	if w == nil {
		t.Fatal("expected a Box")
	}
	if w.El().Parent != p.El() {
		t.Error("child element should be appended to the player element")
	}
	if p.Child("Box") != w || p.ChildByID(w.Base().ID()) != w {
		t.Error("child should be indexed by name and id")
	}

	if p.AddChildByName("Nope", component.Options{}) != nil {
		t.Error("unknown name should return nil")
	}
	reports := tester.ReportsOf(errors.KindMissingDependency)
	if len(reports) != 1 {
		t.Fatalf("got %d missing-dependency reports, want 1", len(reports))
	}
}

func TestInitChildren_SkipsDisabled(t *testing.T) {
	_, p := mountEmpty(t)

	c := component.New(p, component.Options{
		Name: "Holder",
		Children: []component.ChildSpec{
			{Name: "Box", Options: component.Options{ID: "one"}},
			{Name: "Box", Disabled: true},
			{Name: "Box", Options: component.Options{ID: "two"}},
		},
	}, component.Hooks{})

	children := c.Children()
	if len(children) != 2 {
		t.Fatalf("got %d children, want 2", len(children))
	}
	if children[0].Base().ID() != "one" || children[1].Base().ID() != "two" {
		t.Errorf("children out of order: %s, %s", children[0].Base().ID(), children[1].Base().ID())
	}
}

func TestRemoveChild_DoesNotDispose(t *testing.T) {
	_, p := mountEmpty(t)
	c := newBox(p, component.Options{})
	p.AddChild(c)

	p.RemoveChild(c)
	if c.IsDisposed() {
		t.Error("RemoveChild must not dispose")
	}
	if c.El().Parent != nil || c.Parent() != nil {
		t.Error("child should be detached")
	}
}

func TestLookup(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	p := tester.Mount()

	w := p.Lookup("ControlBar", "ProgressControl", "SeekBar")
	if w == nil {
		t.Fatal("expected to find the seek bar")
	}
	if w.Base().Name() != "SeekBar" {
		t.Errorf("found %q", w.Base().Name())
	}
	if p.Lookup("ControlBar", "Nope") != nil {
		t.Error("missing path should return nil")
	}
	if p.Lookup() != p.Self() {
		t.Error("empty path should return the component itself")
	}
}

func TestClassHelpers(t *testing.T) {
	_, p := mountEmpty(t)
	c := newBox(p, component.Options{})

	c.AddClass("a")
	c.ToggleClass("b", true)
	if !c.HasClass("a") || !c.HasClass("b") {
		t.Error("expected classes a and b")
	}
	c.Hide()
	if !c.HasClass("vjs-hidden") {
		t.Error("Hide should add vjs-hidden")
	}
	c.Show()
	c.RemoveClass("a")
	if c.HasClass("vjs-hidden") || c.HasClass("a") {
		t.Error("Show and RemoveClass should remove classes")
	}
}

func TestSetTimeout(t *testing.T) {
	tester, p := mountEmpty(t)
	c := newBox(p, component.Options{})

	var fired, cleared bool
	c.SetTimeout(func() { fired = true }, 100*time.Millisecond)
	id := c.SetTimeout(func() { cleared = true }, 100*time.Millisecond)
	c.ClearTimeout(id)

	tester.Advance(99 * time.Millisecond)
	if fired {
		t.Fatal("timeout fired early")
	}
	tester.Advance(time.Millisecond)
	if !fired {
		t.Error("timeout should fire after 100ms")
	}
	if cleared {
		t.Error("cleared timeout should not fire")
	}
}

func TestSetInterval(t *testing.T) {
	tester, p := mountEmpty(t)
	c := newBox(p, component.Options{})

	var ticks int
	id := c.SetInterval(func() { ticks++ }, 10*time.Millisecond)
	tester.Advance(35 * time.Millisecond)
	if ticks != 3 {
		t.Errorf("ticks = %d, want 3", ticks)
	}
	c.ClearInterval(id)
	tester.Advance(50 * time.Millisecond)
	if ticks != 3 {
		t.Errorf("ticks after clear = %d, want 3", ticks)
	}
}

func TestTimers_StopOnDispose(t *testing.T) {
	tester, p := mountEmpty(t)
	c := newBox(p, component.Options{})

	var fired bool
	c.SetTimeout(func() { fired = true }, 10*time.Millisecond)
	c.SetInterval(func() { fired = true }, 10*time.Millisecond)
	pending := tester.Scheduler().PendingTimers()
	c.Dispose()

	if got := tester.Scheduler().PendingTimers(); got != pending-2 {
		t.Errorf("pending timers = %d, want %d", got, pending-2)
	}
	tester.Advance(50 * time.Millisecond)
	if fired {
		t.Error("timers should not fire after dispose")
	}
}

func TestReady(t *testing.T) {
	tester, p := mountEmpty(t)
	c := newBox(p, component.Options{})

	var order []string
	c.Ready(func() { order = append(order, "queued") })
	c.On(nil, "ready", fn.New(func(*events.Event) { order = append(order, "event") }))
	c.TriggerReady()

	if len(order) != 0 {
		t.Fatal("ready callbacks must not run synchronously")
	}
	tester.Advance(time.Millisecond)
	if strings.Join(order, ",") != "queued,event" {
		t.Errorf("order = %v, want [queued event]", order)
	}

	var late bool
	c.Ready(func() { late = true })
	if late {
		t.Error("Ready on a ready component should still defer")
	}
	tester.Advance(time.Millisecond)
	if !late {
		t.Error("late Ready callback should run")
	}
}

func TestEmitTapEvents(t *testing.T) {
	tests := []struct {
		name    string
		gesture func(tester *uitest.Tester, c *component.Component)
		wantTap bool
	}{
		{"short touch", func(tester *uitest.Tester, c *component.Component) {
			tester.TapNode(c.El())
		}, true},
		{"long press", func(tester *uitest.Tester, c *component.Component) {
			tester.Drag(c.El(), events.Touch{}, events.Touch{}, 250*time.Millisecond)
		}, false},
		{"small drift", func(tester *uitest.Tester, c *component.Component) {
			tester.Drag(c.El(), events.Touch{}, events.Touch{PageX: 6, PageY: 6}, 50*time.Millisecond)
		}, true},
		{"drag", func(tester *uitest.Tester, c *component.Component) {
			tester.Drag(c.El(), events.Touch{}, events.Touch{PageX: 11}, 50*time.Millisecond)
		}, false},
		{"multi touch", func(tester *uitest.Tester, c *component.Component) {
			two := events.NewTouch("touchstart", events.Touch{}, events.Touch{PageX: 40})
			tester.Dispatch(c.El(), two)
			tester.Advance(50 * time.Millisecond)
			tester.Dispatch(c.El(), events.NewTouch("touchend", events.Touch{}))
		}, false},
		{"cancelled", func(tester *uitest.Tester, c *component.Component) {
			tester.Dispatch(c.El(), events.NewTouch("touchstart", events.Touch{}))
			tester.Dispatch(c.El(), events.New("touchcancel"))
			tester.Dispatch(c.El(), events.NewTouch("touchend", events.Touch{}))
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tester, p := mountEmpty(t)
			c := newBox(p, component.Options{})
			c.EmitTapEvents()

			var taps int
			c.On(nil, "tap", fn.New(func(*events.Event) { taps++ }))
			tt.gesture(tester, c)

			if got := taps == 1; got != tt.wantTap {
				t.Errorf("tapped = %v, want %v", got, tt.wantTap)
			}
		})
	}
}
