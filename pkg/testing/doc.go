// Package testing provides a test harness for the player UI.
//
// # Quick Start
//
// Create a tester, mount a player, and make assertions:
//
//	func TestPlayToggle(t *testing.T) {
//	    tester := uitest.NewTesterWithT(t)
//	    tester.Mount()
//
//	    // Find elements
//	    toggle := tester.Find(uitest.ByClass("vjs-play-control")).First()
//
//	    // Simulate input
//	    tester.ClickNode(toggle)
//
//	    // Assert state
//	    if tester.Player().Paused() {
//	        t.Error("expected playback to start")
//	    }
//	}
//
// # Time
//
// The player runs on a FakeScheduler. Ready callbacks, timeouts and the
// throttled pointer tracking only fire when time is advanced:
//
//	tester.Advance(25 * time.Millisecond)
//
// # Listener Accounting
//
// DocumentListeners, ListenerCount and ListenerTargets expose the event
// bus so tests can prove bindings are released.
//
// # Snapshot Testing
//
// Capture and compare element tree snapshots:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/control_bar.snapshot.json")
//
// Update snapshots with:
//
//	PLAYERUI_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import uitest "github.com/go-drift/playerui/pkg/testing"
package testing
