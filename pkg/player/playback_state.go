package player

// PlaybackState is the playback state the player reports to its controls.
type PlaybackState int

const (
	// PlaybackStateIdle indicates no playback has started.
	PlaybackStateIdle PlaybackState = iota

	// PlaybackStatePlaying indicates media is playing.
	PlaybackStatePlaying

	// PlaybackStatePaused indicates playback was paused and can be resumed.
	PlaybackStatePaused

	// PlaybackStateEnded indicates the current time reached the duration.
	PlaybackStateEnded
)

// String returns a human-readable label for the playback state.
func (s PlaybackState) String() string {
	switch s {
	case PlaybackStateIdle:
		return "Idle"
	case PlaybackStatePlaying:
		return "Playing"
	case PlaybackStatePaused:
		return "Paused"
	case PlaybackStateEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}
