// Package tracking owns the location sampling and reporting lifecycle. The
// controller is started and stopped exclusively by trip lifecycle events,
// never by direct user toggles while a trip is active.
package tracking

// Mode is the tracking controller's lifecycle state.
type Mode int

const (
	// ModeIdle means no sampling is running.
	ModeIdle Mode = iota

	// ModeForegroundWatching means samples are consumed for display only,
	// without being pushed to the backend.
	ModeForegroundWatching

	// ModeBackgroundReporting means samples are consumed for display and
	// throttle-admitted ones are pushed to the backend.
	ModeBackgroundReporting
)

func (m Mode) String() string {
	switch m {
	case ModeForegroundWatching:
		return "ForegroundWatching"
	case ModeBackgroundReporting:
		return "BackgroundReporting"
	default:
		return "Idle"
	}
}
