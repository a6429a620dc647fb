// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit            Action = "quit"
	ActionSwitchFocus     Action = "switch_focus"
	ActionFilter          Action = "filter"
	ActionHelp            Action = "help"
	ActionRefresh         Action = "refresh"
	ActionToggleSaveState Action = "toggle_save_state"

	// Playback actions
	ActionPlayPause     Action = "play_pause"
	ActionNextTrack     Action = "next_track"
	ActionPrevTrack     Action = "prev_track"
	ActionSeekForward   Action = "seek_forward"
	ActionSeekBack      Action = "seek_back"
	ActionToggleShuffle Action = "toggle_shuffle"
	ActionCycleLoop     Action = "cycle_loop"
	ActionVolumeUp      Action = "volume_up"
	ActionVolumeDown    Action = "volume_down"
	ActionToggleMute    Action = "toggle_mute"

	// Track list actions
	ActionSelect       Action = "select"         // enter - play now
	ActionEnqueue      Action = "enqueue"        // a - add to queue
	ActionMoveItemUp   Action = "move_item_up"   // shift+k
	ActionMoveItemDown Action = "move_item_down" // shift+j
	ActionCycleSort    Action = "cycle_sort"     // t

	// Queue panel actions
	ActionRemove Action = "remove" // x/delete

	// Visualizer actions
	ActionDetailDown    Action = "detail_down"
	ActionDetailUp      Action = "detail_up"
	ActionSmoothingDown Action = "smoothing_down"
	ActionSmoothingUp   Action = "smoothing_up"
	ActionCycleStyle    Action = "cycle_style"
	ActionCycleTheme    Action = "cycle_theme"
	ActionToggleOpacity Action = "toggle_opacity"
)
