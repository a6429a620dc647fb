package keymap

// Context names the part of the screen a binding applies to.
type Context string

const (
	ContextGlobal     Context = "global"
	ContextPlayback   Context = "playback"
	ContextTrackList  Context = "tracks"
	ContextQueue      Context = "queue"
	ContextVisualizer Context = "visualizer"
)

// Contexts lists the contexts in help order.
var Contexts = []Context{ContextGlobal, ContextPlayback, ContextTrackList, ContextQueue, ContextVisualizer}

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     Context
}

// All contains every key binding, used both for dispatch and help.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
	{ActionSwitchFocus, []string{"tab"}, "Switch focus", ContextGlobal},
	{ActionFilter, []string{"/"}, "Filter tracks", ContextGlobal},
	{ActionRefresh, []string{"R"}, "Rescan folder", ContextGlobal},
	{ActionToggleSaveState, []string{"S"}, "Toggle save state on exit", ContextGlobal},
	{ActionHelp, []string{"?"}, "Show help", ContextGlobal},

	// Playback
	{ActionPlayPause, []string{" "}, "Play/pause", ContextPlayback},
	{ActionNextTrack, []string{"n"}, "Next track", ContextPlayback},
	{ActionPrevTrack, []string{"p"}, "Previous track", ContextPlayback},
	{ActionSeekBack, []string{"left"}, "Seek back", ContextPlayback},
	{ActionSeekForward, []string{"right"}, "Seek forward", ContextPlayback},
	{ActionToggleShuffle, []string{"s"}, "Toggle shuffle", ContextPlayback},
	{ActionCycleLoop, []string{"r"}, "Cycle loop mode", ContextPlayback},
	{ActionVolumeUp, []string{"+", "="}, "Volume up", ContextPlayback},
	{ActionVolumeDown, []string{"-"}, "Volume down", ContextPlayback},
	{ActionToggleMute, []string{"m"}, "Mute", ContextPlayback},

	// Track list
	{ActionSelect, []string{"enter"}, "Play track", ContextTrackList},
	{ActionEnqueue, []string{"a"}, "Add to queue", ContextTrackList},
	{ActionMoveItemUp, []string{"K", "shift+up"}, "Move track up", ContextTrackList},
	{ActionMoveItemDown, []string{"J", "shift+down"}, "Move track down", ContextTrackList},
	{ActionCycleSort, []string{"t"}, "Cycle sort order", ContextTrackList},

	// Queue panel
	{ActionRemove, []string{"x", "delete"}, "Remove from queue", ContextQueue},

	// Visualizer
	{ActionDetailDown, []string{"["}, "Less detail", ContextVisualizer},
	{ActionDetailUp, []string{"]"}, "More detail", ContextVisualizer},
	{ActionSmoothingDown, []string{"{"}, "Less smoothing", ContextVisualizer},
	{ActionSmoothingUp, []string{"}"}, "More smoothing", ContextVisualizer},
	{ActionCycleStyle, []string{"v"}, "Cycle style", ContextVisualizer},
	{ActionCycleTheme, []string{"c"}, "Cycle theme", ContextVisualizer},
	{ActionToggleOpacity, []string{"o"}, "Toggle opacity scaling", ContextVisualizer},
}

// ByContext returns key bindings filtered by context.
func ByContext(context Context) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
