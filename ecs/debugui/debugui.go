// Package debugui provides Dear ImGui inspector windows for ECS worlds:
// an entity browser, an archetype viewer and a scheduler performance panel.
// Overlay components hook user render functions into the UI phase.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/arche/ecs"
)

// Overlay is a component holding a Dear ImGui render function. Attach it to
// entities that should render ImGui widgets each frame.
type Overlay struct {
	Render func()
}

// InputState reports Dear ImGui's input capture state after a UI pass. Use
// it to decide whether the host should ignore mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Attach registers the Overlay kind as the type default plus the UI-phase
// system that defers every overlay's render function. Render functions are
// deferred rather than called mid-walk, so they run once the walk has closed
// and may mutate the world directly. Commands they queue on the world's
// buffer are dropped when that flush resets it.
func Attach(w *ecs.World) ecs.Id {
	kind := ecs.RegisterComponent[Overlay](w.Registry(), ecs.TypeDefault)
	ecs.RegisterSystem1(w, ecs.UI, []ecs.Id{kind}, nil, func(item *Overlay) {
		if item.Render != nil {
			w.Commands().Defer(item.Render)
		}
	})
	return kind
}

// CaptureState samples ImGui's current input capture flags.
func CaptureState() InputState {
	io := imgui.CurrentIO()
	return InputState{
		WantCaptureMouse:    io.WantCaptureMouse(),
		WantCaptureKeyboard: io.WantCaptureKeyboard(),
	}
}
