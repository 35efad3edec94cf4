package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/arche/ecs"
)

// ArchetypeViewer shows every archetype's component set and occupancy, in
// the store's deterministic key order.
type ArchetypeViewer struct{}

// NewArchetypeViewer creates a viewer window.
func NewArchetypeViewer() *ArchetypeViewer {
	return &ArchetypeViewer{}
}

// Render draws the viewer window.
func (av *ArchetypeViewer) Render(w *ecs.World) {
	if !imgui.BeginV("Archetype Viewer", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := w.CollectStats()
	imgui.Text(fmt.Sprintf("Archetypes: %d", stats.ArchetypeCount))
	imgui.Text(fmt.Sprintf("Live Entities: %d", stats.EntityCount))
	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("ArchetypeTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Component Set")
		imgui.TableSetupColumn("Kinds")
		imgui.TableSetupColumn("Rows")
		imgui.TableHeadersRow()

		for _, arch := range stats.Archetypes {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(strings.Join(arch.KindNames, ", "))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", len(arch.Kinds)))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", arch.RowCount))
		}

		imgui.EndTable()
	}

	if imgui.TreeNodeStr("Kind Handles") {
		for _, arch := range stats.Archetypes {
			for i, kind := range arch.Kinds {
				imgui.BulletText(fmt.Sprintf("%s = %s", arch.KindNames[i], ecs.Describe(kind).Hex))
			}
		}
		imgui.TreePop()
	}

	imgui.End()
}
