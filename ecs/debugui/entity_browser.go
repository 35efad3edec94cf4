package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/arche/ecs"
)

// EntityInfo is one row of the browser table.
type EntityInfo struct {
	ID        ecs.Id
	Info      ecs.HandleInfo
	Kinds     string
	KindCount int
	Row       int
}

// EntityBrowser lists every live entity that occupies an archetype row, with
// its handle breakdown and archetype membership; live entities with no
// components are not listed. The table rebuilds only when the store's structural
// version changes.
type EntityBrowser struct {
	entities    []EntityInfo
	lastVersion uint64
	built       bool

	filterText         string
	currentPage        int
	maxEntitiesPerPage int
	selectedEntity     ecs.Id
}

// NewEntityBrowser creates a browser paging maxEntitiesPerPage rows at a time.
func NewEntityBrowser(maxEntitiesPerPage int) *EntityBrowser {
	return &EntityBrowser{maxEntitiesPerPage: maxEntitiesPerPage}
}

// Render draws the browser window.
func (eb *EntityBrowser) Render(w *ecs.World) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	eb.rebuildIfNeeded(w)

	imgui.InputTextWithHint("##search", "Filter by component type...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
		eb.currentPage = 0
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Handle")
		imgui.TableSetupColumn("Index")
		imgui.TableSetupColumn("Generation")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Row")
		imgui.TableHeadersRow()

		filtered := eb.filtered()

		startIdx := eb.currentPage * eb.maxEntitiesPerPage
		endIdx := startIdx + eb.maxEntitiesPerPage
		if startIdx > len(filtered) {
			startIdx = len(filtered)
		}
		if endIdx > len(filtered) {
			endIdx = len(filtered)
		}

		for i := startIdx; i < endIdx; i++ {
			entity := filtered[i]
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.selectedEntity == entity.ID
			if imgui.SelectableBoolV(entity.Info.Hex, isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selectedEntity = entity.ID
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", entity.Info.Index))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", entity.Info.Generation))

			imgui.TableNextColumn()
			imgui.Text(entity.Kinds)

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", entity.Row))
		}

		imgui.EndTable()
	}

	filtered := eb.filtered()
	if len(filtered) > eb.maxEntitiesPerPage {
		totalPages := (len(filtered) + eb.maxEntitiesPerPage - 1) / eb.maxEntitiesPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filtered)))
	}

	imgui.End()
}

func (eb *EntityBrowser) rebuildIfNeeded(w *ecs.World) {
	version := w.Store().Version()
	if eb.built && version == eb.lastVersion {
		return
	}
	eb.lastVersion = version
	eb.built = true

	eb.entities = eb.entities[:0]
	for _, ar := range w.Store().Archetypes() {
		names := make([]string, len(ar.Set()))
		for i, kind := range ar.Set() {
			names[i] = w.Registry().TypeName(kind)
		}
		kinds := strings.Join(names, ", ")
		for row := 0; row < ar.RowCount(); row++ {
			entity := ar.EntityAt(row)
			eb.entities = append(eb.entities, EntityInfo{
				ID:        entity,
				Info:      ecs.Describe(entity),
				Kinds:     kinds,
				KindCount: len(ar.Set()),
				Row:       row,
			})
		}
	}
}

func (eb *EntityBrowser) filtered() []EntityInfo {
	if eb.filterText == "" {
		return eb.entities
	}
	needle := strings.ToLower(eb.filterText)
	var out []EntityInfo
	for _, entity := range eb.entities {
		if strings.Contains(strings.ToLower(entity.Kinds), needle) {
			out = append(out, entity)
		}
	}
	return out
}
