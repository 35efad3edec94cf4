package ecs

// WorldStats summarises storage occupancy for diagnostics and the debug UI.
type WorldStats struct {
	EntityCount    int
	ArchetypeCount int
	Archetypes     []ArchetypeStats
}

// ArchetypeStats describes one archetype's shape.
type ArchetypeStats struct {
	Kinds     ComponentSet
	KindNames []string
	RowCount  int
}

// CollectStats walks the archetype store in key order.
func (w *World) CollectStats() WorldStats {
	stats := WorldStats{
		EntityCount:    w.directory.len(),
		ArchetypeCount: len(w.store.archetypes),
	}
	for _, ar := range w.store.archetypes {
		names := make([]string, len(ar.set))
		for i, kind := range ar.set {
			names[i] = w.registry.TypeName(kind)
		}
		stats.Archetypes = append(stats.Archetypes, ArchetypeStats{
			Kinds:     ar.set,
			KindNames: names,
			RowCount:  ar.RowCount(),
		})
	}
	return stats
}
