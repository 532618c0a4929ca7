package domain

import (
	"fmt"

	"space-rogue/internal/grid"
)

// SpawnArea создает сущность-владельца новой однослойной области
func (w *World) SpawnArea(name string, g *grid.Grid[Cell]) AreaID {
	id := w.Spawn()
	w.Labels.Insert(id, Label{Name: name})
	w.AreaRefs.Insert(id, NewAreaStruct(NewArea(id, g)))
	return id
}

// DockArea накладывает область guestID поверх области hostID со смещением offset.
// Гость становится ссылкой на хозяина, все позиции на госте переезжают в хозяина.
func (w *World) DockArea(hostID, guestID AreaID, offset grid.Coord) error {
	hostResolved, ok := ResolveAreaID(w, hostID)
	if !ok {
		return fmt.Errorf("dock %v into %v: host: %w", guestID, hostID, ErrAreaNotFound)
	}
	guestRef, ok := w.AreaRefs.Get(guestID)
	if !ok {
		return fmt.Errorf("dock %v into %v: guest: %w", guestID, hostID, ErrAreaNotFound)
	}
	guestArea, owned := guestRef.Area()
	if !owned {
		return fmt.Errorf("dock %v into %v: %w", guestID, hostID, ErrAreaNotOwned)
	}
	if hostResolved == guestID {
		return fmt.Errorf("dock %v into %v: %w", guestID, hostID, ErrAreaCycle)
	}

	hostArea, _ := ResolveArea(w, hostResolved)
	hostArea.Merge(guestArea, offset)
	w.AreaRefs.Insert(guestID, NewAreaRef(hostResolved))

	w.Positions.Each(func(_ EntityID, pos *Position) {
		if pos.AreaID == guestID {
			pos.AreaID = hostResolved
			pos.Point = pos.Point.Add(offset)
		}
	})
	return nil
}

// UndockArea вынимает слой ownerID из области containerID и снова делает
// ownerID самостоятельной областью. Сущности, стоящие на этом слое, уходят вместе с ним.
func (w *World) UndockArea(containerID, ownerID AreaID) (grid.Coord, error) {
	containerResolved, ok := ResolveAreaID(w, containerID)
	if !ok {
		return grid.Coord{}, fmt.Errorf("undock %v from %v: %w", ownerID, containerID, ErrAreaNotFound)
	}
	for _, id := range w.AreaRefs.IDs() {
		ref, _ := w.AreaRefs.Get(id)
		if target, isRef := ref.Ref(); isRef && target == ownerID {
			return grid.Coord{}, fmt.Errorf("undock %v from %v: %v: %w", ownerID, containerID, id, ErrAreaPassengers)
		}
	}

	container, _ := ResolveArea(w, containerResolved)
	var riders []EntityID
	w.Positions.Each(func(id EntityID, pos *Position) {
		if pos.AreaID != containerResolved {
			return
		}
		if layerOwner, ok := container.LayerEntityAt(pos.Point); ok && layerOwner == ownerID {
			riders = append(riders, id)
		}
	})

	area, origin, ok := ExtractArea(w, containerResolved, ownerID)
	if !ok {
		return grid.Coord{}, fmt.Errorf("undock %v from %v: layer: %w", ownerID, containerID, ErrAreaNotFound)
	}
	w.AreaRefs.Insert(ownerID, NewAreaStruct(area))

	for _, id := range riders {
		pos, _ := w.Positions.Get(id)
		pos.AreaID = ownerID
		pos.Point = pos.Point.Sub(origin)
	}
	return origin, nil
}
