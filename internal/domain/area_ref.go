package domain

import (
	"errors"
	"fmt"

	"space-rogue/internal/grid"
)

var (
	ErrAreaNotFound   = errors.New("area not found")
	ErrAreaNotOwned   = errors.New("area is a reference, not an owned area")
	ErrAreaCycle      = errors.New("area reference would form a cycle")
	ErrAreaPassengers = errors.New("area still carries docked areas")
)

// AreaRef - либо сама область (владелец), либо ссылка на другую сущность-область.
// Сущность на слое корабля хранит ID корабля, а корабль, пристыкованный к
// сектору, ссылается на сектор: разрешение идет по цепочке до владельца.
type AreaRef struct {
	area *Area
	ref  AreaID
}

// NewAreaStruct - компонент-владелец области
func NewAreaStruct(area *Area) AreaRef {
	return AreaRef{area: area}
}

// NewAreaRef - компонент-ссылка на другую область
func NewAreaRef(target AreaID) AreaRef {
	return AreaRef{ref: target}
}

func (r AreaRef) IsStruct() bool {
	return r.area != nil
}

// Area возвращает область, если компонент ей владеет
func (r AreaRef) Area() (*Area, bool) {
	return r.area, r.area != nil
}

// Ref возвращает цель ссылки, если компонент - ссылка
func (r AreaRef) Ref() (AreaID, bool) {
	return r.ref, r.area == nil
}

func (r AreaRef) String() string {
	if r.area != nil {
		return fmt.Sprintf("Struct(%dx%d, %d layers)", r.area.Width(), r.area.Height(), r.area.LayerCount())
	}
	return fmt.Sprintf("Ref(%v)", r.ref)
}

// ResolveAreaID идет по цепочке ссылок и возвращает ID сущности-владельца.
// Цикл в цепочке - ошибка программиста.
func ResolveAreaID(w *World, id AreaID) (AreaID, bool) {
	current := id
	for hops := 0; hops <= w.AreaRefs.Len(); hops++ {
		ref, ok := w.AreaRefs.Get(current)
		if !ok {
			return NilEntityID, false
		}
		if ref.IsStruct() {
			return current, true
		}
		current = ref.ref
	}
	panic(fmt.Sprintf("domain: area reference cycle starting at %v", id))
}

// ResolveArea возвращает область, в которой на самом деле находится id.
// Указатель дает и чтение, и запись.
func ResolveArea(w *World, id AreaID) (*Area, bool) {
	resolved, ok := ResolveAreaID(w, id)
	if !ok {
		return nil, false
	}
	ref, _ := w.AreaRefs.Get(resolved)
	return ref.area, true
}

// ExtractArea вынимает слой владельца ownerID из области containerID.
func ExtractArea(w *World, containerID, ownerID AreaID) (*Area, grid.Coord, bool) {
	area, ok := ResolveArea(w, containerID)
	if !ok {
		return nil, grid.Coord{}, false
	}
	return area.RemoveLayer(ownerID)
}
