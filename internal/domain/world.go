package domain

// componentSet - то, что умеет каждое хранилище (для запросов и удаления сущностей)
type componentSet interface {
	Has(id EntityID) bool
	IDs() []EntityID
	clear(id EntityID)
}

// Filter - условие запроса по наличию компонента. Его реализует любой *Store.
type Filter interface {
	Has(id EntityID) bool
	IDs() []EntityID
}

// World - контейнер сущностей и их компонентов.
// Системы получают World целиком на время одного прохода.
type World struct {
	nextID EntityID
	alive  map[EntityID]struct{}

	Labels      *Store[Label]
	Renders     *Store[Render]
	Positions   *Store[Position]
	Visibility  *Store[Visibility]
	Memories    *Store[VisibilityMemory]
	Ais         *Store[Ai]
	Turns       *Store[HasATurn]
	WantMoves   *Store[WantMove]
	WantAttacks *Store[WantAttack]
	Interacts   *Store[Interact]
	AreaRefs    *Store[AreaRef]
	Objects     *Store[Object]

	stores []componentSet
}

func NewWorld() *World {
	w := &World{
		alive:       make(map[EntityID]struct{}),
		Labels:      NewStore[Label](),
		Renders:     NewStore[Render](),
		Positions:   NewStore[Position](),
		Visibility:  NewStore[Visibility](),
		Memories:    NewStore[VisibilityMemory](),
		Ais:         NewStore[Ai](),
		Turns:       NewStore[HasATurn](),
		WantMoves:   NewStore[WantMove](),
		WantAttacks: NewStore[WantAttack](),
		Interacts:   NewStore[Interact](),
		AreaRefs:    NewStore[AreaRef](),
		Objects:     NewStore[Object](),
	}
	w.stores = []componentSet{
		w.Labels, w.Renders, w.Positions, w.Visibility, w.Memories, w.Ais,
		w.Turns, w.WantMoves, w.WantAttacks, w.Interacts, w.AreaRefs, w.Objects,
	}
	return w
}

// Spawn создает новую пустую сущность
func (w *World) Spawn() EntityID {
	w.nextID++
	w.alive[w.nextID] = struct{}{}
	return w.nextID
}

// IsAlive проверяет, существует ли сущность
func (w *World) IsAlive(id EntityID) bool {
	_, ok := w.alive[id]
	return ok
}

// Despawn удаляет сущность вместе со всеми компонентами
func (w *World) Despawn(id EntityID) bool {
	if !w.IsAlive(id) {
		return false
	}
	for _, s := range w.stores {
		s.clear(id)
	}
	delete(w.alive, id)
	return true
}

// Len возвращает количество живых сущностей
func (w *World) Len() int {
	return len(w.alive)
}

// Query возвращает сущности, у которых есть все перечисленные компоненты,
// по возрастанию ID. Результат - снимок: его можно обходить, меняя мир.
func (w *World) Query(first Filter, rest ...Filter) []EntityID {
	var result []EntityID
	for _, id := range first.IDs() {
		matched := true
		for _, f := range rest {
			if !f.Has(id) {
				matched = false
				break
			}
		}
		if matched {
			result = append(result, id)
		}
	}
	return result
}

// Name возвращает имя сущности для логов
func (w *World) Name(id EntityID) string {
	if l, ok := w.Labels.Get(id); ok && l.Name != "" {
		return l.Name
	}
	return id.String()
}
