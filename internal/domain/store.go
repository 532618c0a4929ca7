package domain

import "sort"

// Store - хранилище компонентов одного типа: EntityID -> *T.
// Обход всегда идет по возрастанию ID, чтобы системы были детерминированы.
type Store[T any] struct {
	items map[EntityID]*T
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{items: make(map[EntityID]*T)}
}

// Insert добавляет или заменяет компонент и возвращает указатель на сохраненное значение.
func (s *Store[T]) Insert(id EntityID, value T) *T {
	ptr := &value
	s.items[id] = ptr
	return ptr
}

func (s *Store[T]) Get(id EntityID) (*T, bool) {
	v, ok := s.items[id]
	return v, ok
}

func (s *Store[T]) Has(id EntityID) bool {
	_, ok := s.items[id]
	return ok
}

// Remove удаляет компонент. Возвращает false, если его не было.
func (s *Store[T]) Remove(id EntityID) bool {
	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	return true
}

func (s *Store[T]) Len() int {
	return len(s.items)
}

// IDs возвращает отсортированный снимок владельцев компонента.
func (s *Store[T]) IDs() []EntityID {
	ids := make([]EntityID, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Each обходит компоненты по возрастанию ID. Вставки и удаления внутри fn
// не ломают обход (работаем по снимку ID), но для систем их нужно буферизовать.
func (s *Store[T]) Each(fn func(id EntityID, value *T)) {
	for _, id := range s.IDs() {
		if v, ok := s.items[id]; ok {
			fn(id, v)
		}
	}
}

func (s *Store[T]) clear(id EntityID) {
	delete(s.items, id)
}
