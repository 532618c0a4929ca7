package domain

// CommandBuffer копит изменения мира во время прохода системы.
// Apply выполняет их в порядке добавления, когда обход уже закончен.
type CommandBuffer struct {
	ops []func(w *World)
}

func NewCommandBuffer() *CommandBuffer {
	return &CommandBuffer{}
}

// Push добавляет произвольную операцию
func (b *CommandBuffer) Push(op func(w *World)) {
	b.ops = append(b.ops, op)
}

// Despawn откладывает удаление сущности
func (b *CommandBuffer) Despawn(id EntityID) {
	b.Push(func(w *World) { w.Despawn(id) })
}

func (b *CommandBuffer) Len() int {
	return len(b.ops)
}

// Apply выполняет накопленные операции и очищает буфер. Возвращает их количество.
func (b *CommandBuffer) Apply(w *World) int {
	ops := b.ops
	b.ops = nil
	for _, op := range ops {
		op(w)
	}
	return len(ops)
}

// InsertLater откладывает вставку компонента
func InsertLater[T any](b *CommandBuffer, store *Store[T], id EntityID, value T) {
	b.Push(func(*World) { store.Insert(id, value) })
}

// RemoveLater откладывает удаление компонента
func RemoveLater[T any](b *CommandBuffer, store *Store[T], id EntityID) {
	b.Push(func(*World) { store.Remove(id) })
}
