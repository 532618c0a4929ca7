package domain

import (
	"fmt"
	"strconv"
)

// EntityID - идентификатор сущности в World. Ноль означает "нет сущности".
type EntityID uint32

// NilEntityID - аналог nil для ссылок на сущности.
const NilEntityID EntityID = 0

// AreaID - сущность, которая владеет областью (через компонент AreaRef).
type AreaID = EntityID

func (id EntityID) IsNil() bool {
	return id == NilEntityID
}

// String для логов: [#12]
func (id EntityID) String() string {
	return fmt.Sprintf("[#%d]", uint32(id))
}

// MarshalText позволяет использовать EntityID как ключ в JSON/YAML картах.
func (id EntityID) MarshalText() ([]byte, error) {
	return []byte(strconv.FormatUint(uint64(id), 10)), nil
}

func (id *EntityID) UnmarshalText(data []byte) error {
	val, err := strconv.ParseUint(string(data), 10, 32)
	if err != nil {
		return fmt.Errorf("invalid entity id %q: %w", data, err)
	}
	*id = EntityID(val)
	return nil
}
