package domain

import "strings"

// ObjectType - интерактивный объект, нанесенный на карту
type ObjectType uint8

const (
	ObjectNone ObjectType = iota
	ObjectDoor
	ObjectEngine
	ObjectCockpit
)

var objectStringToType = map[string]ObjectType{
	"DOOR":    ObjectDoor,
	"ENGINE":  ObjectEngine,
	"COCKPIT": ObjectCockpit,
}

var objectTypeToString = map[ObjectType]string{
	ObjectNone:    "NONE",
	ObjectDoor:    "DOOR",
	ObjectEngine:  "ENGINE",
	ObjectCockpit: "COCKPIT",
}

// ParseObjectType конвертирует имя объекта (без учета регистра)
func ParseObjectType(s string) (ObjectType, bool) {
	val, ok := objectStringToType[strings.ToUpper(s)]
	return val, ok
}

func (t ObjectType) String() string {
	if val, ok := objectTypeToString[t]; ok {
		return val
	}
	return "UNKNOWN"
}

// ObjectKind - тип объекта вместе с параметрами. Нулевое значение - "нет объекта".
type ObjectKind struct {
	Type     ObjectType `json:"type"`
	Vertical bool       `json:"vertical,omitempty"` // только для дверей
}

func DoorKind(vertical bool) ObjectKind { return ObjectKind{Type: ObjectDoor, Vertical: vertical} }
func EngineKind() ObjectKind            { return ObjectKind{Type: ObjectEngine} }
func CockpitKind() ObjectKind           { return ObjectKind{Type: ObjectCockpit} }

func (k ObjectKind) IsNone() bool {
	return k.Type == ObjectNone
}

func (k ObjectKind) String() string {
	if k.Type == ObjectDoor {
		if k.Vertical {
			return "DOOR(vertical)"
		}
		return "DOOR(horizontal)"
	}
	return k.Type.String()
}
