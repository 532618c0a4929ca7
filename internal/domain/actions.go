package domain

// IntentKind - какое решение принял актор в этом ходу
type IntentKind uint8

const (
	IntentSkip IntentKind = iota
	IntentMove
	IntentAttack
	IntentInteract
)

// Маппинг для логов и меток метрик
var intentKindToString = map[IntentKind]string{
	IntentSkip:     "SKIP",
	IntentMove:     "MOVE",
	IntentAttack:   "ATTACK",
	IntentInteract: "INTERACT",
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (k IntentKind) String() string {
	if val, ok := intentKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}
