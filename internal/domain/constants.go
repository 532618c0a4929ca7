package domain

// Параметры восприятия
const (
	DefaultVisionRange = 8
)

// Типовые имена личностей AI (пока только для логов)
const (
	PersonalityHunter = "Hunter"
	PersonalityDrone  = "Drone"
)
