package mapparse

import (
	"errors"
	"fmt"

	"space-rogue/internal/grid"
)

// ErrorKind - класс ошибки разбора карты
type ErrorKind uint8

const (
	UnknownChar ErrorKind = iota + 1
	FewLines
	InvalidLineWidth
	UnknownTileAt
)

// Sentinel-ошибки для errors.Is
var (
	ErrUnknownChar      = errors.New("unknown map char")
	ErrFewLines         = errors.New("map has too few lines")
	ErrInvalidLineWidth = errors.New("invalid map line width")
	ErrUnknownTileAt    = errors.New("unknown tile")
)

// ParseError описывает, что именно не так с картой.
type ParseError struct {
	Kind ErrorKind
	Char rune       // UnknownChar
	Line string     // InvalidLineWidth
	At   grid.Coord // UnknownTileAt, UnknownChar
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnknownChar:
		return fmt.Sprintf("%v %q at %v", ErrUnknownChar, e.Char, e.At)
	case FewLines:
		return ErrFewLines.Error()
	case InvalidLineWidth:
		return fmt.Sprintf("%v: %q", ErrInvalidLineWidth, e.Line)
	case UnknownTileAt:
		return fmt.Sprintf("%v at %v", ErrUnknownTileAt, e.At)
	}
	return "unknown map parse error"
}

// Is связывает ParseError с sentinel-ошибками.
func (e *ParseError) Is(target error) bool {
	switch e.Kind {
	case UnknownChar:
		return target == ErrUnknownChar
	case FewLines:
		return target == ErrFewLines
	case InvalidLineWidth:
		return target == ErrInvalidLineWidth
	case UnknownTileAt:
		return target == ErrUnknownTileAt
	}
	return false
}
