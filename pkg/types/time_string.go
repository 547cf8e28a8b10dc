package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidTimeFormat возвращается, когда строка не соответствует формату HH:MM
	ErrInvalidTimeFormat = errors.New("types: invalid time format, expected HH:MM")

	// ErrTimeOutOfRange возвращается, когда часы или минуты вне допустимого диапазона
	ErrTimeOutOfRange = errors.New("types: time out of range")
)

// TimeString время суток в формате "HH:MM" (например, "09:30")
type TimeString string

// NewTimeStringFromString парсит и валидирует строку "HH:MM"
// Допускается одна цифра в часах ("9:00"), результат нормализуется до "09:00"
func NewTimeStringFromString(s string) (TimeString, error) {
	hour, minute, err := parse(strings.TrimSpace(s))
	if err != nil {
		return "", err
	}
	return TimeString(fmt.Sprintf("%02d:%02d", hour, minute)), nil
}

// Hour возвращает часы (0-23). Для некорректного значения возвращает 0
func (t TimeString) Hour() int {
	hour, _, _ := parse(string(t))
	return hour
}

func (t TimeString) String() string {
	return string(t)
}

func parse(s string) (int, int, error) {
	hourPart, minutePart, ok := strings.Cut(s, ":")
	if !ok || len(hourPart) == 0 || len(hourPart) > 2 || len(minutePart) != 2 ||
		!isDigits(hourPart) || !isDigits(minutePart) {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	minute, err := strconv.Atoi(minutePart)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrTimeOutOfRange, s)
	}

	return hour, minute, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
