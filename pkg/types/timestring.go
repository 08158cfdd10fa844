package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString время в формате "HH:MM" (без даты и секунд)
// Используется для временных слотов бронирования
type TimeString string

const timeStringLayout = "15:04"

var (
	// ErrInvalidFormat возвращается при некорректном формате времени
	ErrInvalidFormat = errors.New("invalid time string format")
)

// NewTimeString создает TimeString из time.Time (отбрасывает дату и секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringLayout))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет, что строка соответствует формату "HH:MM"
// Сравнения TimeString лексикографические, поэтому часы без
// ведущего нуля ("9:30") не допускаются
func (t TimeString) Validate() error {
	s := string(t)
	if len(s) != 5 || s[2] != ':' {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	if _, err := time.Parse(timeStringLayout, s); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return nil
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// ToTime парсит TimeString в time.Time (дата - нулевая)
func (t TimeString) ToTime() (time.Time, error) {
	parsed, err := time.Parse(timeStringLayout, string(t))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}
	return parsed, nil
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед
// Переход через полночь не поддерживается - время обрезается по "23:59"
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := t.ToTime()
	if err != nil {
		return "", err
	}
	shifted := parsed.Add(time.Duration(minutes) * time.Minute)

	// Если перешли на следующий день, считаем это концом суток
	if shifted.Day() != parsed.Day() {
		return TimeString("23:59"), nil
	}

	return NewTimeString(shifted), nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// MinutesUntil возвращает количество минут от t до other
func (t TimeString) MinutesUntil(other TimeString) (int, error) {
	from, err := t.ToTime()
	if err != nil {
		return 0, err
	}
	to, err := other.ToTime()
	if err != nil {
		return 0, err
	}
	return int(to.Sub(from).Minutes()), nil
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД
// Поддерживает string, []byte и time.Time (колонки типа TIME)
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		// Postgres TIME приходит как "10:00:00" - обрезаем секунды
		if len(v) > 5 {
			v = v[:5]
		}
		*t = TimeString(v)
	case []byte:
		s := string(v)
		if len(s) > 5 {
			s = s[:5]
		}
		*t = TimeString(s)
	case time.Time:
		*t = NewTimeString(v)
	case nil:
		*t = ""
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidFormat, src)
	}
	return nil
}
