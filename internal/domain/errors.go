package domain

import "errors"

// ErrInvalidWorkingHours возвращается при некорректной конфигурации рабочих часов
var ErrInvalidWorkingHours = errors.New("domain: invalid working hours")
