// Package timeline строит почасовую ленту календаря на один день.
//
// Вычисление состоит из трех шагов:
//   - ResolveWorkingHours определяет рабочее окно дня по недельному расписанию;
//   - ExpandRange вычисляет диапазон часов, в который помещаются все записи;
//   - BuildSlots собирает слоты, привязывая к каждому часу запись и признак блокировки.
//
// Все функции чистые: не читают системные часы, не изменяют входные данные
// и для одинаковых входов возвращают одинаковый результат.
package timeline
