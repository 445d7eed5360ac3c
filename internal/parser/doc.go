// Package parser реализует курсор над токенами (Stream) и алгебру комбинаторов:
// Consumer, Yielder и Sequence. Разбор однопроходный, без отката: первая ошибка
// прерывает весь TryParse, а уже потреблённые токены остаются потреблёнными.
package parser
