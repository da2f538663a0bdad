// Package timeline превращает разреженный набор построений (Lineup) хореографии
// в позицию каждого участника на любом счёте.
//
// Все функции пакета чистые: без I/O, без общего изменяемого состояния между
// вызовами, поэтому их можно вызывать на каждый кадр рендера. Исключение -
// OrderingGuard, который только принимает решение о записи; саму запись
// выполняет слой хранения.
package timeline
