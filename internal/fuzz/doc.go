// Package fuzztests houses Go fuzz harnesses for the source -> lexer -> chain
// pipeline. Its goal is to smoke test robustness and guard against panics or
// hangs on arbitrary inputs.
//
// Назначение: загружать байты в FileSet, прогонять их через лексер и цепочки
// комбинаторов, проверять инварианты спанов из testkit.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.

package fuzztests
