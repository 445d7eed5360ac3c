// Package ast описывает узлы, которые строит парсер комбинаторов.
// Набор узлов закрыт: Identifier, Value и Attribute.
package ast
