// Package gridfile reads, writes, renders and generates integer grids in the
// plain-text tripods format:
//
//	3 3
//	1 2 3
//	4 5 6
//	7 8 9
//
// The header holds the row count and, optionally, the column count. When the
// column count is omitted it is taken from the first data row. Values are
// separated by any run of whitespace.
package gridfile
