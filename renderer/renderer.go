// Package renderer turns finplan report structs into markdown documents.
package renderer

import "fmt"

// row converts values that already know how to print themselves into a
// table row.
func row(cells ...any) []string {
	out := make([]string, 0, len(cells))
	for _, c := range cells {
		out = append(out, fmt.Sprint(c))
	}
	return out
}
