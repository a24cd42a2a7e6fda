// Package greet holds the greeting the generated project ships as its
// starter functionality.
package greet

// Greet returns a greeting for the given name.
func Greet(name string) string {
	return "Hello, " + name + "!"
}
