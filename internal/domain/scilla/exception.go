package scilla

import "fmt"

// ExceptionMessage is the message the interpreter reports when a transition
// throws the conventional error exception with the given code.
func ExceptionMessage(code int) string {
	return fmt.Sprintf(`Exception thrown: (Message [(_exception : (String "Error")) ; (code : (Int32 %d))])`, code)
}
