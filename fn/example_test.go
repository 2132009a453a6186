package fn_test

import (
	"fmt"
	"strings"

	"github.com/hasbyte1/roster/fn"
)

func ExampleOnce() {
	initialise := fn.Once(func(...any) string {
		fmt.Println("initialising")
		return "ready"
	})
	fmt.Println(initialise())
	fmt.Println(initialise())
	// Output:
	// initialising
	// ready
	// ready
}

func ExamplePipe() {
	shout := fn.Pipe(strings.TrimSpace, strings.ToUpper, func(s string) string { return s + "!" })
	fmt.Println(shout("  hello "))
	// Output: HELLO!
}

func ExampleMethod() {
	hello := fn.Method[string]("Hello")
	msg, _ := hello(dog{Name: "Fluffy"})
	fmt.Println(msg)
	// Output: bark, bark, Fluffy
}
