//go:build js && wasm

package main

import (
	"github.com/fp4php/functional-collection/playground"
	"syscall/js"
)

func main() {
	js.Global().Set("CheckAndShowTypes", js.FuncOf(playground.JSCheckAndShowTypes))

	// wait indefinitely so that Go does not terminate execution
	// and the function remains available
	<-make(chan struct{})
}
