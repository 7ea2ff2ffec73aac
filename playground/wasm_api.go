//go:build js && wasm

package playground

import (
	"fmt"
	"syscall/js"
)

// JSCheckAndShowTypes exposes CheckAndShowTypes to javascript
func JSCheckAndShowTypes(_ js.Value, args []js.Value) (ret any) {
	defer func() {
		if r := recover(); r != nil {
			ret = "analyzer panicked: " + fmt.Sprint(r)
		}
	}()
	if len(args) < 1 {
		return "no program given"
	}
	return CheckAndShowTypes(args[0].String())
}
