package main

import (
	"fmt"
	"linked-list/internal/platform"
	"linked-list/internal/platform/helper"
)

func main() {
	fmt.Println("Hello, world!")

	l := platform.NewStringList()
	for _, v := range []string{"a", "b"} {
		n := l.Unshift(v)
		fmt.Printf("unshift %q -> %d\n", v, n)
	}

	for {
		v, ok := l.Shift()
		if !ok {
			fmt.Println("shift -> none")
			break
		}
		fmt.Printf("shift -> %q\n", v)
	}

	helper.Log.Debugf("done, length %d", l.Len())
}
