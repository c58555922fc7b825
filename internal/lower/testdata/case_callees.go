package cases

import (
	"fmt"
	"os"
)

func run() {
	xs := []int{1, 2}
	xs = append(xs, 3)
	fmt.Println(len(xs), xs[1:])
	if len(xs) > 2 {
		os.Exit(1)
	}
	panic("done")
}
