package clean

import "fmt"

func fib(n int) int {
	a, b := 0, 1
	for i := 0; i < n; i++ {
		a, b = b, a+b
	}
	return a
}

func mid(lo, hi int) int {
	return lo + (hi-lo)/2
}

func main() {
	fmt.Println(fib(10))
}
