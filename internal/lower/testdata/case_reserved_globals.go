package cases

import "os"

var console = "log"

func Error(code int) int {
	return code
}

func fail(code int) {
	println(console)
	os.Exit(Error(code))
}
