package cases

func shadow(x int) int {
	y := x
	if x > 0 {
		y := y + 1
		x := y
		return x
	}
	console := y
	println(console)
	return y
}
