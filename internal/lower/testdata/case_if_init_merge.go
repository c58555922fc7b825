package cases

func order(a, b int) int {
	if a, b = b, a; a < b {
		return a
	}
	if a, b = b, a; a > b {
		return b
	}
	return 0
}
