package cases

func swap(a, b int) (int, int) {
	a, b = b, a
	return a, b
}
