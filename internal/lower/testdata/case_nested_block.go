package cases

func diff(a, b int) int {
	{
		a, b = b, a
	}
	return a - b
}
