package cases

func halves(n int, f float64) (int, float64) {
	q := n / 2
	q /= 3
	f /= 4
	return q + 7/2, f / 2
}
