package cases

var limit = 10

func split(n int) (head, tail int, ok bool) {
	if n > limit {
		return
	}
	head, tail, ok = n/2, n-n/2, true
	return
}
