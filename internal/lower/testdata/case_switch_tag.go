package cases

func classify(x int) string {
	switch x + 1 {
	case 1, 2:
		return "small"
	case 3:
		return "three"
	default:
		return "big"
	}
}
