package lowering

type point struct{ x, y int }

func (p point) sum() int { return p.x + p.y } // want `JSL020: UnsupportedDeclaration: method sum is not lowered`

func pair() (int, int) { return 1, 2 }

func work(ch chan int) {
	go work(ch) // want `JSL000: UnsupportedStatement: go statement is not lowered`
	defer close(ch) // want `JSL000: UnsupportedStatement: defer statement is not lowered`
	for v := range ch { // want `JSL040: UnsupportedLoop: range loop is not lowered`
		_ = v
	}
	a, b := pair() // want `JSL030: MultiValueAssignment: assignment from a multi-value expression is not lowered`
	_, _ = a, b
	ch <- 1 // want `JSL000: UnsupportedStatement: channel send is not lowered`
	p := &point{} // want `JSL010: UnsupportedExpression: composite literal is not lowered`
	_ = p
}
