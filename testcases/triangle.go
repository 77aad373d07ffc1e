package testcases

var triangleCases = []TestCase{
	{Name: "general", Width: 64, Height: 64, Op: Triangle{X1: 10, Y1: 50, X2: 32, Y2: 10, X3: 54, Y3: 40}},
	{Name: "flat_top", Width: 64, Height: 64, Op: Triangle{X1: 8, Y1: 56, X2: 56, Y2: 56, X3: 32, Y3: 8}},
	{Name: "flat_bottom", Width: 64, Height: 64, Op: Triangle{X1: 8, Y1: 8, X2: 56, Y2: 8, X3: 32, Y3: 56}},
	{Name: "chain_left", Width: 64, Height: 64, Op: Triangle{X1: 50, Y1: 4, X2: 4, Y2: 30, X3: 40, Y3: 60}},
	{Name: "chain_right", Width: 64, Height: 64, Op: Triangle{X1: 10, Y1: 4, X2: 60, Y2: 30, X3: 20, Y3: 60}},
	{Name: "right_angle", Width: 32, Height: 32, Op: Triangle{X1: 0, Y1: 0, X2: 30, Y2: 0, X3: 30, Y3: 30}},
	{Name: "sliver", Width: 64, Height: 32, Op: Triangle{X1: 2, Y1: 10, X2: 61, Y2: 12, X3: 30, Y3: 11}},
	{Name: "tall_thin", Width: 16, Height: 64, Op: Triangle{X1: 7, Y1: 2, X2: 9, Y2: 61, X3: 8, Y3: 30}},
	{Name: "degenerate_row", Width: 32, Height: 16, Op: Triangle{X1: 2, Y1: 8, X2: 16, Y2: 8, X3: 29, Y3: 8}},
	{Name: "collinear", Width: 32, Height: 32, Op: Triangle{X1: 2, Y1: 2, X2: 16, Y2: 16, X3: 29, Y3: 29}},
}
