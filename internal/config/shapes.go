package config

// BuiltinShapes returns the standard shape table for the default 5x7 block
// grid, ids running row-major:
//
//	 0  1  2  3  4
//	 5  6  7  8  9
//	10 11 12 13 14
//	15 16 17 18 19
//	20 21 22 23 24
//	25 26 27 28 29
//	30 31 32 33 34
func BuiltinShapes() map[string][]int {
	return map[string][]int{
		"circle":               {7, 11, 12, 13, 16, 17, 18, 21, 22, 23, 27},
		"filled_square":        {11, 12, 13, 16, 17, 18, 21, 22, 23},
		"hollow_square":        {11, 12, 13, 16, 18, 21, 22, 23},
		"cross":                {7, 12, 16, 17, 18, 22, 27},
		"x_shape":              {7, 9, 11, 13, 17, 21, 23, 25, 27},
		"h_shape":              {11, 13, 16, 17, 18, 21, 23},
		"arrow_up":             {6, 7, 8, 12, 17, 22, 27},
		"arrow_down":           {7, 12, 17, 22, 26, 27, 28},
		"horizontal_line":      {15, 16, 17, 18, 19},
		"vertical_line":        {2, 7, 12, 17, 22, 27, 32},
		"hollow_square_left":   {21, 22, 23, 26, 28, 31, 32, 33},
		"hollow_square_right":  {1, 2, 3, 6, 8, 11, 12, 13},
		"double_hollow_square": {1, 2, 3, 6, 8, 11, 12, 13, 21, 22, 23, 26, 28, 31, 32, 33},
		"none":                 {},
	}
}
