package config

import "strconv"

// ArgNames lists the positional arguments in order.
var ArgNames = [7]string{"max_iters", "x_min", "x_max", "y_min", "y_max", "width", "height"}

// ApplyArgs parses the positional form
// max_iters x_min x_max y_min y_max width height into c. c is left
// untouched when any argument fails to parse.
func (c *Config) ApplyArgs(args [7]string) error {
	maxIters, err := strconv.ParseUint(args[0], 10, 0)
	if err != nil {
		return &ArgError{Name: ArgNames[0], Value: args[0], Wrapped: err}
	}

	var bounds [4]float64
	for i := range bounds {
		bounds[i], err = strconv.ParseFloat(args[i+1], 64)
		if err != nil {
			return &ArgError{Name: ArgNames[i+1], Value: args[i+1], Wrapped: err}
		}
	}

	var dims [2]int
	for i := range dims {
		n, err := strconv.ParseUint(args[i+5], 10, 31)
		if err != nil {
			return &ArgError{Name: ArgNames[i+5], Value: args[i+5], Wrapped: err}
		}
		dims[i] = int(n)
	}

	c.MaxIters = uint(maxIters)
	c.Viewport = ViewportConfig{XMin: bounds[0], XMax: bounds[1], YMin: bounds[2], YMax: bounds[3]}
	c.Width = dims[0]
	c.Height = dims[1]
	return nil
}
