package machine

// Double precision machine parameters for IEEE 754 arithmetic, the role the
// dpmpar table plays in MINPACK. Precision is b**(1-t), Dwarf the smallest
// normal magnitude b**(emin-1), Giant the largest magnitude b**emax*(1-b**-t).
const (
	Precision float64 = 2.220446049250313e-16
	Dwarf     float64 = 2.2250738585072014e-308
	Giant     float64 = 1.7976931348623157e+308
)
