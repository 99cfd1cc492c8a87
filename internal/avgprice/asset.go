package avgprice

// Asset identifies what a profile tracks and how many decimal places
// a computed average cost is rounded to, e.g. ("BTC", 8) or ("NVDA", 2).
type Asset struct {
	Name      string
	Precision int32
}
