package export

// Table is the tabular form a recap takes before rendering. Rows are
// positional and must match the header count.
type Table struct {
	Title    string
	Subtitle string
	Headers  []string
	Rows     [][]string
}
