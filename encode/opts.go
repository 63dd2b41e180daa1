package encode

type EncodeOption func(*EncState)

// Depth sets the starting indent level. The trailing newline is only
// emitted when encoding starts (and therefore ends) at depth 0.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

// Indent sets the string repeated per indent level, default "\t".
func Indent(s string) EncodeOption {
	return func(es *EncState) { es.indent = s }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
