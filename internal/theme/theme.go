package theme

// Theme aggregates the color, icon and style tables.
type Theme struct {
	Colors *ColorMap
	Icons  *IconMap
	Styles *StyleMap
}

// New builds a Theme from three name to value tables. Nil tables are treated as empty.
func New(colors, icons, styles map[string]string) *Theme {
	return &Theme{
		Colors: NewColorMap(colors),
		Icons:  NewIconMap(icons),
		Styles: NewStyleMap(styles),
	}
}

// Default returns a Theme populated with the built-in tables.
func Default() *Theme {
	return New(DefaultColors, DefaultIcons, DefaultStyles)
}

// WithStyle returns the style registered under name. Names that are not in the
// style table are parsed as raw descriptors, so WithStyle("red//b") works too.
func (t *Theme) WithStyle(name string) Style {
	if t.Styles.Has(name) {
		return ParseStyle(t.Styles.Resolve(name))
	}
	return ParseStyle(name)
}

// Icon resolves an icon name to its glyph.
func (t *Theme) Icon(name string) string {
	return t.Icons.Resolve(name)
}

// Color resolves a color name to its concrete value.
func (t *Theme) Color(name string) string {
	return t.Colors.Resolve(name)
}

// Merge overlays the given tables onto the theme.
func (t *Theme) Merge(colors, icons, styles map[string]string) {
	t.Colors.Merge(colors)
	t.Icons.Merge(icons)
	t.Styles.Merge(styles)
}
