package padgui

// Controller icon code points. Console system fonts carry button glyphs in
// the private use area; the embedded Go font does not, so these resolve to
// the fallback glyph unless a font with the icons is configured.
const (
	IconA         rune = '\uE000'
	IconB         rune = '\uE001'
	IconX         rune = '\uE002'
	IconY         rune = '\uE003'
	IconL         rune = '\uE004'
	IconR         rune = '\uE005'
	IconDPad      rune = '\uE006'
	IconDPadUp    rune = '\uE079'
	IconDPadDown  rune = '\uE07A'
	IconDPadLeft  rune = '\uE07B'
	IconDPadRight rune = '\uE07C'
	IconStickL    rune = '\uE081'
	IconStickR    rune = '\uE082'
	IconZL        rune = '\uE085'
	IconZR        rune = '\uE086'
	IconPlus      rune = '\uE045'
	IconMinus     rune = '\uE046'
	IconHome      rune = '\uE073'
	IconPower     rune = '\uE040'
	IconReturn    rune = '\uE056'
)

// Arrow glyphs from the regular Unicode blocks.
const (
	ArrowLeft      rune = '←'
	ArrowRight     rune = '→'
	ArrowUp        rune = '↑'
	ArrowDown      rune = '↓'
	ArrowLeftRight rune = '↔'
	ArrowUpDown    rune = '↕'
	TriangleLeft   rune = '◄'
	TriangleRight  rune = '►'
	TriangleUp     rune = '▲'
	TriangleDown   rune = '▼'
)

// FallbackChar is drawn for characters missing from the atlas.
const FallbackChar rune = '�'

// iconCatalog lists the icons baked into every atlas.
var iconCatalog = []rune{
	IconA, IconB, IconX, IconY, IconL, IconR, IconDPad,
	IconDPadUp, IconDPadDown, IconDPadLeft, IconDPadRight,
	IconStickL, IconStickR, IconZL, IconZR,
	IconPlus, IconMinus, IconHome, IconPower, IconReturn,
	ArrowLeft, ArrowRight, ArrowUp, ArrowDown, ArrowLeftRight, ArrowUpDown,
	TriangleLeft, TriangleRight, TriangleUp, TriangleDown,
}

// DefaultCharset returns the fallback character, printable ASCII and the
// icon catalog.
func DefaultCharset() []rune {
	set := make([]rune, 0, 1+95+len(iconCatalog))
	set = append(set, FallbackChar)
	for r := rune(' '); r <= '~'; r++ {
		set = append(set, r)
	}
	return append(set, iconCatalog...)
}
