package assets

import "loot-grid/internal/catalog"

// Emoji glyphs for the default loot list. Icon paths name the artwork a
// graphical front end would load; the terminal view draws the glyph.
const (
	GlyphPartyPotion = "🍾"
	GlyphDragonScale = "🐉"
	GlyphTowerBell   = "🔔"
	GlyphTradeWeight = "🪨"
)

// Loot is the default catalog shipped with the binary. Position in the slice
// is the item's identifier.
var Loot = []catalog.Record{
	{
		Name:        "Party potion",
		Icon:        "wine-bottle.svg",
		Glyph:       GlyphPartyPotion,
		Description: "Ooh, fancy. A tasty way to celebrate victories and become an easy target for the victories of others.",
		Volume:      10,
		Mass:        50,
	},
	{
		Name:        "Fairy dragon scale",
		Icon:        "dragon.svg",
		Glyph:       GlyphDragonScale,
		Description: "Have you ever seen a fairy dragon? Its shimmering scale is super light!",
		Volume:      531,
		Mass:        200,
	},
	{
		Name:        "Small tower bell",
		Icon:        "bell.svg",
		Glyph:       GlyphTowerBell,
		Description: "This tower bell is relatively small, but still difficult to carry.",
		Volume:      768,
		Mass:        4729,
	},
	{
		Name:        "Trade weight",
		Icon:        "weight-hanging.svg",
		Glyph:       GlyphTradeWeight,
		Description: "An object of known mass to be used with a weighing scale.",
		Volume:      4,
		Mass:        100,
	},
}
