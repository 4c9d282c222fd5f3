package board

import "github.com/mcoot/wordtiles/internal/model"

// BonusStyle is how a bonus square is drawn
type BonusStyle struct {
	Label string `json:"label"` // Short marker shown on an empty cell
	Name  string `json:"name"`
	Color string `json:"color"` // Hex background colour
}

var bonusStyles = map[model.BonusKind]BonusStyle{
	model.BonusNone:         {Label: "", Name: "", Color: "#e6e6e6"},
	model.BonusDoubleLetter: {Label: "DL", Name: "Double Letter", Color: "#80b3ff"},
	model.BonusTripleLetter: {Label: "TL", Name: "Triple Letter", Color: "#0080ff"},
	model.BonusDoubleWord:   {Label: "DW", Name: "Double Word", Color: "#ffb3b3"},
	model.BonusTripleWord:   {Label: "TW", Name: "Triple Word", Color: "#ff4d4d"},
}

// StyleFor returns the drawing style for a bonus
func StyleFor(kind model.BonusKind) BonusStyle {
	if style, ok := bonusStyles[kind]; ok {
		return style
	}
	return bonusStyles[model.BonusNone]
}
