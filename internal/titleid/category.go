package titleid

// UnknownCategoryLabel is shown for category codes outside the known table.
const UnknownCategoryLabel = "Error"

// categoryLabelWidth is the column width of the pretty category label.
const categoryLabelWidth = 19

var categoryLabels = map[uint32]string{
	0x00000001: "SYSTEM ESSENTIAL",
	0x00000007: "vWII ESSENTIAL",
	0x00010000: "DISC-BASED GAME",
	0x00010001: "DOWNLOADED CHANNEL",
	0x00010002: "SYSTEM CHANNEL",
	0x00070002: "vWII SYSTEM CHANNEL",
	0x00010004: "GAME CHANNEL",
	0x00010005: "GAME DLC",
	0x00010008: "HIDDEN CHANNEL",
	0x00070008: "vWII HIDDEN",
}

var categoryOrder = []uint32{
	0x00000001,
	0x00000007,
	0x00010000,
	0x00010001,
	0x00010002,
	0x00070002,
	0x00010004,
	0x00010005,
	0x00010008,
	0x00070008,
}

// CategoryInfo pairs a known category code with its label.
type CategoryInfo struct {
	Code  uint32
	Label string
}

// Category returns the high 32 bits of a title identifier.
func Category(titleID uint64) uint32 {
	return uint32(titleID >> 32)
}

// Code returns the low 32 bits of a title identifier.
func Code(titleID uint64) uint32 {
	return uint32(titleID)
}

// CategoryLabel returns the label for a category code, or UnknownCategoryLabel.
func CategoryLabel(category uint32) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}
	return UnknownCategoryLabel
}

// Categories lists the known categories in table order.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, 0, len(categoryOrder))
	for _, code := range categoryOrder {
		out = append(out, CategoryInfo{Code: code, Label: categoryLabels[code]})
	}
	return out
}
