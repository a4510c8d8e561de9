package titleid

import (
	"fmt"

	"wiiuid/internal/uidsys"
)

// Title holds every display field derived from a record.
type Title struct {
	InstallIndex  int    `json:"install_index"`
	InstallSlot   uint16 `json:"install_slot"`
	TitleID       string `json:"title_id"`
	Category      string `json:"category"`
	CategoryLabel string `json:"category_label,omitempty"`
	Code          string `json:"code"`
	CodeHex       string `json:"code_hex"`
	Name          string `json:"name,omitempty"`
}

// Describe derives the display fields of rec. Name is empty when lookup is nil.
func Describe(rec uidsys.TitleRecord, lookup Lookup) Title {
	category := Category(rec.TitleID)
	code := Code(rec.TitleID)
	return Title{
		InstallIndex:  InstallIndex(rec.InstallSlot),
		InstallSlot:   rec.InstallSlot,
		TitleID:       fmt.Sprintf("%016X", rec.TitleID),
		Category:      HexHalf(category),
		CategoryLabel: CategoryLabel(category),
		Code:          CodeString(code),
		CodeHex:       HexHalf(code),
		Name:          ResolveName(code, lookup),
	}
}

// FormatLine renders one listing line for rec. The category label is only
// computed when pretty is set.
func FormatLine(rec uidsys.TitleRecord, pretty bool, lookup Lookup) string {
	category := Category(rec.TitleID)
	code := Code(rec.TitleID)
	index := InstallIndex(rec.InstallSlot)
	suffix := NameSuffix(code, lookup)

	if pretty {
		return fmt.Sprintf("%d: %-*s%s-%s (%s)%s",
			index, categoryLabelWidth, CategoryLabel(category),
			HexHalf(category), HexHalf(code), CodeString(code), suffix)
	}
	return fmt.Sprintf("%d: %s-%s (%s)%s",
		index, HexHalf(category), HexHalf(code), CodeString(code), suffix)
}
