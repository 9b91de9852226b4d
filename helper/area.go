package helper

import (
	"fsdine_restaurant/constants"
	"strings"
)

// NormalizeTable trims and upper-cases a table identifier so the same
// physical table always yields the same stored value.
func NormalizeTable(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// ResolveArea maps a table identifier to its floor area by its first letter:
// P is the patio, B the bar, anything else the dining room.
func ResolveArea(table string) string {
	table = NormalizeTable(table)

	if strings.HasPrefix(table, "P") {
		return constants.AREA_PATIO
	}
	if strings.HasPrefix(table, "B") {
		return constants.AREA_BAR
	}
	return constants.AREA_DINING
}

// IsValidTableIdentifier is a client-side hint only. Order placement applies
// its own length limit and does not consult this.
func IsValidTableIdentifier(raw string) bool {
	table := NormalizeTable(raw)
	return table != "" && len(table) <= constants.TABLE_IDENTIFIER_MAX_HINT
}
