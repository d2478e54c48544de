package employee

import (
	"strings"

	"shiftservice/internal/entities"
)

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidRole(role string) bool {
	switch role {
	case "driver", "assistant", "escort":
		return true
	default:
		return false
	}
}

// Сопровождающий всегда работает в паре с водителем.
func hasRequiredPairing(role entities.EmployeeRoleType, pairedEmployeeID *int64) bool {
	return role != entities.RoleEscort || pairedEmployeeID != nil
}
