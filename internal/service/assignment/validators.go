package assignment

func isValidRoleInShift(role string) bool {
	switch role {
	case "driver", "assistant", "escort":
		return true
	default:
		return false
	}
}
