package mkuuid

import (
	"fmt"
	"strings"
)

// formatGUID renders the fields of a Windows GUID in the lowercase form
// produced by UuidToStringA.
func formatGUID(data1 uint32, data2, data3 uint16, data4 [8]byte) string {
	return fmt.Sprintf("%08x-%04x-%04x-%02x%02x-%02x%02x%02x%02x%02x%02x",
		data1, data2, data3,
		data4[0], data4[1],
		data4[2], data4[3], data4[4], data4[5], data4[6], data4[7])
}

// parseUUIDGen extracts the UUID printed by uuidgen. CFUUIDCreateString
// renders uppercase, and so does the result.
func parseUUIDGen(output string) (string, error) {
	value := strings.ToUpper(strings.TrimSpace(output))
	if !isCanonical(value) {
		return "", &MalformedError{Value: value}
	}

	return value, nil
}
