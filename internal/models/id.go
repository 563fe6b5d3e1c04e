package models

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const classCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateID produces a prefixed identifier for rows created server side,
// e.g. "student_lx3k2a_9f41". Clients may supply their own ids instead.
func GenerateID(prefix string) string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:4]
	return prefix + "_" + ts + "_" + random
}

// GenerateClassCode produces a short class code such as "C1A2B". Class codes
// are printed on schedules so they stay short and upper case.
func GenerateClassCode() string {
	id := uuid.New()
	code := make([]byte, 5)
	for i := range code {
		code[i] = classCodeAlphabet[int(id[i])%len(classCodeAlphabet)]
	}
	return "C" + string(code)
}
