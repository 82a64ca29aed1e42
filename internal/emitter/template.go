package emitter

import (
	"fmt"
	"strings"
)

// Slot tokens recognized in the two templates.
const (
	SlotFromPrior          = "{FROM_PRIOR}"
	SlotPerturb            = "{PERTURB}"
	SlotLogLikelihood      = "{LOG_LIKELIHOOD}"
	SlotPrint              = "{PRINT}"
	SlotDescription        = "{DESCRIPTION}"
	SlotDeclarations       = "{DECLARATIONS}"
	SlotStaticDeclarations = "{STATIC_DECLARATIONS}"
	SlotInitializerList    = "{INITIALIZER_LIST}"
)

// substituteSlot replaces a slot token that must appear exactly once in the
// template. Zero or multiple occurrences are template defects and fail the
// run.
func substituteSlot(template, token, replacement string) (string, error) {
	switch n := strings.Count(template, token); {
	case n == 0:
		return "", fmt.Errorf("template is missing slot %s", token)
	case n > 1:
		return "", fmt.Errorf("template contains slot %s %d times, want exactly one", token, n)
	}
	return strings.Replace(template, token, replacement, 1), nil
}

// indentBody prefixes every line of a pass body with four spaces, matching
// the method-body indentation of the source template. The result carries no
// trailing newline so it can sit on the slot's own line.
func indentBody(body string) string {
	lines := strings.Split(strings.TrimSuffix(body, "\n"), "\n")
	for i, line := range lines {
		lines[i] = "    " + line
	}
	return strings.Join(lines, "\n")
}
