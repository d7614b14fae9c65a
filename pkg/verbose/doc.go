package verbose

import (
	"github.com/jamespreed/verbosify/internal/textutil"
)

// optionBlock is appended to every synthesized documentation text so help
// tooling reading the wrapper sees the added flag.
const optionBlock = "Option:\n" +
	"-------\n" +
	"verbose : bool\n" +
	"    Turns on/off print lines in the function."

// synthesizeDoc normalizes the target's documentation and appends the
// verbose option block. With no original documentation, the block stands
// alone.
func synthesizeDoc(doc string) string {
	cleaned := textutil.Cleandoc(doc)
	if cleaned == "" {
		return optionBlock
	}
	return cleaned + "\n\n" + optionBlock
}
