package display

import (
	"fmt"
	"os"

	"github.com/backmassage/mkvtrim/internal/term"
)

// PrintBanner prints the ASCII art banner; styled magenta when colors are
// enabled.
func PrintBanner() {
	banner := ` __  __ _           _____     _
|  \/  | | ____   _|_   _| __(_)_ __ ___
| |\/| | |/ /\ \ / / | || '__| | '_ ` + "`" + ` _ \
| |  | |   <  \ V /  | || |  | | | | | | |
|_|  |_|_|\_\  \_/   |_||_|  |_|_| |_| |_|
`
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.Magenta.Render(banner))
		return
	}
	fmt.Fprint(os.Stdout, banner)
}
