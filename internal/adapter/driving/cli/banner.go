package cli

import (
	"fmt"

	"github.com/diillson/catering-analytics-go/pkg/console"
	"github.com/diillson/catering-analytics-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner() {
	banner := `
   ____      _            _               _                _       _   _
  / ___|__ _| |_ ___ _ __(_)_ __   __ _  / \   _ __   __ _| |_   _| |_(_) ___ ___
 | |   / _' | __/ _ \ '__| | '_ \ / _' |/ _ \ | '_ \ / _' | | | | | __| |/ __/ __|
 | |__| (_| | ||  __/ |  | | | | | (_| / ___ \| | | | (_| | | |_| | |_| | (__\__ \
  \____\__,_|\__\___|_|  |_|_| |_|\__, /_/   \_\_| |_|\__,_|_|\__, |\__|_|\___|___/
                                  |___/                       |___/
`
	fmt.Println(console.BrightRed(banner))
	fmt.Println(console.BrightCyan(fmt.Sprintf("Catering Analytics CLI (v%s)", version.FormatVersion())))
}
