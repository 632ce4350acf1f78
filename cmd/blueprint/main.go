// blueprint turns user-story acceptance criteria into structured,
// policy-compliant test-case drafts.
//
// Usage:
//
//	blueprint generate story.yaml [-o suite.json] [--csv suite.csv] [--strict]
//	blueprint validate suite.json --ac-count=<n>
//	blueprint export suite.json --csv out.csv [--objectives out.txt]
//	blueprint fetch <work-item-id> [-o story.yaml]
//	blueprint serve [--metrics-addr :9107]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
