package cmd

import (
	"errors"
	"fmt"
	"os"
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errSessionsFailed) {
			// Session failures were already summarized; exit plainly.
			_, _ = fmt.Fprintln(os.Stderr, err.Error())
			exitFunc(1)
			return
		}
		_, _ = fmt.Fprintln(os.Stderr, err)
		exitFunc(1)
		return
	}
}
