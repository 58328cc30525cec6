//go:build !unix

package xcmd

import "os"

func defaultSignals() []os.Signal {
	return []os.Signal{os.Interrupt}
}
