// Command isolationd runs a demonstration server guarded by the
// resource-isolation middleware.
package main

import "github.com/jub0bs/isolation/internal/cli"

func main() {
	cli.Execute()
}
