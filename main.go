// Command stixkit is a CLI for inspecting STIX 2.1 bundles and validating
// indicator patterns.
package main

import "stixkit/cmd"

func main() {
	cmd.Execute()
}
