// Command pubfolio serves, lists, checks and scaffolds markdown blog sites.
package main

// version is set at build time via ldflags.
var version = "dev"

func main() {
	Execute()
}
