// The cachesim command replays address traces against a set-associative
// cache model and reports hit, miss, and eviction statistics.
package main

import "github.com/sarchlab/cachesim/cmd/cachesim/cmd"

func main() {
	cmd.Execute()
}
