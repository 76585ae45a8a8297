package main

// CLI defines the command-line surface for Kong. The tool normally
// takes no arguments and sweeps the tree it is installed in; Root
// exists so tests can point a run at a temporary tree.
type CLI struct {
	Root string `help:"Documentation root to sweep. Defaults to the parent of the executable's directory."`
}
