package main

// VersionCommand prints the version.
type VersionCommand struct {
	Meta
}

func (c *VersionCommand) Help() string     { return "Usage: hydrocorrect version" }
func (c *VersionCommand) Synopsis() string { return "Prints the hydrocorrect version" }

func (c *VersionCommand) Run(args []string) int {
	c.Ui.Output("hydrocorrect v" + Version)
	return 0
}
