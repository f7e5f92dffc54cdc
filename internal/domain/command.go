package domain

// ExecCommand is an external program invocation built by use cases and
// run by a CommandExecutor.
type ExecCommand struct {
	Program string
	Args    []string
}

// OpenURLCommand returns the command that opens url in the default
// browser on the given GOOS.
func OpenURLCommand(goos, url string) *ExecCommand {
	switch goos {
	case "darwin":
		return &ExecCommand{Program: "open", Args: []string{url}}
	case "windows":
		return &ExecCommand{Program: "rundll32", Args: []string{"url.dll,FileProtocolHandler", url}}
	default:
		return &ExecCommand{Program: "xdg-open", Args: []string{url}}
	}
}
