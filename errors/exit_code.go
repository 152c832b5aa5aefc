package errors

// Exit codes follow sysexits.h so shell callers can tell bad input from a
// failing disk.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitDataErr  = 65
	ExitSoftware = 70
	ExitIOErr    = 74
)

// ExitCode returns the process exit code for err.
// Returns 0 if err is nil and 1 for errors outside the taxonomy.
func ExitCode(err error) int {
	switch KindOf(err) {
	case "":
		return ExitOK
	case KindParse:
		return ExitDataErr
	case KindRender:
		return ExitSoftware
	case KindIO:
		return ExitIOErr
	default:
		return ExitFailure
	}
}
