package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"

	"github.com/elseano/loading/pkg/loading"
)

var (
	ErrorInternal = errors.New("Internal loading error")
	ErrorArg      = errors.New("Invalid options provided")
	ErrorCommand  = errors.New("Command failed")
)

// handleError prints err and reduces it to one of the sentinels above, which
// main turns into an exit code.
func handleError(dest io.Writer, err error) error {
	if err == nil {
		return nil
	}

	var configErr *loading.ConfigurationError

	switch {
	case errors.Is(err, ErrorCommand):
		return ErrorCommand

	case errors.As(err, &configErr):
		fmt.Fprintf(dest, "\n%s - %s: %s\n\n", aurora.Red("Invalid option"), configErr.Field, configErr.Err)
		return ErrorArg

	case errors.Is(err, ErrorArg):
		fmt.Fprintf(dest, "\n%s: %s\n\n", aurora.Red("Error"), err)
		return ErrorArg
	}

	fmt.Fprintf(dest, "\n%s: %s\n\n", aurora.Red("Error"), err)

	return ErrorInternal
}
