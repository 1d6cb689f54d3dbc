package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	kerrors "github.com/enchanted-engineering/zpass/internal/errors"
	"github.com/enchanted-engineering/zpass/internal/ui"
	"github.com/enchanted-engineering/zpass/internal/utils"

	"github.com/briandowns/spinner"
)

// Terminal and clipboard hooks, swapped out by tests.
var (
	readKey         = utils.ReadKey
	readNewKey      = utils.ReadNewKey
	copyToClipboard = utils.CopyToClipboard
)

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// spinner.FinalMSG values do not need trailing newlines; cleanup adds one
// before printing the message to stdout.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	quiet := !verbose && !debug
	if quiet {
		s.Start()
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if quiet {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			s.FinalMSG = ""
		}

		if quiet {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// formatError renders err for the user. The second result is true for
// errors that are not a plain consequence of user input; those also make
// the command exit non-zero.
func formatError(err error) (string, bool) {
	switch {
	case errors.Is(err, kerrors.ErrNoDefaultVault):
		return ui.Failed("No vault has been created yet") + "\n" +
			ui.Hint("Run "+ui.Code.Sprint("zpass vault add -n <name>")+" first"), false

	case errors.Is(err, kerrors.ErrVaultNotFound):
		return ui.Failed("Vault not found: "+err.Error()) + "\n" +
			ui.Hint("Run "+ui.Code.Sprint("zpass vault list")+" to see your vaults"), false

	case errors.Is(err, kerrors.ErrVaultAlreadyExists):
		return ui.Failed("A vault with that name already exists"), false

	case errors.Is(err, kerrors.ErrInvalidVaultName):
		return ui.Failed("Invalid vault name: " + err.Error()), false

	case errors.Is(err, kerrors.ErrPreferenceExists):
		return ui.Failed("A password is already stored for that domain and username"), false

	case errors.Is(err, kerrors.ErrNoMatchingPreference):
		return ui.Failed("No password is stored for that domain") + "\n" +
			ui.Hint("Run "+ui.Code.Sprint("zpass password add -d <domain> -l <length>")+" first"), false

	case errors.Is(err, kerrors.ErrNoMatchingPreferenceFound):
		return ui.Failed("No password is stored for that domain and username"), false

	case errors.Is(err, kerrors.ErrInvalidLength):
		return ui.Failed(capitalize(kerrors.ErrInvalidLength.Error())), false

	case errors.Is(err, kerrors.ErrInvalidDomain):
		return ui.Failed(capitalize(kerrors.ErrInvalidDomain.Error())), false

	case errors.Is(err, kerrors.ErrInvalidDateFormat),
		errors.Is(err, kerrors.ErrKeyRequired),
		errors.Is(err, utils.ErrKeyMismatch):
		return ui.Failed(capitalize(err.Error())), false

	case errors.Is(err, kerrors.ErrDecryptionFailed):
		return ui.Failed("Could not unlock the vault") + "\n" +
			ui.Hint("Check that the key is correct"), false

	case errors.Is(err, kerrors.ErrPersistenceFailed):
		return ui.Failed("Failed to read or write vault files") + "\n" +
			"Error: " + ui.Error.Sprint(err.Error()), true

	default:
		return ui.Failed("Unexpected error") + "\n" +
			"Error: " + ui.Error.Sprint(err.Error()), true
	}
}

// finishWithError sets the spinner's final message for err and returns the
// error cobra should see.
func finishWithError(s *spinner.Spinner, err error) error {
	msg, unexpected := formatError(err)
	s.FinalMSG = msg
	if unexpected {
		return err
	}
	Logger.Debugf("Command failed: %v", err)
	return nil
}

// reportError prints err for failures that happen before a spinner is
// running and returns the error cobra should see.
func reportError(err error) error {
	msg, unexpected := formatError(err)
	fmt.Println(msg)
	if unexpected {
		return err
	}
	Logger.Debugf("Command failed: %v", err)
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
