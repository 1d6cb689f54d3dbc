// Package cmd contains testing utilities shared between command tests.
// This file provides helpers for isolating the storage root, stubbing the
// key prompt and clipboard, and running the command tree in-process.
package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/enchanted-engineering/zpass/internal/configs"
	logger "github.com/enchanted-engineering/zpass/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// testEnv is an isolated storage root with stubbed terminal hooks.
type testEnv struct {
	root string

	// key is returned by every key prompt.
	key string

	// clipboard holds the last text copied.
	clipboard string

	// prompts counts key prompts.
	prompts int
}

// setupTestEnvironment points the settings at a temporary storage root and
// replaces the key prompt and clipboard with in-memory fakes.
func setupTestEnvironment(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	env := &testEnv{
		root: filepath.Join(t.TempDir(), ".zpass"),
		key:  "correct horse battery staple",
	}

	originalSettings := configs.ZpassSettings
	originalReadKey, originalReadNewKey, originalCopy := readKey, readNewKey, copyToClipboard
	t.Cleanup(func() {
		configs.ZpassSettings = originalSettings
		readKey, readNewKey, copyToClipboard = originalReadKey, originalReadNewKey, originalCopy
	})

	configs.ZpassSettings = &configs.Settings{StorageRoot: env.root, SecretLength: 64}
	readKey = func(prompt string) (string, error) {
		env.prompts++
		return env.key, nil
	}
	readNewKey = func(prompt, confirmPrompt string) (string, error) {
		env.prompts++
		return env.key, nil
	}
	copyToClipboard = func(text string) error {
		env.clipboard = text
		return nil
	}

	return env
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	stdoutChan := make(chan string, 1)
	stderrChan := make(chan string, 1)

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stdoutReader); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		stdoutChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stderrReader); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		stderrChan <- buf.String()
	}()

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	return <-stdoutChan + <-stderrChan, err
}

// resetFlags restores every flag in the tree to its default so a test run
// does not see values parsed by an earlier one.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, child := range c.Commands() {
		resetFlags(child)
	}
}

// createTestCLI builds a fresh root command around the real command groups.
func createTestCLI(args ...string) *cobra.Command {
	verbose = false
	debug = false
	Logger = logger.Logger{}

	rootCmd := &cobra.Command{
		Use:   "zpass",
		Short: "zpass - a deterministic password manager",
	}
	rootCmd.AddCommand(VaultCmd)
	rootCmd.AddCommand(PasswordCmd)
	rootCmd.AddCommand(LogCmd)
	resetFlags(rootCmd)

	rootCmd.SetArgs(args)
	return rootCmd
}

// runCLI executes the command tree with args and returns everything printed.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return captureOutput(func() error {
		return createTestCLI(args...).Execute()
	})
}

// mustRunCLI is runCLI for commands that have to succeed.
func mustRunCLI(t *testing.T, args ...string) string {
	t.Helper()
	output, err := runCLI(t, args...)
	if err != nil {
		t.Fatalf("zpass %v failed: %v\nOutput: %s", args, err, output)
	}
	return output
}
