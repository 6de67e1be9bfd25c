package transcript

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"slices"
	"strings"
	"time"
)

// NewProcess creates an Extractor that runs command with args, followed by
// the video ID as the final argument. The command is executed directly, not
// through a shell.
func NewProcess(command string, args ...string) Process {
	return Process{
		Command:   command,
		Args:      args,
		WaitDelay: time.Second,
	}
}

type Process struct {
	Command string
	Args    []string
	// WaitDelay bounds how long to wait for output pipes to close after the
	// process has been killed.
	WaitDelay time.Duration
}

func (p Process) Extract(ctx context.Context, videoID string) (text string, err error) {
	cmd := exec.CommandContext(ctx, p.Command, append(slices.Clone(p.Args), videoID)...)
	cmd.WaitDelay = p.WaitDelay
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err = cmd.Run()
	if ctxErr := contextError(ctx); ctxErr != nil {
		return "", ctxErr
	}
	if err != nil {
		return "", &ExtractionError{
			Command: p.Command,
			Stderr:  strings.TrimSpace(stderr.String()),
			Err:     err,
		}
	}
	return strings.TrimSpace(stdout.String()), nil
}

func (p Process) String() string {
	return fmt.Sprintf("process(%s)", strings.Join(append([]string{p.Command}, p.Args...), " "))
}
