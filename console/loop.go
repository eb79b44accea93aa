package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/go-tron/ekart-trace/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	Prompt           = "\nEnter Tracking ID or type 'exit' to quit: "
	FarewellMessage  = "\nThank you for using our tracker. Goodbye!"
	InvalidMessage   = "Invalid input. Please enter a valid tracking ID."
	CancelledMessage = "\nOperation cancelled. Exiting..."
	CleanupMessage   = "Performing cleanup operations..."
)

// Loop prompts for tracking ids until the operator types exit, input ends or
// ctx is cancelled.
type Loop struct {
	In        io.Reader
	Out       io.Writer
	Presenter *Presenter
}

func (l *Loop) Run(ctx context.Context) {
	defer fmt.Fprintln(l.Out, CleanupMessage)

	readCtx, stop := context.WithCancel(ctx)
	defer stop()
	lines := readLines(readCtx, l.In)

	for {
		fmt.Fprint(l.Out, Prompt)

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(l.Out, CancelledMessage)
			return
		case s, ok := <-lines:
			if !ok {
				fmt.Fprintln(l.Out, CancelledMessage)
				return
			}
			line = s
		}

		if strings.EqualFold(line, "exit") {
			fmt.Fprintln(l.Out, FarewellMessage)
			return
		}
		if strings.TrimSpace(line) == "" {
			fmt.Fprintln(l.Out, InvalidMessage)
			continue
		}

		l.Presenter.Present(logger.WithFields(ctx, zap.String("lookup_id", uuid.NewString())), line)
		if ctx.Err() != nil {
			fmt.Fprintln(l.Out, CancelledMessage)
			return
		}
	}
}

// readLines delivers r line by line without the line terminator. The channel
// is closed at end of input.
func readLines(ctx context.Context, r io.Reader) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		br := bufio.NewReader(r)
		for {
			line, err := br.ReadString('\n')
			if line != "" {
				line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
				select {
				case ch <- line:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				return
			}
		}
	}()
	return ch
}
