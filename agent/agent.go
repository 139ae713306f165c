// Package agent implements the `fin assist` conversation: a facilitator
// model routes the user's planning questions to experts exposed as Gemini
// function calls, and the Analyst expert answers from the plan through the
// report renderers.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent drives one interactive session: the facilitator in front, the
// experts behind it as tools.
type Agent struct {
	out         io.Writer
	in          *bufio.Reader
	Facilitator *Expert
	Experts     []*Expert
}

// New creates an agent over the given experts, writing to w and reading the
// user's questions from r.
func New(w io.Writer, r io.Reader, experts ...*Expert) *Agent {
	return &Agent{
		out:         w,
		in:          bufio.NewReader(r),
		Experts:     experts,
		Facilitator: newFacilitator(experts...),
	}
}

// Start opens all the Gemini chats, experts first so the facilitator can
// call them from its very first turn.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	for _, e := range a.Experts {
		if err := e.Start(ctx, client); err != nil {
			return err
		}
	}
	return a.Facilitator.Start(ctx, client)
}

const prompt = "assist> "

// Run reads questions until "bye" or end of input, asking the facilitator
// each one. Initial prompts given on the command line are consumed before
// reading from the terminal.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.Facilitator.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}
	fmt.Fprintln(a.out, "Welcome to fin planning assist. Type 'bye' to exit.")
	for {
		input, ok, err := a.next(&prompts)
		if err != nil {
			return err
		}
		if !ok || input == "bye" {
			return nil
		}
		if input == "" {
			continue
		}
		answer, err := a.Facilitator.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, answer.Parts[0].Text)
	}
}

// next pops the pending command-line prompts first, echoing them as if
// typed, then reads a line from the terminal. ok is false on a clean end of
// input (Ctrl+D).
func (a *Agent) next(pending *[]string) (input string, ok bool, err error) {
	fmt.Fprint(a.out, prompt)
	if len(*pending) > 0 {
		input, *pending = strings.TrimSpace((*pending)[0]), (*pending)[1:]
		fmt.Fprintln(a.out, input)
		return input, true, nil
	}
	line, err := a.in.ReadString('\n')
	if err == io.EOF {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return strings.TrimSpace(line), true, nil
}
