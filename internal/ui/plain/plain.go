package plain

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"quizdeck/internal/quiz"
	"quizdeck/internal/ui/action"
)

// Options configures the plain prompt.
type Options struct {
	Title string
}

const helpText = `Commands:
  a | b,c      select options (letters or 1-4; multi answer questions toggle)
  check        check the current answer
  next | prev  move between questions
  goto N       jump to question N
  submit       score the attempt (from the last question)
  retake       start over
  quit         leave`

// Run reads commands from in and prints the session to out until quit,
// end of input or ctx is done.
func Run(ctx context.Context, session *quiz.Session, in io.Reader, out io.Writer, opts Options) error {
	p := prompt{session: session, out: out, title: opts.Title}
	p.printQuestion()

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		actions, err := action.Parse(scanner.Text())
		if err != nil {
			fmt.Fprintf(out, "%v (type help for commands)\n", err)
			continue
		}
		if p.apply(actions) {
			return nil
		}
	}
}

type prompt struct {
	session *quiz.Session
	out     io.Writer
	title   string
}

// apply runs actions in order and reports whether the user asked to quit.
func (p prompt) apply(actions []action.Action) bool {
	for _, intent := range actions {
		switch intent.Kind {
		case action.Quit:
			return true
		case action.Help:
			fmt.Fprintln(p.out, helpText)
			continue
		}
		before := p.session.CurrentIndex()
		wasSubmitted := p.session.Submitted()
		status := action.Apply(p.session, intent)
		if status != "" {
			fmt.Fprintln(p.out, status)
		}
		switch {
		case p.session.Submitted() && !wasSubmitted:
			p.printResults()
		case wasSubmitted && !p.session.Submitted():
			p.printQuestion()
		case p.session.CurrentIndex() != before:
			p.printQuestion()
		}
	}
	return false
}

func (p prompt) printQuestion() {
	snap := p.session.Snapshot()
	q := p.session.Current()
	fmt.Fprintln(p.out)
	if p.title != "" {
		fmt.Fprintf(p.out, "%s\n", p.title)
	}
	fmt.Fprintf(p.out, "Question %d of %d (answered %d)\n", snap.CurrentIndex+1, snap.Total, snap.Answered)
	fmt.Fprintln(p.out, q.Prompt)
	if q.MultipleCorrect {
		fmt.Fprintln(p.out, "(select all that apply)")
	}
	for _, option := range p.session.Options(snap.CurrentIndex) {
		marker := " "
		if option.Selected {
			marker = "*"
		}
		fmt.Fprintf(p.out, " %s %s. %s\n", marker, option.Letter, option.Text)
	}
	if p.session.IsLast() {
		fmt.Fprintln(p.out, "(last question: type submit when you are done)")
	}
}

func (p prompt) printResults() {
	snap := p.session.Snapshot()
	fmt.Fprintf(p.out, "\nScore: %d / %d (%d%%)\n", snap.Score, snap.Total, snap.Percentage)
	for _, result := range p.session.Results() {
		outcome := "wrong"
		if result.Correct {
			outcome = "correct"
		}
		selected := "-"
		if len(result.Selected) > 0 {
			selected = strings.Join(result.Selected, ", ")
		}
		fmt.Fprintf(p.out, "%2d. %s\n    yours: %s | correct: %s | %s\n",
			result.Index+1,
			result.Question.Prompt,
			selected,
			strings.Join(result.Question.CorrectAnswers, ", "),
			outcome,
		)
	}
	fmt.Fprintln(p.out, "Type retake to try again or quit to leave.")
}
