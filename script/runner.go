package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/me21jarus/dsa/circular"
	"github.com/me21jarus/dsa/core"
	"github.com/me21jarus/dsa/linear"
)

// Output lines for reported outcomes.
const (
	msgEmpty           = "list is empty"
	msgNotFound        = "not found"
	msgInvalidPosition = "invalid position"
)

// positional is the linear surface driven by scripts.
type positional interface {
	core.Sequence[int]
	InsertAtHead(v int)
	InsertAtTail(v int)
	InsertAt(pos, v int) error
	DeleteAt(pos int) (int, error)
	Middle() (int, bool)
}

// keyed is the ring surface driven by scripts.
type keyed interface {
	core.Sequence[int]
	InsertAfter(target, v int) error
	Delete(v int) error
	Append(v int)
}

// Runner executes scripts and writes their output lines to an io.Writer.
type Runner struct {
	out      io.Writer
	logger   *slog.Logger
	listOpts []core.Option[int]
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger routes step logging to l. A nil logger keeps the default.
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithListOptions forwards opts to every list the runner creates.
func WithListOptions(opts ...core.Option[int]) RunnerOption {
	return func(r *Runner) {
		r.listOpts = append(r.listOpts, opts...)
	}
}

// NewRunner returns a Runner writing to out and logging to a discard logger
// unless WithLogger is given.
func NewRunner(out io.Writer, opts ...RunnerOption) *Runner {
	r := &Runner{
		out:    out,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// newList creates the empty list for v, pre-filled with initial.
func (r *Runner) newList(v core.Variant, initial []int) core.Sequence[int] {
	switch v {
	case core.DoublyLinear:
		return linear.DoublyFrom(initial, r.listOpts...)
	case core.SinglyCircular:
		return circular.SinglyFrom(initial, r.listOpts...)
	case core.DoublyCircular:
		return circular.DoublyFrom(initial, r.listOpts...)
	default:
		return linear.SinglyFrom(initial, r.listOpts...)
	}
}

// Run executes s on a fresh list. The context is checked between steps.
// In strict mode the first failing step aborts the run; otherwise failures
// are written as output lines and counted in Result.Failures.
func (r *Runner) Run(ctx context.Context, s *Script) (Result, error) {
	if s == nil {
		return Result{}, fmt.Errorf("Run: nil script: %w", ErrInvalidScript)
	}
	if err := s.validate(); err != nil {
		return Result{}, fmt.Errorf("Run: %w", err)
	}
	list := r.newList(s.variant, s.Initial)
	log := r.logger.With("script", s.Name, "variant", s.variant.String())
	log.Info("script started", "steps", len(s.Steps))

	var res Result
	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			res.Final = core.Collect(list)
			return res, fmt.Errorf("Run: step %d: %w", i+1, err)
		}
		res.Steps++

		err := r.apply(list, st)
		if err == nil {
			log.Debug("step applied", "step", i+1, "op", st.String())
			continue
		}
		res.Failures++
		if s.Strict {
			res.Final = core.Collect(list)
			log.Error("step failed", "step", i+1, "op", st.String(), "err", err)
			return res, fmt.Errorf("Run: step %d (%s): %w", i+1, st, err)
		}
		log.Warn("step failed", "step", i+1, "op", st.String(), "err", err)
		r.println(outcome(err))
	}
	res.Final = core.Collect(list)
	log.Info("script finished", "failures", res.Failures, "len", len(res.Final))

	return res, nil
}

// apply executes one validated step.
func (r *Runner) apply(list core.Sequence[int], st Step) error {
	switch st.Op {
	case OpPrint:
		r.printList(list)
		return nil
	case OpLen:
		r.println(strconv.Itoa(list.Len()))
		return nil
	case OpFind:
		r.println(strconv.Itoa(core.IndexOf(list, *st.Value)))
		return nil
	case OpClear:
		list.Clear()
		return nil
	}

	if l, ok := list.(positional); ok {
		return r.applyPositional(l, st)
	}
	if l, ok := list.(keyed); ok {
		return r.applyKeyed(l, st)
	}

	return fmt.Errorf("%s: %w", st.Op, ErrUnsupportedOp)
}

func (r *Runner) applyPositional(l positional, st Step) error {
	switch st.Op {
	case OpInsertHead:
		l.InsertAtHead(*st.Value)
	case OpInsertTail:
		l.InsertAtTail(*st.Value)
	case OpInsertAt:
		return l.InsertAt(*st.Position, *st.Value)
	case OpDeleteAt:
		_, err := l.DeleteAt(*st.Position)
		return err
	case OpMiddle:
		m, ok := l.Middle()
		if !ok {
			return fmt.Errorf("%s: %w", st.Op, core.ErrEmptyList)
		}
		r.println(strconv.Itoa(m))
	default:
		return fmt.Errorf("%s: %w", st.Op, ErrUnsupportedOp)
	}

	return nil
}

func (r *Runner) applyKeyed(l keyed, st Step) error {
	switch st.Op {
	case OpInsertAfter:
		return l.InsertAfter(*st.Target, *st.Value)
	case OpDeleteValue:
		return l.Delete(*st.Value)
	case OpAppend:
		l.Append(*st.Value)
	default:
		return fmt.Errorf("%s: %w", st.Op, ErrUnsupportedOp)
	}

	return nil
}

func (r *Runner) printList(list core.Sequence[int]) {
	if list.Len() == 0 {
		r.println(msgEmpty)
		return
	}
	r.println(list.String())
}

func (r *Runner) println(line string) {
	fmt.Fprintln(r.out, line)
}

// outcome maps an operation error to its output line.
func outcome(err error) string {
	switch {
	case errors.Is(err, core.ErrEmptyList):
		return msgEmpty
	case errors.Is(err, core.ErrInvalidPosition):
		return msgInvalidPosition
	case errors.Is(err, core.ErrNotFound):
		return msgNotFound
	default:
		return err.Error()
	}
}
