package terminal

import (
	"retro-term/internal/logger"
)

// Outcome reports which branch a dispatch took. None of them is an error.
type Outcome int

const (
	OutcomeIgnored Outcome = iota
	OutcomeCleared
	OutcomeContact
	OutcomeResponse
	OutcomeNotFound
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeCleared:
		return "cleared"
	case OutcomeContact:
		return "contact"
	case OutcomeResponse:
		return "response"
	case OutcomeNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// rule is one special-cased command, checked before the table lookup.
type rule struct {
	name  string
	apply func(b *Buffer) Outcome
}

type Options struct {
	Table CommandTable
	Log   *logger.LogEntry
}

// Dispatcher maps normalized commands to buffer mutations.
type Dispatcher struct {
	buffer *Buffer
	table  CommandTable
	rules  []rule
	log    *logger.LogEntry
}

func NewDispatcher(buffer *Buffer, opts Options) *Dispatcher {
	table := opts.Table
	if table.entries == nil {
		table = DefaultTable()
	}
	log := opts.Log
	if log == nil {
		log = logger.Named("dispatch")
	}
	return &Dispatcher{
		buffer: buffer,
		table:  table,
		log:    log,
		rules: []rule{
			{name: CommandClear, apply: func(b *Buffer) Outcome {
				b.Clear()
				return OutcomeCleared
			}},
			{name: CommandContact, apply: func(b *Buffer) Outcome {
				b.Append(ContactLine())
				return OutcomeContact
			}},
		},
	}
}

// Table returns the command table the dispatcher looks up.
func (d *Dispatcher) Table() CommandTable {
	return d.table
}

// Submit normalizes raw input and runs it. This is the path the prompt uses.
func (d *Dispatcher) Submit(raw string) Outcome {
	return d.Run(Normalize(raw))
}

// Run executes cmd, which the caller must have normalized already. Empty input is
// ignored; anything else echoes first and then appends the response.
func (d *Dispatcher) Run(cmd string) Outcome {
	if cmd == "" {
		return OutcomeIgnored
	}
	d.buffer.Append(EchoLine(cmd))

	outcome := d.respond(cmd)
	d.log.WithField("command", cmd).WithField("outcome", outcome.String()).Debug("dispatched")
	return outcome
}

func (d *Dispatcher) respond(cmd string) Outcome {
	for _, r := range d.rules {
		if r.name == cmd {
			return r.apply(d.buffer)
		}
	}
	if resp, ok := d.table.Lookup(cmd); ok {
		d.buffer.Append(Plain(resp))
		return OutcomeResponse
	}
	d.buffer.Append(Plain(NotFound))
	return OutcomeNotFound
}
