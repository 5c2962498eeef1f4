package engine

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"riskbattle/game"
	"riskbattle/meta"

	"github.com/rs/zerolog/log"
)

// Prompter asks a human for each round's attack size over a line-based terminal.
// It remembers the last accepted size and offers it as the default.
type Prompter struct {
	rules     game.Rules
	out       io.Writer
	lines     chan string
	readErr   error
	last      int
	done      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
}

func NewPrompter(in io.Reader, out io.Writer, rules game.Rules) *Prompter {
	p := &Prompter{
		rules:   rules,
		out:     out,
		lines:   make(chan string),
		last:    meta.DEFAULT_ATTACK,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	// Reading happens off the main loop so a pending prompt can be cancelled.
	go func() {
		defer close(p.stopped)
		defer close(p.lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case p.lines <- scanner.Text():
			case <-p.done:
				return
			}
		}
		p.readErr = scanner.Err()
	}()
	return p
}

// Close stops reading input. A read already blocked on the underlying reader
// finishes when that reader returns.
func (p *Prompter) Close() {
	p.closeOnce.Do(func() { close(p.done) })
}

// Default is the attack size used when the player enters nothing.
func (p *Prompter) Default() int {
	return p.last
}

func (p *Prompter) ChooseAttack(ctx context.Context, state game.BattleState) (int, error) {
	if !state.CanAttackWith(p.last, p.rules) {
		p.last = meta.DEFAULT_ATTACK
	}

	for {
		if _, err := fmt.Fprintf(p.out, "Enter number of attacking troops. [%d]> ", p.last); err != nil {
			return 0, fmt.Errorf("write prompt: %w", err)
		}

		entry, err := p.readLine(ctx)
		if err != nil {
			return 0, err
		}
		if entry == "" {
			return p.last, nil
		}
		if entry == "q" || entry == "quit" {
			return 0, ErrCancelled
		}

		units, err := ParseAttack(entry, state, p.rules)
		if err != nil {
			log.Debug().Err(err).Str("entry", entry).Msg("rejected attack size")
			if _, err := fmt.Fprintf(p.out, "ERR: attacking troop number %q invalid\n", entry); err != nil {
				return 0, fmt.Errorf("write prompt: %w", err)
			}
			continue
		}

		p.last = units
		return units, nil
	}
}

func (p *Prompter) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %w", ErrCancelled, ctx.Err())
	case <-p.done:
		return "", ErrCancelled
	case line, ok := <-p.lines:
		if !ok {
			if p.readErr != nil {
				return "", fmt.Errorf("read attack size: %w", p.readErr)
			}
			return "", ErrCancelled
		}
		return strings.TrimSuffix(line, "\r"), nil
	}
}

// ParseAttack validates a typed attack size against the current battle.
// Only plain digits are accepted: no sign, no surrounding spaces.
func ParseAttack(entry string, state game.BattleState, rules game.Rules) (int, error) {
	if !isDigits(entry) {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, entry)
	}
	units, err := strconv.Atoi(entry)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, entry)
	}
	if !state.CanAttackWith(units, rules) {
		return 0, fmt.Errorf("%w: %d with %d troops", ErrAttackOutOfRange, units, state.Attacking)
	}
	return units, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
