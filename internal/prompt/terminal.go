package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"romfilter/internal/rom"
)

const (
	question     = "What do you want to do with these roms?"
	keepAllHint  = "Keep all: +"
	removeHint   = "Remove all: -"
	keepListHint = "Or list of comma-separated indexes of the roms that you want to keep (for example: 2, 4)"
	answerPrompt = "Type answer:"
	wrongAnswer  = "Wrong answer. Repeat:"
)

// ErrNoAnswer is returned when the input ends before a valid answer.
var ErrNoAnswer = errors.New("input closed before a valid answer was given")

var indexSeparator = regexp.MustCompile(` *, *`)

// Terminal asks the operator through a line-oriented reader and writer.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal wires a Terminal to the given input and output.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// Resolve lists candidates and blocks until the operator gives a valid
// answer. It returns the indexes of the candidates to remove.
func (t *Terminal) Resolve(candidates []rom.Rom) ([]int, error) {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(question + "\n")
	b.WriteString("\n")
	for i, c := range candidates {
		fmt.Fprintf(&b, "%d. %s\n", i+1, c.Name)
	}
	b.WriteString("\n")
	b.WriteString(keepAllHint + "\n")
	b.WriteString(removeHint + "\n")
	b.WriteString(keepListHint + "\n")
	b.WriteString(answerPrompt)
	if _, err := io.WriteString(t.out, b.String()); err != nil {
		return nil, fmt.Errorf("write prompt: %w", err)
	}

	for {
		line, err := t.in.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("read answer: %w", err)
			}
			if line == "" {
				return nil, ErrNoAnswer
			}
		}
		if remove, ok := ParseAnswer(line, len(candidates)); ok {
			return remove, nil
		}
		if _, err := io.WriteString(t.out, wrongAnswer); err != nil {
			return nil, fmt.Errorf("write prompt: %w", err)
		}
	}
}

// ParseAnswer interprets one answer line for count candidates and returns the
// 0-based indexes to remove. ok is false when the answer is invalid: a token
// that is not the plain decimal form of a listed number, or a repeated number.
func ParseAnswer(answer string, count int) (remove []int, ok bool) {
	answer = strings.TrimSpace(answer)
	switch answer {
	case "+":
		return []int{}, true
	case "-":
		remove = make([]int, count)
		for i := range remove {
			remove[i] = i
		}
		return remove, true
	}

	keep := make(map[int]struct{})
	for _, token := range indexSeparator.Split(answer, -1) {
		n, err := strconv.Atoi(token)
		if err != nil || strconv.Itoa(n) != token || n < 1 || n > count {
			return nil, false
		}
		if _, dup := keep[n-1]; dup {
			return nil, false
		}
		keep[n-1] = struct{}{}
	}

	remove = []int{}
	for i := 0; i < count; i++ {
		if _, kept := keep[i]; !kept {
			remove = append(remove, i)
		}
	}
	return remove, true
}
