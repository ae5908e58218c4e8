package notation

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/jdd/damier/dames"
	"github.com/rs/zerolog"
)

type Tag struct {
	Name  string
	Value string
}

type Op interface {
	op()

	Source() string
}

type opCommon struct {
	src string
}

func (o opCommon) Source() string {
	return o.src
}

func (o opCommon) op() {}

type MoveNumber struct {
	opCommon
	Number int
}

type Play struct {
	opCommon
	Action Action
}

type Comment struct {
	opCommon
	Comment string
}

// Script is a recorded sequence of actions together with the setup they
// start from.
type Script struct {
	Tags []Tag
	Ops  []Op
}

func ParseFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseScript(f)
}

func ParseScript(r io.Reader) (*Script, error) {
	buf := bufio.NewReader(r)
	var s Script
	if err := readTags(buf, &s); err != nil && err != io.EOF {
		return nil, err
	}
	if err := readOps(buf, &s); err != nil && err != io.EOF {
		return nil, err
	}
	return &s, nil
}

func (s *Script) FindTag(name string) string {
	for _, t := range s.Tags {
		if t.Name == name {
			return t.Value
		}
	}
	return ""
}

// Config returns the game setup described by the script's tags.
func (s *Script) Config() (dames.Config, error) {
	cfg := dames.Config{
		PlayerOne: s.FindTag("Black"),
		PlayerTwo: s.FindTag("White"),
	}
	if name := s.FindTag("Layout"); name != "" {
		l, err := dames.ParseScenario(name)
		if err != nil {
			return cfg, err
		}
		cfg.Layout = l
	}
	if d := s.FindTag("Diagram"); d != "" {
		p, err := ParseDiagram(d)
		if err != nil {
			return cfg, err
		}
		cfg.Placement = p
	}
	return cfg, nil
}

// NewGame starts the game the script was recorded from.
func (s *Script) NewGame(log *zerolog.Logger) (*dames.Game, error) {
	cfg, err := s.Config()
	if err != nil {
		return nil, err
	}
	cfg.Log = log
	return dames.New(cfg)
}

func (s *Script) Actions() []Action {
	var out []Action
	for _, op := range s.Ops {
		if p, ok := op.(*Play); ok {
			out = append(out, p.Action)
		}
	}
	return out
}

func (s *Script) AddActions(as []Action) {
	for i, a := range as {
		if i%2 == 0 {
			s.Ops = append(s.Ops, &MoveNumber{Number: i/2 + 1})
		}
		s.Ops = append(s.Ops, &Play{Action: a})
	}
}

// Renumber rebuilds the move numbers so that one precedes every White
// action. Comments keep their place.
func (s *Script) Renumber() {
	var ops []Op
	n := 0
	for _, op := range s.Ops {
		switch o := op.(type) {
		case *MoveNumber:
		case *Play:
			if n%2 == 0 {
				ops = append(ops, &MoveNumber{Number: n/2 + 1})
			}
			n++
			ops = append(ops, o)
		default:
			ops = append(ops, op)
		}
	}
	s.Ops = ops
}

func readTags(r *bufio.Reader, s *Script) error {
	for {
		if e := skipWS(r); e != nil {
			return e
		}
		c, e := r.ReadByte()
		if e != nil {
			return e
		}
		if c != '[' {
			return r.UnreadByte()
		}
		line, e := r.ReadString(']')
		if e != nil {
			return e
		}
		line = line[:len(line)-1]
		bits := strings.SplitN(line, " ", 2)
		if len(bits) != 2 {
			return errors.New("bad tag")
		}
		s.Tags = append(s.Tags, Tag{
			Name:  bits[0],
			Value: strings.Trim(bits[1], "\""),
		})
	}
}

func readOps(r *bufio.Reader, s *Script) error {
	sc := bufio.NewScanner(r)
	sc.Split(splitOps)
	for sc.Scan() {
		tok := sc.Text()
		common := opCommon{tok}
		switch {
		case tok[0] == '{':
			s.Ops = append(s.Ops, &Comment{common, tok[1 : len(tok)-1]})
		case tok[len(tok)-1] == '.':
			n, e := strconv.Atoi(tok[:len(tok)-1])
			if e != nil {
				return e
			}
			s.Ops = append(s.Ops, &MoveNumber{common, n})
		default:
			a, e := ParseAction(tok)
			if e != nil {
				return e
			}
			s.Ops = append(s.Ops, &Play{common, a})
		}
	}
	return sc.Err()
}

func splitOps(buf []byte, atEOF bool) (int, []byte, error) {
	start := 0
	for start < len(buf) && unicode.IsSpace(rune(buf[start])) {
		start++
	}
	if start == len(buf) {
		return start, nil, nil
	}
	if buf[start] == '{' {
		for i := start; i < len(buf); i++ {
			if buf[i] == '}' {
				return i + 1, buf[start : i+1], nil
			}
		}
	} else {
		for i := start; i < len(buf); i++ {
			if unicode.IsSpace(rune(buf[i])) {
				return i + 1, buf[start:i], nil
			}
		}
	}
	if atEOF {
		return len(buf), buf[start:], nil
	}
	return start, nil, nil
}

func skipWS(r *bufio.Reader) error {
	for {
		c, e := r.ReadByte()
		if e != nil {
			return e
		}
		if !unicode.IsSpace(rune(c)) {
			return r.UnreadByte()
		}
	}
}

func (s *Script) Render() string {
	var out bytes.Buffer
	for _, tag := range s.Tags {
		fmt.Fprintf(&out, "[%s \"%s\"]\n",
			tag.Name, strings.Replace(tag.Value, "\"", "", -1),
		)
	}
	out.WriteString("\n")

	for _, op := range s.Ops {
		switch o := op.(type) {
		case *MoveNumber:
			fmt.Fprintf(&out, "\n%d.", o.Number)
		case *Play:
			fmt.Fprintf(&out, " %s", FormatAction(o.Action))
		case *Comment:
			fmt.Fprintf(&out, " {%s}", o.Comment)
		}
	}
	out.WriteString("\n")
	return out.String()
}
