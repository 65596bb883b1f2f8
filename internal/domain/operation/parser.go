package operation

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/portlogistics-go/internal/domain/shared"
)

// grammar turns the tokens of one command into a Command
type grammar func(raw string, tokens []string) (*Command, error)

// ParserOptions controls which opcodes the parser accepts
type ParserOptions struct {
	// EnableUnload registers UNLOAD. Off by default, in which case an UNLOAD
	// line is ignored like any other unknown opcode.
	EnableUnload bool
}

// Parser tokenizes operation lines and dispatches on the first token
type Parser struct {
	grammars map[string]grammar
}

// NewParser creates a parser with LOAD registered, plus UNLOAD when enabled
func NewParser(opts ParserOptions) *Parser {
	p := &Parser{
		grammars: map[string]grammar{
			string(OpcodeLoad): parseLoad,
		},
	}
	if opts.EnableUnload {
		p.grammars[string(OpcodeUnload)] = parseUnload
	}
	return p
}

// Supports reports whether the opcode has a registered grammar
func (p *Parser) Supports(opcode Opcode) bool {
	_, ok := p.grammars[string(opcode)]
	return ok
}

// Parse converts one raw line into a Command.
//
// Returns ErrUnrecognized for blank lines and unknown opcodes, and a
// *shared.ParseError when a known opcode is missing operands.
// Opcode matching is case-sensitive.
func (p *Parser) Parse(raw string) (*Command, error) {
	tokens := strings.Fields(raw)
	if len(tokens) == 0 {
		return nil, ErrUnrecognized
	}

	parse, ok := p.grammars[tokens[0]]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnrecognized, tokens[0])
	}

	return parse(raw, tokens)
}

// LOAD <vessel> FROM <source> TO <destination>
// Positions 0, 1, 3 and 5 matter; the keywords are not validated.
func parseLoad(raw string, tokens []string) (*Command, error) {
	if len(tokens) < 6 {
		return nil, shared.NewParseError(raw,
			fmt.Sprintf("LOAD expects 6 tokens (LOAD <vessel> FROM <source> TO <destination>), got %d", len(tokens)))
	}

	return &Command{
		Opcode:      OpcodeLoad,
		Vessel:      tokens[1],
		Source:      tokens[3],
		Destination: tokens[5],
		Raw:         raw,
	}, nil
}

// UNLOAD <vessel> TO <destination>
// Trailing tokens are ignored.
func parseUnload(raw string, tokens []string) (*Command, error) {
	if len(tokens) < 4 {
		return nil, shared.NewParseError(raw,
			fmt.Sprintf("UNLOAD expects 4 tokens (UNLOAD <vessel> TO <destination>), got %d", len(tokens)))
	}

	return &Command{
		Opcode:      OpcodeUnload,
		Vessel:      tokens[1],
		Destination: tokens[3],
		Raw:         raw,
	}, nil
}
