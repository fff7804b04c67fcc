package services

import (
	"regexp"
	"strings"
)

// toolCallMarker is the fixed prefix the classifier is instructed to emit for
// tool commands. Its absence means the output is a plain conversational reply.
const toolCallMarker = "CALL:"

type CommandKind int

const (
	// CommandNone marks a recognized tool call whose arguments could not be
	// parsed; the executor answers with a safe default reply.
	CommandNone CommandKind = iota
	CommandSearch
	CommandHistory
	CommandSetFilter
)

// Command is the structured form of one classified chat message.
type Command struct {
	Kind   CommandKind
	Term   string
	Filter string
	Value  string
}

var quotedArgRegex = regexp.MustCompile(`"([^"]*)"`)

// IsToolCall reports whether the classifier output contains the tool-call
// marker, i.e. whether it should be executed rather than returned verbatim.
func IsToolCall(output string) bool {
	return strings.Contains(output, toolCallMarker)
}

// ParseCommand turns classifier output into a Command. Arguments are the
// quoted substrings in order of appearance: the first quoted token is argument
// one, the second is argument two. Wrong argument counts degrade to
// CommandNone rather than erroring.
func ParseCommand(output string) Command {
	args := quotedArgRegex.FindAllStringSubmatch(output, -1)

	switch {
	case strings.Contains(output, "FETCH_AND_SEARCH"):
		term := "Developer"
		if len(args) >= 1 {
			term = args[0][1]
		}
		return Command{Kind: CommandSearch, Term: term}

	case strings.Contains(output, "GET_APPLICATIONS"):
		return Command{Kind: CommandHistory}

	case strings.Contains(output, "UPDATE_FILTER"):
		if len(args) < 2 {
			return Command{Kind: CommandNone}
		}
		return Command{Kind: CommandSetFilter, Filter: args[0][1], Value: args[1][1]}
	}

	return Command{Kind: CommandNone}
}
