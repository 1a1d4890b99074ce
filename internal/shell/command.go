// Package shell is the line-oriented text interface to the pantry. It parses
// commands, calls the service and prints the results.
package shell

import (
	"regexp"
	"strings"
)

// CommandType identifies what the user asked for.
type CommandType string

const (
	CmdUnknown   CommandType = "unknown"
	CmdHelp      CommandType = "help"
	CmdList      CommandType = "list"
	CmdExpired   CommandType = "expired"
	CmdValue     CommandType = "value"
	CmdSearch    CommandType = "search"
	CmdAdd       CommandType = "add"
	CmdRemove    CommandType = "remove"
	CmdDiscard   CommandType = "discard"
	CmdDate      CommandType = "date"
	CmdRecipes   CommandType = "recipes"
	CmdShow      CommandType = "show"
	CmdNewRecipe CommandType = "newrecipe"
	CmdCheck     CommandType = "check"
	CmdSuggest   CommandType = "suggest"
	CmdScale     CommandType = "scale"
	CmdQuit      CommandType = "quit"
)

// Command is a parsed input line. Args are the comma-separated fields that
// follow the keyword, trimmed.
type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

// Arg returns the i-th argument or "".
func (c Command) Arg(i int) string {
	if i < 0 || i >= len(c.Args) {
		return ""
	}
	return c.Args[i]
}

type keywordRule struct {
	regex *regexp.Regexp
	cmd   CommandType
}

var keywordRules = []keywordRule{
	{regexp.MustCompile(`(?i)^(help|h|\?)$`), CmdHelp},
	{regexp.MustCompile(`(?i)^(list|ls|groceries|stock)$`), CmdList},
	{regexp.MustCompile(`(?i)^(expired|waste)$`), CmdExpired},
	{regexp.MustCompile(`(?i)^(value|total|worth)$`), CmdValue},
	{regexp.MustCompile(`(?i)^(search|find)$`), CmdSearch},
	{regexp.MustCompile(`(?i)^(add|buy)$`), CmdAdd},
	{regexp.MustCompile(`(?i)^(remove|use|take)$`), CmdRemove},
	{regexp.MustCompile(`(?i)^(discard|trash|throw)$`), CmdDiscard},
	{regexp.MustCompile(`(?i)^(date|today)$`), CmdDate},
	{regexp.MustCompile(`(?i)^(recipes|cookbook)$`), CmdRecipes},
	{regexp.MustCompile(`(?i)^(show|recipe)$`), CmdShow},
	{regexp.MustCompile(`(?i)^(newrecipe|new)$`), CmdNewRecipe},
	{regexp.MustCompile(`(?i)^(check|can)$`), CmdCheck},
	{regexp.MustCompile(`(?i)^(suggest|ideas)$`), CmdSuggest},
	{regexp.MustCompile(`(?i)^(scale|portions)$`), CmdScale},
	{regexp.MustCompile(`(?i)^(quit|exit|q)$`), CmdQuit},
}

// ParseCommand splits a line into a keyword and its comma-separated arguments.
func ParseCommand(line string) Command {
	trimmed := strings.TrimSpace(line)
	cmd := Command{Type: CmdUnknown, Raw: trimmed}
	if trimmed == "" {
		return cmd
	}

	keyword, rest, _ := strings.Cut(trimmed, " ")
	for _, rule := range keywordRules {
		if rule.regex.MatchString(keyword) {
			cmd.Type = rule.cmd
			break
		}
	}

	rest = strings.TrimSpace(rest)
	if rest == "" {
		return cmd
	}
	for _, field := range strings.Split(rest, ",") {
		cmd.Args = append(cmd.Args, strings.TrimSpace(field))
	}
	return cmd
}
