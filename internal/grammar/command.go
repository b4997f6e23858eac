package grammar

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/transcript-flow/pkg/executor"
)

type commandChecker struct {
	exec     executor.Executor
	argv     []string
	language string
	ignored  map[string]bool
}

// NewCommandChecker returns a Checker that runs the LanguageTool
// command-line client, e.g. argv = ["java", "-jar", "languagetool-commandline.jar"].
// The paragraph is piped through stdin.
func NewCommandChecker(exec executor.Executor, argv []string, language string, ignoredRules []string) Checker {
	return &commandChecker{
		exec:     exec,
		argv:     argv,
		language: language,
		ignored:  ruleSet(ignoredRules),
	}
}

func (c *commandChecker) Check(ctx context.Context, text string) ([]Issue, error) {
	if len(c.argv) == 0 {
		return nil, fmt.Errorf("grammar command not configured")
	}

	args := append(append([]string(nil), c.argv[1:]...), "--json", "-l", c.language, "-")
	out, err := c.exec.ExecuteWithInput(ctx, strings.NewReader(text), c.argv[0], args...)
	if err != nil {
		return nil, fmt.Errorf("run grammar command: %w", err)
	}

	// The client may print log lines before the JSON document.
	if i := strings.Index(out, "{"); i > 0 {
		out = out[i:]
	}
	return decodeIssues([]byte(out), c.ignored)
}
