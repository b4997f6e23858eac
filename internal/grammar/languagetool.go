package grammar

import (
	"encoding/json"
	"fmt"
)

// ltResponse is the JSON shape shared by the LanguageTool server and its
// command-line client.
type ltResponse struct {
	Matches []struct {
		Message      string `json:"message"`
		Offset       int    `json:"offset"`
		Length       int    `json:"length"`
		Replacements []struct {
			Value string `json:"value"`
		} `json:"replacements"`
		Context struct {
			Text string `json:"text"`
		} `json:"context"`
		Rule struct {
			ID string `json:"id"`
		} `json:"rule"`
	} `json:"matches"`
}

func decodeIssues(data []byte, ignored map[string]bool) ([]Issue, error) {
	var resp ltResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decode languagetool response: %w", err)
	}

	issues := make([]Issue, 0, len(resp.Matches))
	for _, m := range resp.Matches {
		if ignored[m.Rule.ID] {
			continue
		}
		issue := Issue{
			RuleID:  m.Rule.ID,
			Message: m.Message,
			Context: m.Context.Text,
			Offset:  m.Offset,
			Length:  m.Length,
		}
		for _, r := range m.Replacements {
			issue.Replacements = append(issue.Replacements, r.Value)
		}
		issues = append(issues, issue)
	}
	return issues, nil
}

func ruleSet(rules []string) map[string]bool {
	set := make(map[string]bool, len(rules))
	for _, r := range rules {
		set[r] = true
	}
	return set
}
