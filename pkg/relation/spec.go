package relation

import "strings"

// request is a single relation requested by a select spec, e.g.
// "lead:leads(nome, telefone)" or "visit_items(*)".
type request struct {
	alias   string
	target  string
	columns []string
}

// parseRequests extracts relation requests from a select spec. Plain
// column entries are ignored here; the builder returns whole rows and
// treats column lists as advisory, matching the emulated client.
func parseRequests(spec string) []request {
	var requests []request
	for _, part := range splitTopLevel(spec) {
		part = strings.TrimSpace(part)
		open := strings.Index(part, "(")
		if open < 0 {
			continue
		}
		closing := strings.LastIndex(part, ")")
		if closing < open {
			continue
		}

		head := strings.TrimSpace(part[:open])
		if head == "" {
			continue
		}
		req := request{alias: head, target: head}
		if colon := strings.Index(head, ":"); colon >= 0 {
			req.alias = strings.TrimSpace(head[:colon])
			req.target = strings.TrimSpace(head[colon+1:])
		}

		for _, col := range strings.Split(part[open+1:closing], ",") {
			col = strings.TrimSpace(col)
			if col == "" {
				continue
			}
			req.columns = append(req.columns, col)
		}
		// "(*)" means the whole related row
		if len(req.columns) == 1 && req.columns[0] == "*" {
			req.columns = nil
		}

		requests = append(requests, req)
	}
	return requests
}

// splitTopLevel splits a spec on commas outside parentheses.
func splitTopLevel(spec string) []string {
	var parts []string
	depth := 0
	start := 0
	for i, ch := range spec {
		switch ch {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, spec[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, spec[start:])
	return parts
}
