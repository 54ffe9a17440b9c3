// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import "strings"

// CleanJSONBlock removes markdown code block wrappers from JSON responses.
// LLMs often wrap JSON in ```json ... ``` blocks even when instructed not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	// Handle ```json ... ``` blocks
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	// Handle generic ``` ... ``` blocks
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip potential language identifier on first line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	return text
}

// ExtractJSON pulls the first JSON object or array out of free-form model
// output. Returns the input unchanged when no JSON boundary is found.
func ExtractJSON(text string) string {
	text = CleanJSONBlock(text)

	// An array can contain objects, so whichever opener appears first
	// decides which boundary pair to use.
	objStart := strings.Index(text, "{")
	arrStart := strings.Index(text, "[")
	bounds := [2]string{"{", "}"}
	if objStart == -1 || (arrStart != -1 && arrStart < objStart) {
		bounds = [2]string{"[", "]"}
	}

	start := strings.Index(text, bounds[0])
	end := strings.LastIndex(text, bounds[1])
	if start != -1 && end != -1 && end > start {
		return text[start : end+1]
	}
	return text
}
