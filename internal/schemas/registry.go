package schemas

// Schema names accepted by Validate.
const (
	// ChunkVerdict is the per-chunk AI-authorship verdict returned by the
	// judge.
	ChunkVerdict = "chunk_verdict"
	// QuestionList is the AI-generated technical question list.
	QuestionList = "question_list"
	// FollowUp is the single follow-up question object.
	FollowUp = "follow_up"
)

// registry holds the embedded schema documents. Keeping them as Go string
// literals avoids path resolution issues when commands run from different
// working directories.
var registry = map[string]string{
	ChunkVerdict: `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["score", "label"],
  "properties": {
    "score": {"type": "number", "minimum": 0, "maximum": 100},
    "label": {"type": "string", "enum": ["likely", "possible", "unlikely"]},
    "rationale": {"type": "string"}
  }
}`,
	QuestionList: `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["question", "difficulty"],
    "properties": {
      "question": {"type": "string", "minLength": 1},
      "difficulty": {"type": "string", "enum": ["easy", "medium", "hard"]},
      "tags": {"type": "array", "items": {"type": "string"}}
    }
  }
}`,
	FollowUp: `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["question", "difficulty"],
  "properties": {
    "question": {"type": "string", "minLength": 1},
    "difficulty": {"type": "string", "enum": ["easy", "medium"]}
  }
}`,
}
