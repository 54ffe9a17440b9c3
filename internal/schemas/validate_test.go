package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ChunkVerdict(t *testing.T) {
	assert.NoError(t, Validate(ChunkVerdict, `{"score": 80, "label": "likely", "rationale": "dense comments"}`))

	err := Validate(ChunkVerdict, `{"score": 80, "label": "certain"}`)
	require.Error(t, err)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)

	assert.Error(t, Validate(ChunkVerdict, `{"label": "likely"}`))
	assert.Error(t, Validate(ChunkVerdict, `{"score": 120, "label": "likely"}`))
}

func TestValidate_QuestionList(t *testing.T) {
	assert.NoError(t, Validate(QuestionList, `[{"question": "a?", "difficulty": "easy", "tags": ["api"]}]`))
	assert.Error(t, Validate(QuestionList, `[{"question": "", "difficulty": "easy"}]`))
	assert.Error(t, Validate(QuestionList, `[{"question": "a?", "difficulty": "brutal"}]`))
	assert.Error(t, Validate(QuestionList, `{"question": "a?", "difficulty": "easy"}`))
}

func TestValidate_FollowUp(t *testing.T) {
	assert.NoError(t, Validate(FollowUp, `{"question": "why?", "difficulty": "medium"}`))
	assert.Error(t, Validate(FollowUp, `{"question": "why?", "difficulty": "hard"}`))
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("missing", `{}`)
	require.Error(t, err)
	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidate_MalformedDocument(t *testing.T) {
	assert.Error(t, Validate(ChunkVerdict, `not json`))
}
