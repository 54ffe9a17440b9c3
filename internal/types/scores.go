package types

// ScoreType identifies one of the four headline composite scores.
type ScoreType string

// Headline score types. The string values are stable keys used by score
// cards, snapshots, and report consumers.
const (
	ScoreCodingSkillIndex ScoreType = "coding_skill_index"
	ScoreCommunication    ScoreType = "communication_score"
	ScoreAuthenticity     ScoreType = "authenticity_score"
	ScorePlacementReady   ScoreType = "placement_ready"
)

// ScoreTypes lists the headline score types in their canonical order.
func ScoreTypes() []ScoreType {
	return []ScoreType{
		ScoreCodingSkillIndex,
		ScoreCommunication,
		ScoreAuthenticity,
		ScorePlacementReady,
	}
}

// ScoreSet holds the four headline scores, each an integer in [0,100].
type ScoreSet struct {
	CodingSkillIndex   int `json:"coding_skill_index"`
	CommunicationScore int `json:"communication_score"`
	AuthenticityScore  int `json:"authenticity_score"`
	PlacementReady     int `json:"placement_ready"`
}

// Get returns the score for a headline score type.
func (s ScoreSet) Get(t ScoreType) int {
	switch t {
	case ScoreCodingSkillIndex:
		return s.CodingSkillIndex
	case ScoreCommunication:
		return s.CommunicationScore
	case ScoreAuthenticity:
		return s.AuthenticityScore
	case ScorePlacementReady:
		return s.PlacementReady
	}
	return 0
}

// Breakdown exposes every named contribution behind the headline scores.
// Keys are stable: downstream consumers (recommendations, report rendering)
// key off them.
type Breakdown struct {
	CodingSkillIndex   map[string]float64 `json:"coding_skill_index"`
	CommunicationScore map[string]float64 `json:"communication_score"`
	AuthenticityScore  map[string]float64 `json:"authenticity_score"`
	PlacementReady     map[string]float64 `json:"placement_ready"`
}

// SkillLevel is the qualitative band derived from a skill score.
type SkillLevel string

// Skill levels in ascending order.
const (
	LevelBeginner     SkillLevel = "beginner"
	LevelIntermediate SkillLevel = "intermediate"
	LevelAdvanced     SkillLevel = "advanced"
	LevelExpert       SkillLevel = "expert"
)

// Recommendation is a derived action item built from scores and breakdown.
type Recommendation struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ActionType  string `json:"action_type"`
	Priority    string `json:"priority"`
	Href        string `json:"href"`
}
