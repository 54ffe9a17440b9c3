package scoring

import "github.com/skillsence/skillverify/internal/types"

// Recommendations derives action items for a student from headline scores
// and their breakdown. Non-students get no recommendations. IDs are stable
// so consumers can dedupe across refreshes.
func Recommendations(user *types.UserProfile) []types.Recommendation {
	var items []types.Recommendation
	if user.Role != types.RoleStudent {
		return items
	}
	scores, breakdown := Compute(user)

	if scores.PlacementReady > 0 && scores.PlacementReady < 75 {
		parts := breakdown.PlacementReady
		if parts["coding_weighted"] < 35 {
			items = append(items, types.Recommendation{
				ID:          1,
				Title:       "Boost coding score for placements",
				Description: "Solve 10 medium LeetCode problems and push 2 GitHub updates.",
				ActionType:  "complete_assessment",
				Priority:    "high",
				Href:        "/dashboard/code-analysis",
			})
		}
		if parts["communication_weighted"] < 12 {
			items = append(items, types.Recommendation{
				ID:          2,
				Title:       "Improve communication readiness",
				Description: "Complete an AI interview session and update LinkedIn summary.",
				ActionType:  "review_roadmap",
				Priority:    "medium",
				Href:        "/dashboard/ai-interview",
			})
		}
		if parts["cgpa_bonus"] < 4 {
			items = append(items, types.Recommendation{
				ID:          4,
				Title:       "Add CGPA for placement confidence",
				Description: "Update your CGPA to strengthen academic credibility.",
				ActionType:  "review_roadmap",
				Priority:    "low",
				Href:        "/dashboard/settings",
			})
		}
	}

	if scores.CodingSkillIndex > 0 && scores.CodingSkillIndex < 70 &&
		breakdown.CodingSkillIndex["leetcode_solved_points"] < 20 {
		items = append(items, types.Recommendation{
			ID:          5,
			Title:       "Raise LeetCode consistency",
			Description: "Target 5-10 more medium problems to boost coding score.",
			ActionType:  "complete_assessment",
			Priority:    "high",
			Href:        "/dashboard/code-analysis",
		})
	}
	if scores.CommunicationScore > 0 && scores.CommunicationScore < 60 {
		items = append(items, types.Recommendation{
			ID:          7,
			Title:       "Strengthen your profile story",
			Description: "Add a strong LinkedIn headline and summary.",
			ActionType:  "review_roadmap",
			Priority:    "medium",
			Href:        "/dashboard/settings",
		})
	}
	if scores.AuthenticityScore > 0 && scores.AuthenticityScore < 60 {
		items = append(items, types.Recommendation{
			ID:          8,
			Title:       "Diversify verified platforms",
			Description: "Connect one more coding platform to raise authenticity.",
			ActionType:  "review_roadmap",
			Priority:    "medium",
			Href:        "/dashboard/settings",
		})
	}
	if len(items) == 0 {
		items = append(items, types.Recommendation{
			ID:          9,
			Title:       "Placement readiness stable",
			Description: "Keep weekly submissions and interviews to stay placement-ready.",
			ActionType:  "review_roadmap",
			Priority:    "low",
			Href:        "/dashboard/progress",
		})
	}
	return items
}
